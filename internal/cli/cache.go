package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the cached answers",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached answers",
	Long: `Clear removes every cached answer under the configured namespace.
Run it after updating prices, schedules or the PDF documents so stale
answers stop being served.`,
	RunE: runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	c := newCache(GetConfig())
	if !c.Available() {
		fmt.Println("Response cache is not available, nothing to clear.")
		return nil
	}

	if err := c.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	fmt.Println("Cached answers cleared.")
	return nil
}
