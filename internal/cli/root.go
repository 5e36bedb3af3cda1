package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"natalia/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "natalia",
	Short: "Asistente del Club de Natación Montería Natación Master",
	Long: `Natalia answers member questions for the swimming club: schedules,
prices, enrollment and the club's PDF documentation.

Example usage:
  natalia index                       # Build the document index from ./pdfs
  natalia chat                        # Interactive chat
  natalia chat -q "cuanto cuesta"     # One-shot question
  natalia cache clear                 # Drop cached answers`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		// .env is optional; real deployments set the variables directly.
		_ = godotenv.Load()

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		switch cfg.Logging.Level {
		case "silent":
			log.SetOutput(io.Discard)
		case "debug":
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./natalia.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
