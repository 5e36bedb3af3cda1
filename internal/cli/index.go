package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index [folder]",
	Short: "Build the document index from the club's PDFs",
	Long: `Index extracts text from every PDF in the documents folder, embeds the
chunks and writes the vector index. An existing index is rebuilt from scratch.

Examples:
  natalia index            # Index the configured documents folder
  natalia index ./docs     # Index a specific folder`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if len(args) > 0 {
		cfg.Documents.Folder = args[0]
	}
	resolvePaths(cfg, GetRootDir())

	if cfg.Index.Path == "" {
		return fmt.Errorf("index_path is empty, nothing to build")
	}

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	// Rebuild from scratch so removed documents disappear from the index.
	if err := os.Remove(cfg.Index.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove old index: %w", err)
	}

	vs, err := storeOpener(embedder.Dimension())(cfg.Index.Path)
	if err != nil {
		return fmt.Errorf("failed to open index store: %w", err)
	}
	defer vs.Close()

	fmt.Printf("Scanning %s...\n", cfg.Documents.Folder)

	var bar *progressbar.ProgressBar
	progress := func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Embedding[reset]"),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(done)
	}

	n, err := newIngestor(cfg, embedder).Build(cfg.Documents.Folder, vs, progress)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}
	if n == 0 {
		vs.Close()
		os.Remove(cfg.Index.Path)
		fmt.Printf("No PDF documents found in %s\n", cfg.Documents.Folder)
		return nil
	}

	fmt.Printf("\nIndexing complete:\n")
	fmt.Printf("  Chunks indexed: %d\n", n)
	fmt.Printf("  Model:          %s\n", embedder.ModelName())
	fmt.Printf("\nIndex stored at: %s\n", cfg.Index.Path)
	return nil
}
