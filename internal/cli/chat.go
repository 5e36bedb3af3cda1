package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"natalia/internal/adapter/retriever"
	"natalia/internal/domain"
	"natalia/internal/usecase"
)

var chatQuery string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the club assistant",
	Long: `Chat answers member questions from canned responses and the club's
indexed PDF documentation. Without -q it runs an interactive session.

Examples:
  natalia chat                          # Interactive session
  natalia chat -q "horarios para niños" # Single question`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatQuery, "query", "q", "", "answer a single question and exit")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	resolvePaths(cfg, GetRootDir())

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	vs, err := usecase.LoadOrBuild(cfg, newIngestor(cfg, embedder), storeOpener(embedder.Dimension()))
	if err != nil {
		return fmt.Errorf("failed to prepare document index: %w", err)
	}
	if vs != nil {
		defer vs.Close()
	}

	composer := usecase.NewComposer(
		cfg,
		usecase.NewIntentResolver(cfg.Contact),
		retriever.NewSemanticRetriever(vs, embedder),
		newCache(cfg),
	)

	ctx := cmd.Context()

	if chatQuery != "" {
		fmt.Println(composer.Answer(ctx, chatQuery))
		return nil
	}

	return runInteractive(ctx, composer)
}

func runInteractive(ctx context.Context, composer *usecase.Composer) error {
	transcript := &domain.Transcript{}
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("🏊‍♀️ Natalia - Asistente del Club de Natación MNM (escribe 'salir' para terminar)")

	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "salir", "exit", "quit":
			fmt.Println("¡Hasta pronto! 🌊")
			return scanner.Err()
		case "/historial":
			for _, turn := range transcript.Turns() {
				fmt.Printf("[%s] %s\n", turn.Role, turn.Content)
			}
			continue
		}

		transcript.Append(domain.RoleUser, input)
		answer := composer.Answer(ctx, input)
		transcript.Append(domain.RoleAssistant, answer)

		fmt.Println("\n" + answer)
	}

	return scanner.Err()
}
