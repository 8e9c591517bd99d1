package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"healthrag/config"
	"healthrag/internal/adapter/index"
	"healthrag/internal/adapter/store"
	"healthrag/internal/usecase"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive question-answering session",
	Long: `Start an interactive session against the indexed forum threads. If no
index artifacts exist yet but the corpus store has threads, the index is
built on the spot. Type 'exit' or 'quit' to leave.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	dir := GetDataDir()

	ix, err := loadOrBuildIndex(dir)
	if err != nil {
		return err
	}

	answerUC := newAnswerUseCase(ix, cfg)

	fmt.Printf("Loaded %d forum threads. Ask a health question (exit to quit).\n\n", ix.Len())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Q: ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" {
			return nil
		}

		answer, err := answerUC.Answer(question, 0)
		if err != nil {
			return fmt.Errorf("answer failed: %w", err)
		}
		printAnswer(answer)
		fmt.Println()
	}
}

// loadOrBuildIndex loads the persisted index when its artifacts exist,
// otherwise builds one from the corpus store and persists it.
func loadOrBuildIndex(dir string) (*index.Index, error) {
	prefix := config.IndexPathPrefix(dir)
	if index.Exists(prefix) {
		return loadIndex(dir)
	}

	st, err := store.NewBoltStore(config.CorpusDBPath(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus store: %w", err)
	}
	defer st.Close()

	count, err := st.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("no index and no corpus. Run 'healthrag crawl' first")
	}

	fmt.Printf("No index found, building from %d stored threads...\n", count)
	buildUC := usecase.NewBuildUseCase(st, indexOptions(GetConfig()))
	ix, err := buildUC.Build(nil)
	if err != nil {
		return nil, fmt.Errorf("index build failed: %w", err)
	}
	if err := ix.Save(prefix); err != nil {
		return nil, fmt.Errorf("failed to save index: %w", err)
	}
	return ix, nil
}
