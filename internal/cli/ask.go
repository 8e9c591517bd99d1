package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"healthrag/config"
	"healthrag/internal/adapter/index"
	"healthrag/internal/adapter/retriever"
	"healthrag/internal/domain"
	"healthrag/internal/usecase"
)

var (
	askQuestion string
	askTopK     int
	askJSON     bool
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer a single question from the indexed forum threads",
	Long: `Answer a health question by retrieving the most similar forum thread.
The reply carries a confidence score and the list of supporting threads.

Examples:
  healthrag ask -q "กระเพาะปัสสาวะอักเสบรักษาอย่างไร"
  healthrag ask -q "ปวดท้องประจำเดือน" -k 5 --json`,
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringVarP(&askQuestion, "question", "q", "", "question to answer (required)")
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "number of sources (default from config)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output as JSON")
	askCmd.MarkFlagRequired("question")
}

// loadIndex loads the persisted index, translating the failure modes
// into actionable CLI errors.
func loadIndex(dir string) (*index.Index, error) {
	prefix := config.IndexPathPrefix(dir)
	if !index.Exists(prefix) {
		return nil, fmt.Errorf("no index found. Run 'healthrag index' first")
	}
	ix, err := index.Load(prefix)
	if err != nil {
		if errors.Is(err, domain.ErrCorruptIndex) {
			return nil, fmt.Errorf("%w. Run 'healthrag index' to rebuild", err)
		}
		return nil, err
	}
	return ix, nil
}

func newAnswerUseCase(ix *index.Index, cfg *config.Config) *usecase.AnswerUseCase {
	ranker := retriever.NewCosineRetriever(ix)
	return usecase.NewAnswerUseCase(ix, ranker, cfg.Answer.TopK, cfg.Answer.MaxAnswerChars, cfg.Answer.SnippetChars)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	ix, err := loadIndex(GetDataDir())
	if err != nil {
		return err
	}

	answerUC := newAnswerUseCase(ix, cfg)
	answer, err := answerUC.Answer(askQuestion, askTopK)
	if err != nil {
		return fmt.Errorf("answer failed: %w", err)
	}

	if askJSON {
		output, _ := json.MarshalIndent(answer, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	printAnswer(answer)
	return nil
}

func printAnswer(answer domain.Answer) {
	fmt.Println(answer.Text)
	fmt.Printf("\nConfidence: %.3f\n", answer.Confidence)
	if len(answer.Sources) == 0 {
		return
	}
	fmt.Printf("\nSources:\n")
	for i, src := range answer.Sources {
		fmt.Printf("  [%d] %s (score: %.3f)\n", i+1, src.Title, src.Score)
		fmt.Printf("      %s\n", src.URL)
	}
}
