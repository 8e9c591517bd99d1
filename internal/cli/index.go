package cli

import (
	"errors"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"healthrag/config"
	"healthrag/internal/adapter/index"
	"healthrag/internal/adapter/store"
	"healthrag/internal/domain"
	"healthrag/internal/usecase"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the search index from the stored corpus",
	Long: `Build the term-weighted index over every thread in the corpus store
and persist it as three artifacts next to the corpus database. Threads
whose normalized text is too short are dropped.

Examples:
  healthrag index
  healthrag index -d ./data`,
	RunE: runIndexBuild,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

// indexOptions maps the config to index build options.
func indexOptions(cfg *config.Config) index.Options {
	return index.Options{
		MinTextLength: cfg.Index.MinTextLength,
		MaxFeatures:   cfg.Index.MaxFeatures,
		MinDF:         cfg.Index.MinDF,
		MaxDFRatio:    cfg.Index.MaxDFRatio,
		Bigrams:       cfg.Index.Bigrams,
	}
}

func runIndexBuild(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	dir := GetDataDir()

	st, err := store.NewBoltStore(config.CorpusDBPath(dir))
	if err != nil {
		return fmt.Errorf("failed to open corpus store: %w", err)
	}
	defer st.Close()

	count, err := st.Count()
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("corpus is empty. Run 'healthrag crawl' or 'healthrag import' first")
	}

	fmt.Printf("Building index from %d threads...\n", count)

	bar := progressbar.NewOptions(count,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Indexing[reset]"),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	buildUC := usecase.NewBuildUseCase(st, indexOptions(cfg))
	ix, err := buildUC.Build(func(done, total int) {
		bar.Set(done)
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCorpus) {
			return fmt.Errorf("no thread survived the minimum-length filter: %w", err)
		}
		return fmt.Errorf("index build failed: %w", err)
	}

	prefix := config.IndexPathPrefix(dir)
	if err := ix.Save(prefix); err != nil {
		return fmt.Errorf("failed to save index: %w", err)
	}

	fmt.Printf("\nIndex built:\n")
	fmt.Printf("  Documents indexed: %d\n", ix.Len())
	fmt.Printf("  Vocabulary terms:  %d\n", ix.Terms())
	fmt.Printf("\nIndex stored at: %s_*\n", prefix)
	return nil
}
