package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"healthrag/config"
	"healthrag/internal/adapter/index"
	"healthrag/internal/adapter/store"
	"healthrag/internal/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus and index statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	dir := GetDataDir()
	stats := domain.CorpusStats{}

	dbPath := config.CorpusDBPath(dir)
	if _, err := os.Stat(dbPath); err == nil {
		st, err := store.NewBoltStore(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open corpus store: %w", err)
		}
		stats.ThreadCount, err = st.Count()
		st.Close()
		if err != nil {
			return err
		}
	}

	prefix := config.IndexPathPrefix(dir)
	ready := index.Exists(prefix)
	if ready {
		ix, err := index.Load(prefix)
		if err != nil {
			return fmt.Errorf("index unreadable: %w", err)
		}
		stats.IndexedDocs = ix.Len()
		stats.VocabularySize = ix.Terms()
	}

	fmt.Printf("Corpus threads:    %d\n", stats.ThreadCount)
	fmt.Printf("Index ready:       %v\n", ready)
	if ready {
		fmt.Printf("Indexed documents: %d\n", stats.IndexedDocs)
		fmt.Printf("Vocabulary terms:  %d\n", stats.VocabularySize)
	}
	return nil
}
