package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"healthrag/config"
	"healthrag/internal/adapter/fs"
	"healthrag/internal/adapter/store"
)

var importExcludes []string

var importCmd = &cobra.Command{
	Use:   "import <glob>...",
	Short: "Import thread dumps from local JSON files",
	Long: `Import previously exported thread dumps into the corpus store. Each
matching file must hold a JSON array of threads with url, title and
content fields. Globs are matched relative to the data directory.

Examples:
  healthrag import 'dumps/**/*.json'
  healthrag import 'scraped_threads.json' --exclude '**/broken/**'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringSliceVar(&importExcludes, "exclude", nil, "glob patterns to skip")
}

func runImport(cmd *cobra.Command, args []string) error {
	dir := GetDataDir()
	if err := config.EnsureDataDir(dir); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	loader := fs.NewLoader(args, importExcludes)
	docs, err := loader.Load(dir)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("no threads matched %v", args)
	}

	st, err := store.NewBoltStore(config.CorpusDBPath(dir))
	if err != nil {
		return fmt.Errorf("failed to open corpus store: %w", err)
	}
	defer st.Close()

	if err := st.PutBatch(docs); err != nil {
		return fmt.Errorf("failed to store threads: %w", err)
	}

	fmt.Printf("Imported %d threads into %s\n", len(docs), config.CorpusDBPath(dir))
	return nil
}
