package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"healthrag/config"
)

var (
	cfgFile string
	cfg     *config.Config
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "healthrag",
	Short: "Health forum QA - crawl forum threads and answer questions from them",
	Long: `healthrag builds a term-weighted search index over health forum threads
and answers natural-language questions with the most similar thread,
ranked supporting sources, and a confidence score.

Example usage:
  healthrag crawl threads.txt      # Fetch forum threads into the corpus
  healthrag index                  # Build the search index
  healthrag ask -q "ปวดท้องประจำเดือน"  # Ask a question
  healthrag chat                   # Interactive session`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if dataDir == "" {
			dataDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(dataDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
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
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <data-dir>/healthrag.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "data directory for corpus and index (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetDataDir() string {
	return dataDir
}
