package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"healthrag/config"
	"healthrag/internal/adapter/crawler"
	"healthrag/internal/adapter/store"
)

var crawlCmd = &cobra.Command{
	Use:   "crawl <urls-file>",
	Short: "Fetch forum threads into the corpus store",
	Long: `Fetch the thread URLs listed in a file (one per line) and store the
extracted title and content in the corpus database. Failed fetches are
stored as error-tagged records and skipped at index time.

Examples:
  healthrag crawl threads.txt
  healthrag crawl threads.txt -d ./data`,
	Args: cobra.ExactArgs(1),
	RunE: runCrawl,
}

func init() {
	rootCmd.AddCommand(crawlCmd)
}

func runCrawl(cmd *cobra.Command, args []string) error {
	urls, err := readURLs(args[0])
	if err != nil {
		return fmt.Errorf("failed to read urls file: %w", err)
	}
	if len(urls) == 0 {
		return fmt.Errorf("no urls found in %s", args[0])
	}

	cfg := GetConfig()
	dir := GetDataDir()
	if err := config.EnsureDataDir(dir); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	st, err := store.NewBoltStore(config.CorpusDBPath(dir))
	if err != nil {
		return fmt.Errorf("failed to open corpus store: %w", err)
	}
	defer st.Close()

	fmt.Printf("Fetching %d threads...\n", len(urls))

	bar := progressbar.NewOptions(len(urls),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Crawling[reset]"),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	scraper := crawler.NewScraper(cfg.Crawl.Concurrency, cfg.CrawlTimeout(), cfg.Crawl.UserAgent)
	docs := scraper.FetchAll(context.Background(), urls, func(done, total int) {
		bar.Set(done)
	})

	if err := st.PutBatch(docs); err != nil {
		return fmt.Errorf("failed to store threads: %w", err)
	}

	fetched, failed := 0, 0
	for _, doc := range docs {
		if doc.Error != "" {
			failed++
		} else {
			fetched++
		}
	}

	fmt.Printf("\nCrawl complete:\n")
	fmt.Printf("  Threads fetched: %d\n", fetched)
	fmt.Printf("  Threads failed:  %d\n", failed)
	if failed > 0 {
		fmt.Printf("\nFailures:\n")
		for _, doc := range docs {
			if doc.Error != "" {
				fmt.Printf("  - %s: %s\n", doc.URL, doc.Error)
			}
		}
	}
	fmt.Printf("\nCorpus stored at: %s\n", config.CorpusDBPath(dir))
	return nil
}

func readURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}
