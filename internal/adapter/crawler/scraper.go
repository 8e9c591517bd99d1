package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"healthrag/internal/domain"
	"healthrag/internal/port"
)

var _ port.Fetcher = (*Scraper)(nil)

// maxBodyBytes bounds how much of a thread page is read.
const maxBodyBytes = 4 << 20

// Scraper fetches forum threads with a bounded worker pool. Each fetch
// runs with its own timeout; failures come back as error-tagged records
// with empty content so the caller can store and filter them uniformly.
type Scraper struct {
	client      *http.Client
	concurrency int
	userAgent   string
}

func NewScraper(concurrency int, timeout time.Duration, userAgent string) *Scraper {
	if concurrency <= 0 {
		concurrency = 3
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Scraper{
		client:      &http.Client{Timeout: timeout},
		concurrency: concurrency,
		userAgent:   userAgent,
	}
}

// FetchAll fetches every URL and returns one record per URL, in input
// order. The only shared state is the result slice, written at disjoint
// indices.
func (s *Scraper) FetchAll(ctx context.Context, urls []string, progress func(done, total int)) []domain.RawDocument {
	results := make([]domain.RawDocument, len(urls))
	jobs := make(chan int)

	var done int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < s.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = s.fetch(ctx, urls[i])
				if progress != nil {
					mu.Lock()
					done++
					progress(done, len(urls))
					mu.Unlock()
				}
			}
		}()
	}

	for i := range urls {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(urls); j++ {
				results[j] = domain.RawDocument{URL: urls[j], Error: ctx.Err().Error()}
			}
			close(jobs)
			wg.Wait()
			return results
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

func (s *Scraper) fetch(ctx context.Context, url string) domain.RawDocument {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.RawDocument{URL: url, Error: err.Error()}
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.RawDocument{URL: url, Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.RawDocument{URL: url, Error: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.RawDocument{URL: url, Error: err.Error()}
	}

	page := string(body)
	title := ExtractTitle(page)
	content := ExtractContent(page)
	if content == "" {
		content = title
	}

	return domain.RawDocument{URL: url, Title: title, Content: content}
}
