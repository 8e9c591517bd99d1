package port

import (
	"context"

	"healthrag/internal/domain"
)

// Fetcher turns a list of thread URLs into raw documents. Failed fetches
// come back as error-tagged records, never as a Go error.
type Fetcher interface {
	FetchAll(ctx context.Context, urls []string, progress func(done, total int)) []domain.RawDocument
}
