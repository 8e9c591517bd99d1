package port

import "healthrag/internal/domain"

// CorpusStore persists raw forum threads between crawl and index runs.
type CorpusStore interface {
	Put(doc domain.RawDocument) error

	PutBatch(docs []domain.RawDocument) error

	Get(url string) (domain.RawDocument, error)

	// List returns all stored threads in URL order.
	List() ([]domain.RawDocument, error)

	Count() (int, error)

	Close() error
}
