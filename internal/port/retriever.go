package port

import "healthrag/internal/domain"

// Retriever defines the interface for ranking indexed documents against
// a query.
type Retriever interface {
	// Search returns up to k results with positive similarity, best first.
	Search(query string, k int) ([]domain.SearchResult, error)
}
