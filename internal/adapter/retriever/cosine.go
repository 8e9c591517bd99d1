package retriever

import (
	"sort"

	"healthrag/internal/adapter/index"
	"healthrag/internal/domain"
	"healthrag/internal/port"
)

var _ port.Retriever = (*CosineRetriever)(nil)

// CosineRetriever scores a query against every indexed document and
// returns the top k by cosine similarity. It only exists around a built
// or loaded index; queries against a missing index fail with
// domain.ErrIndexNotBuilt.
type CosineRetriever struct {
	index *index.Index
}

func NewCosineRetriever(ix *index.Index) *CosineRetriever {
	return &CosineRetriever{index: ix}
}

// Search ranks documents against the query. Results come back best
// first, ties broken by original document order; documents with zero or
// negative similarity are excluded, so fewer than k results is normal.
// k <= 0 yields no results.
func (r *CosineRetriever) Search(query string, k int) ([]domain.SearchResult, error) {
	if r.index == nil {
		return nil, domain.ErrIndexNotBuilt
	}
	if k <= 0 {
		return nil, nil
	}

	queryVec := r.index.QueryVector(query)
	if len(queryVec.Indices) == 0 {
		return nil, nil
	}

	results := make([]domain.SearchResult, 0, r.index.Len())
	for i := 0; i < r.index.Len(); i++ {
		score := index.Dot(queryVec, r.index.Row(i))
		if score <= 0 {
			continue
		}
		results = append(results, domain.SearchResult{DocIndex: i, Score: score})
	}

	// Stable sort keeps equal scores in document order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}
