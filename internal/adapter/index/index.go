package index

import (
	"unicode/utf8"

	"healthrag/internal/adapter/analyzer"
	"healthrag/internal/domain"
)

// snippetRunes is how much of the original content is kept per document
// for answer sources.
const snippetRunes = 1000

// Index is the built term-weighted index: normalized document texts,
// their metadata, and the TF-IDF matrix, all index-aligned. Only Build
// and Load produce one; an Index is immutable afterwards, so concurrent
// read-only queries are safe.
type Index struct {
	vectorizer *Vectorizer
	rows       []SparseVector
	texts      []string
	meta       []domain.DocumentMeta
}

// Build constructs an index from raw documents. Title and content are
// concatenated, normalized, and kept only when the normalized text is
// longer than the configured minimum; everything else (fetch failures,
// empty records) is silently dropped. Returns domain.ErrEmptyCorpus
// when nothing survives.
func Build(docs []domain.RawDocument, opts Options) (*Index, error) {
	var texts []string
	var meta []domain.DocumentMeta

	for i, doc := range docs {
		if opts.Progress != nil {
			opts.Progress(i+1, len(docs))
		}
		if doc.Error != "" {
			continue
		}
		normalized := analyzer.Normalize(doc.Title + " " + doc.Content)
		if utf8.RuneCountInString(normalized) <= opts.MinTextLength {
			continue
		}
		texts = append(texts, normalized)
		meta = append(meta, domain.DocumentMeta{
			URL:     doc.URL,
			Title:   doc.Title,
			Snippet: analyzer.TruncateRunes(doc.Content, snippetRunes),
		})
	}

	if len(texts) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	vectorizer := fitVectorizer(texts, opts)

	rows := make([]SparseVector, len(texts))
	for i, text := range texts {
		rows[i] = vectorizer.Transform(text)
	}

	return &Index{
		vectorizer: vectorizer,
		rows:       rows,
		texts:      texts,
		meta:       meta,
	}, nil
}

// Len returns the number of indexed documents (matrix rows).
func (ix *Index) Len() int { return len(ix.rows) }

// Terms returns the vocabulary size (matrix columns).
func (ix *Index) Terms() int { return len(ix.vectorizer.IDF) }

// Row returns the term-weight vector of document i.
func (ix *Index) Row(i int) SparseVector { return ix.rows[i] }

// Text returns the normalized text of document i.
func (ix *Index) Text(i int) string { return ix.texts[i] }

// Meta returns the metadata of document i.
func (ix *Index) Meta(i int) domain.DocumentMeta { return ix.meta[i] }

// QueryVector normalizes a query and projects it into the fitted
// vocabulary space. Unknown terms are dropped; this never fails.
func (ix *Index) QueryVector(query string) SparseVector {
	return ix.vectorizer.Transform(analyzer.Normalize(query))
}
