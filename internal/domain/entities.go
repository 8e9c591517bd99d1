package domain

// RawDocument is a single forum thread as produced by the crawler or a
// local corpus import. Error carries a fetch failure; such records have
// empty content and are dropped by the index build.
type RawDocument struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Error   string `json:"error,omitempty"`
}

// DocumentMeta describes an indexed thread. Snippet keeps the first
// 1000 runes of the original content for answer sources.
type DocumentMeta struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// SearchResult references an indexed document by its row position.
type SearchResult struct {
	DocIndex int
	Score    float64
}

// Source is one supporting thread attached to an answer.
type Source struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Score   float64 `json:"score"`
	Snippet string  `json:"content_snippet"`
}

// Answer is the composed response for one question. Confidence is the
// top result's cosine score; zero with no sources means the forum had
// nothing relevant, which is a valid answer rather than an error.
type Answer struct {
	Text       string   `json:"answer"`
	Confidence float64  `json:"confidence"`
	Sources    []Source `json:"sources"`
}

// CorpusStats summarises a stored corpus and a built index.
type CorpusStats struct {
	ThreadCount    int
	IndexedDocs    int
	VocabularySize int
}
