package index

import (
	"math"
	"sort"

	"healthrag/internal/adapter/analyzer"
)

// Options controls corpus filtering and vocabulary fitting. The zero
// value is not usable; call DefaultOptions.
type Options struct {
	// MinTextLength drops documents whose normalized text is not longer
	// than this many runes.
	MinTextLength int
	// MaxFeatures caps the vocabulary; the highest document-frequency
	// terms win, ties broken by term ascending.
	MaxFeatures int
	// MinDF drops terms appearing in fewer documents.
	MinDF int
	// MaxDFRatio drops terms appearing in more than this fraction of
	// documents.
	MaxDFRatio float64
	// Bigrams adds adjacent-token pairs to the vocabulary.
	Bigrams bool
	// Progress, when set, is called once per raw document during a build.
	Progress func(done, total int)
}

// DefaultOptions mirrors the parameters the corpus was designed around.
func DefaultOptions() Options {
	return Options{
		MinTextLength: 50,
		MaxFeatures:   5000,
		MinDF:         1,
		MaxDFRatio:    0.8,
		Bigrams:       true,
	}
}

// Vectorizer projects normalized text into a fixed term-weight space.
// It is fitted once over the corpus and is read-only afterwards.
type Vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	Bigrams    bool           `json:"bigrams"`
}

// fitVectorizer learns the vocabulary and smoothed IDF weights from
// already-normalized document texts.
func fitVectorizer(texts []string, opts Options) *Vectorizer {
	df := make(map[string]int)
	for _, text := range texts {
		seen := make(map[string]struct{})
		for _, term := range extractTerms(text, opts.Bigrams) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	n := len(texts)
	maxDF := int(opts.MaxDFRatio * float64(n))
	if opts.MaxDFRatio <= 0 || opts.MaxDFRatio >= 1 {
		maxDF = n
	}
	// A tiny corpus must stay indexable: the ratio cutoff never drops
	// below the minimum document frequency.
	if maxDF < opts.MinDF {
		maxDF = opts.MinDF
	}

	terms := make([]string, 0, len(df))
	for term, count := range df {
		if count < opts.MinDF || count > maxDF {
			continue
		}
		terms = append(terms, term)
	}

	// Feature cap: keep the highest-df terms; equal df breaks ties by
	// term ascending so a fixed corpus always yields the same vocabulary.
	if opts.MaxFeatures > 0 && len(terms) > opts.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if df[terms[i]] != df[terms[j]] {
				return df[terms[i]] > df[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:opts.MaxFeatures]
	}

	// Column ids follow lexicographic term order.
	sort.Strings(terms)

	v := &Vectorizer{
		Vocabulary: make(map[string]int, len(terms)),
		IDF:        make([]float64, len(terms)),
		Bigrams:    opts.Bigrams,
	}
	for i, term := range terms {
		v.Vocabulary[term] = i
		v.IDF[i] = math.Log((1+float64(n))/(1+float64(df[term]))) + 1
	}
	return v
}

// Transform projects normalized text into the fitted space: raw term
// counts weighted by IDF, L2-normalized. Out-of-vocabulary terms are
// dropped; a text with no known terms yields an empty vector.
func (v *Vectorizer) Transform(text string) SparseVector {
	counts := make(map[int]int)
	for _, term := range extractTerms(text, v.Bigrams) {
		if col, ok := v.Vocabulary[term]; ok {
			counts[col]++
		}
	}
	if len(counts) == 0 {
		return SparseVector{}
	}

	cols := make([]int, 0, len(counts))
	for col := range counts {
		cols = append(cols, col)
	}
	sort.Ints(cols)

	vec := SparseVector{
		Indices: cols,
		Values:  make([]float64, len(cols)),
	}
	for i, col := range cols {
		vec.Values[i] = float64(counts[col]) * v.IDF[col]
	}
	vec.normalize()
	return vec
}

// extractTerms produces vocabulary terms from normalized text: token
// unigrams, plus adjacent-token bigrams joined by a single space.
func extractTerms(text string, bigrams bool) []string {
	tokens := analyzer.Tokenize(text)
	if !bigrams || len(tokens) < 2 {
		return tokens
	}
	terms := make([]string, 0, 2*len(tokens)-1)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}
