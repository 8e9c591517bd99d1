package index

import (
	"math"
	"testing"
)

func TestFitVectorizer_SmoothedIDF(t *testing.T) {
	texts := []string{
		"apple banana",
		"apple cherry",
		"apple banana cherry",
	}
	opts := DefaultOptions()
	opts.Bigrams = false
	v := fitVectorizer(texts, opts)

	col, ok := v.Vocabulary["banana"]
	if !ok {
		t.Fatal("expected 'banana' in vocabulary")
	}
	// df=2, N=3: log((1+3)/(1+2)) + 1
	want := math.Log(4.0/3.0) + 1
	if math.Abs(v.IDF[col]-want) > 1e-12 {
		t.Errorf("expected idf %v for banana, got %v", want, v.IDF[col])
	}
}

func TestFitVectorizer_MaxDFPruning(t *testing.T) {
	// 'common' appears in 5/5 documents (ratio 1.0 > 0.8) and must go.
	texts := []string{
		"common alpha word filler",
		"common beta word filler",
		"common gamma other filler",
		"common delta other thing",
		"common epsilon some thing",
	}
	opts := DefaultOptions()
	opts.Bigrams = false
	v := fitVectorizer(texts, opts)

	if _, ok := v.Vocabulary["common"]; ok {
		t.Error("term appearing in every document should be pruned")
	}
	if _, ok := v.Vocabulary["alpha"]; !ok {
		t.Error("rare term should survive pruning")
	}
}

func TestFitVectorizer_FeatureCapDeterministic(t *testing.T) {
	texts := []string{
		"aa bb cc dd",
		"aa bb cc ee",
	}
	opts := DefaultOptions()
	opts.Bigrams = false
	opts.MaxFeatures = 3
	opts.MaxDFRatio = 1.0

	v1 := fitVectorizer(texts, opts)
	v2 := fitVectorizer(texts, opts)

	if len(v1.Vocabulary) != 3 {
		t.Fatalf("expected 3 features, got %d", len(v1.Vocabulary))
	}
	// Highest df first (aa, bb, cc have df=2), ties by term ascending.
	for _, term := range []string{"aa", "bb", "cc"} {
		if _, ok := v1.Vocabulary[term]; !ok {
			t.Errorf("expected %q in capped vocabulary", term)
		}
	}
	for term, col := range v1.Vocabulary {
		if v2.Vocabulary[term] != col {
			t.Errorf("vocabulary not deterministic: %q has columns %d and %d", term, col, v2.Vocabulary[term])
		}
	}
}

func TestFitVectorizer_Bigrams(t *testing.T) {
	texts := []string{
		"stomach pain relief",
		"stomach pain remedy",
	}
	opts := DefaultOptions()
	opts.MaxDFRatio = 1.0
	v := fitVectorizer(texts, opts)

	if _, ok := v.Vocabulary["stomach pain"]; !ok {
		t.Error("expected bigram 'stomach pain' in vocabulary")
	}
}

func TestTransform_L2Normalized(t *testing.T) {
	texts := []string{
		"apple banana cherry",
		"banana cherry durian",
	}
	opts := DefaultOptions()
	opts.MaxDFRatio = 1.0
	v := fitVectorizer(texts, opts)

	vec := v.Transform("apple apple banana")
	var sq float64
	for _, x := range vec.Values {
		sq += x * x
	}
	if math.Abs(sq-1) > 1e-12 {
		t.Errorf("expected unit vector, squared norm %v", sq)
	}
}

func TestTransform_DropsUnknownTerms(t *testing.T) {
	texts := []string{"apple banana", "apple cherry"}
	opts := DefaultOptions()
	opts.Bigrams = false
	opts.MaxDFRatio = 1.0
	v := fitVectorizer(texts, opts)

	vec := v.Transform("unknown words only")
	if len(vec.Indices) != 0 {
		t.Errorf("expected empty vector for out-of-vocabulary text, got %v", vec)
	}
}

func TestDot_SparseOverlap(t *testing.T) {
	a := SparseVector{Indices: []int{0, 2, 5}, Values: []float64{1, 2, 3}}
	b := SparseVector{Indices: []int{2, 3, 5}, Values: []float64{4, 5, 6}}
	if got := Dot(a, b); got != 2*4+3*6 {
		t.Errorf("expected dot 26, got %v", got)
	}
}
