package index

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"healthrag/internal/domain"
)

func testDocs() []domain.RawDocument {
	return []domain.RawDocument{
		{
			URL:     "https://forum.example/threads/1",
			Title:   "Bladder infection treatment",
			Content: strings.Repeat("bladder infection antibiotics water rest ", 5),
		},
		{
			URL:     "https://forum.example/threads/2",
			Title:   "Migraine headache relief",
			Content: strings.Repeat("migraine headache darkness sleep hydration ", 5),
		},
		{
			URL:     "https://forum.example/threads/3",
			Title:   "Too short",
			Content: "tiny",
		},
		{
			URL:   "https://forum.example/threads/4",
			Error: "HTTP 404",
		},
	}
}

func TestBuild_FiltersShortDocuments(t *testing.T) {
	ix, err := Build(testDocs(), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	// 2 of 4 documents survive the length filter.
	if ix.Len() != 2 {
		t.Errorf("expected 2 indexed documents, got %d", ix.Len())
	}
	if got := ix.Meta(0).URL; got != "https://forum.example/threads/1" {
		t.Errorf("metadata order broken: got %s", got)
	}
	if !strings.HasPrefix(ix.Text(0), "bladder infection treatment") {
		t.Errorf("expected normalized title-first text, got %q", ix.Text(0))
	}
}

func TestBuild_EmptyCorpus(t *testing.T) {
	docs := []domain.RawDocument{
		{URL: "u1", Title: "a", Content: "short"},
		{URL: "u2", Error: "timeout"},
	}
	_, err := Build(docs, DefaultOptions())
	if !errors.Is(err, domain.ErrEmptyCorpus) {
		t.Errorf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestBuild_SnippetTruncation(t *testing.T) {
	long := strings.Repeat("x", 1500)
	docs := []domain.RawDocument{
		{URL: "u1", Title: "title words here", Content: long},
	}
	ix, err := Build(docs, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if got := len(ix.Meta(0).Snippet); got != 1000 {
		t.Errorf("expected 1000-rune snippet, got %d", got)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ix, err := Build(testDocs(), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	prefix := filepath.Join(t.TempDir(), "health_index")
	if err := ix.Save(prefix); err != nil {
		t.Fatal(err)
	}
	if !Exists(prefix) {
		t.Fatal("expected all three artifacts after save")
	}

	loaded, err := Load(prefix)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Len() != ix.Len() || loaded.Terms() != ix.Terms() {
		t.Fatalf("shape changed across round-trip: %dx%d vs %dx%d",
			loaded.Len(), loaded.Terms(), ix.Len(), ix.Terms())
	}

	query := "bladder infection"
	before := ix.QueryVector(query)
	after := loaded.QueryVector(query)
	for i := 0; i < ix.Len(); i++ {
		a := Dot(before, ix.Row(i))
		b := Dot(after, loaded.Row(i))
		if math.Abs(a-b) > 1e-6 {
			t.Errorf("doc %d: score %v before save, %v after load", i, a, b)
		}
	}
}

func TestLoad_MissingArtifact(t *testing.T) {
	ix, err := Build(testDocs(), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	prefix := filepath.Join(t.TempDir(), "health_index")
	if err := ix.Save(prefix); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(prefix + "_matrix.json"); err != nil {
		t.Fatal(err)
	}

	if Exists(prefix) {
		t.Error("Exists must report false with an artifact missing")
	}
	_, err = Load(prefix)
	if !errors.Is(err, domain.ErrCorruptIndex) {
		t.Errorf("expected ErrCorruptIndex, got %v", err)
	}
}

func TestLoad_ShapeMismatch(t *testing.T) {
	ix, err := Build(testDocs(), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	prefix := filepath.Join(t.TempDir(), "health_index")
	if err := ix.Save(prefix); err != nil {
		t.Fatal(err)
	}

	// Metadata claiming a different document count must fail the load.
	if err := os.WriteFile(prefix+"_metadata.json",
		[]byte(`{"documents":["only one"],"metadata":[{"url":"u","title":"t","snippet":"s"}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err = Load(prefix)
	if !errors.Is(err, domain.ErrCorruptIndex) {
		t.Errorf("expected ErrCorruptIndex for row mismatch, got %v", err)
	}
}

func TestLoad_GarbageArtifact(t *testing.T) {
	ix, err := Build(testDocs(), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	prefix := filepath.Join(t.TempDir(), "health_index")
	if err := ix.Save(prefix); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(prefix+"_vectorizer.json", []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err = Load(prefix)
	if !errors.Is(err, domain.ErrCorruptIndex) {
		t.Errorf("expected ErrCorruptIndex for garbage artifact, got %v", err)
	}
}
