package usecase

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"healthrag/internal/adapter/index"
	"healthrag/internal/adapter/store"
	"healthrag/internal/domain"
)

func newTestCorpus(t *testing.T, docs []domain.RawDocument) *store.BoltStore {
	t.Helper()
	st, err := store.NewBoltStore(filepath.Join(t.TempDir(), "corpus.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	if err := st.PutBatch(docs); err != nil {
		t.Fatal(err)
	}
	return st
}

func TestBuild_FromCorpusStore(t *testing.T) {
	st := newTestCorpus(t, []domain.RawDocument{
		{URL: "https://forum.example/a", Title: "Bladder infection",
			Content: strings.Repeat("bladder infection antibiotics water ", 4)},
		{URL: "https://forum.example/b", Title: "Migraine",
			Content: strings.Repeat("migraine headache darkness sleep ", 4)},
		{URL: "https://forum.example/c", Error: "HTTP 404"},
	})

	var calls int
	u := NewBuildUseCase(st, index.DefaultOptions())
	ix, err := u.Build(func(done, total int) {
		calls++
		if total != 3 {
			t.Errorf("expected progress over 3 threads, got %d", total)
		}
	})
	if err != nil {
		t.Fatal(err)
	}

	if ix.Len() != 2 {
		t.Errorf("expected 2 indexed documents, got %d", ix.Len())
	}
	if calls != 3 {
		t.Errorf("expected 3 progress calls, got %d", calls)
	}
}

func TestBuild_EmptyCorpusStore(t *testing.T) {
	st := newTestCorpus(t, []domain.RawDocument{
		{URL: "https://forum.example/a", Error: "timeout"},
	})

	u := NewBuildUseCase(st, index.DefaultOptions())
	_, err := u.Build(nil)
	if !errors.Is(err, domain.ErrEmptyCorpus) {
		t.Errorf("expected ErrEmptyCorpus, got %v", err)
	}
}
