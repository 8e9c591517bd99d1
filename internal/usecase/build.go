package usecase

import (
	"fmt"

	"healthrag/internal/adapter/index"
	"healthrag/internal/port"
)

// BuildUseCase turns the stored corpus into a ready index.
type BuildUseCase struct {
	store port.CorpusStore
	opts  index.Options
}

func NewBuildUseCase(store port.CorpusStore, opts index.Options) *BuildUseCase {
	return &BuildUseCase{store: store, opts: opts}
}

// Build reads every stored thread and builds the term-weighted index.
// The progress callback, when set, fires once per thread during
// normalization and filtering.
func (u *BuildUseCase) Build(progress func(done, total int)) (*index.Index, error) {
	docs, err := u.store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list corpus: %w", err)
	}

	opts := u.opts
	opts.Progress = progress

	return index.Build(docs, opts)
}
