package domain

import "errors"

var (
	// ErrEmptyCorpus is returned by an index build when no document
	// survives the minimum-length filter.
	ErrEmptyCorpus = errors.New("no valid documents to index")

	// ErrIndexNotBuilt is returned when a query runs before an index
	// has been built or loaded.
	ErrIndexNotBuilt = errors.New("index not built")

	// ErrCorruptIndex is returned when the persisted index artifacts
	// are missing or disagree with each other. The caller must rebuild.
	ErrCorruptIndex = errors.New("corrupt index")
)
