package index

import (
	"encoding/json"
	"fmt"
	"os"

	"healthrag/internal/domain"
)

// The index persists as three co-located artifacts sharing a path
// prefix. All three form one logical unit: a load that cannot restore
// them consistently fails whole.
const (
	suffixVectorizer = "_vectorizer.json"
	suffixMatrix     = "_matrix.json"
	suffixMetadata   = "_metadata.json"
)

type matrixArtifact struct {
	Rows []SparseVector `json:"rows"`
	Cols int            `json:"cols"`
}

type metadataArtifact struct {
	Documents []string              `json:"documents"`
	Metadata  []domain.DocumentMeta `json:"metadata"`
}

// Save writes the vectorizer, matrix, and document metadata next to
// each other under the given path prefix.
func (ix *Index) Save(prefix string) error {
	vec, err := json.Marshal(ix.vectorizer)
	if err != nil {
		return fmt.Errorf("failed to encode vectorizer: %w", err)
	}
	mat, err := json.Marshal(matrixArtifact{Rows: ix.rows, Cols: ix.Terms()})
	if err != nil {
		return fmt.Errorf("failed to encode matrix: %w", err)
	}
	meta, err := json.Marshal(metadataArtifact{Documents: ix.texts, Metadata: ix.meta})
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	if err := os.WriteFile(prefix+suffixVectorizer, vec, 0644); err != nil {
		return err
	}
	if err := os.WriteFile(prefix+suffixMatrix, mat, 0644); err != nil {
		return err
	}
	return os.WriteFile(prefix+suffixMetadata, meta, 0644)
}

// Load restores an index from its three artifacts. Any missing or
// unreadable artifact, or any shape disagreement between them, fails
// the whole load with domain.ErrCorruptIndex.
func Load(prefix string) (*Index, error) {
	var vectorizer Vectorizer
	if err := readArtifact(prefix+suffixVectorizer, &vectorizer); err != nil {
		return nil, err
	}
	var matrix matrixArtifact
	if err := readArtifact(prefix+suffixMatrix, &matrix); err != nil {
		return nil, err
	}
	var metadata metadataArtifact
	if err := readArtifact(prefix+suffixMetadata, &metadata); err != nil {
		return nil, err
	}

	if len(vectorizer.IDF) != len(vectorizer.Vocabulary) {
		return nil, fmt.Errorf("%w: idf length %d disagrees with vocabulary size %d",
			domain.ErrCorruptIndex, len(vectorizer.IDF), len(vectorizer.Vocabulary))
	}
	if matrix.Cols != len(vectorizer.Vocabulary) {
		return nil, fmt.Errorf("%w: matrix has %d columns, vocabulary has %d terms",
			domain.ErrCorruptIndex, matrix.Cols, len(vectorizer.Vocabulary))
	}
	if len(matrix.Rows) != len(metadata.Documents) || len(matrix.Rows) != len(metadata.Metadata) {
		return nil, fmt.Errorf("%w: %d matrix rows, %d documents, %d metadata entries",
			domain.ErrCorruptIndex, len(matrix.Rows), len(metadata.Documents), len(metadata.Metadata))
	}
	for i, row := range matrix.Rows {
		if len(row.Indices) != len(row.Values) {
			return nil, fmt.Errorf("%w: row %d has %d indices but %d values",
				domain.ErrCorruptIndex, i, len(row.Indices), len(row.Values))
		}
		for _, col := range row.Indices {
			if col < 0 || col >= matrix.Cols {
				return nil, fmt.Errorf("%w: row %d references column %d of %d",
					domain.ErrCorruptIndex, i, col, matrix.Cols)
			}
		}
	}

	return &Index{
		vectorizer: &vectorizer,
		rows:       matrix.Rows,
		texts:      metadata.Documents,
		meta:       metadata.Metadata,
	}, nil
}

// Exists reports whether all three artifacts are present, signalling
// "index ready" to callers deciding between build and load.
func Exists(prefix string) bool {
	for _, suffix := range []string{suffixVectorizer, suffixMatrix, suffixMetadata} {
		if _, err := os.Stat(prefix + suffix); err != nil {
			return false
		}
	}
	return true
}

func readArtifact(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrCorruptIndex, path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrCorruptIndex, path, err)
	}
	return nil
}
