package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"healthrag/internal/domain"
)

// Loader reads raw thread dumps from local JSON files (each file holds
// an array of threads, the shape the crawler exports). Files are
// selected by doublestar include/exclude globs relative to a root.
type Loader struct {
	includes []string
	excludes []string
}

func NewLoader(includes, excludes []string) *Loader {
	if len(includes) == 0 {
		includes = []string{"**/*.json"}
	}
	return &Loader{
		includes: includes,
		excludes: excludes,
	}
}

// Load walks root and decodes every matching file. A file that is not
// valid JSON fails the load; missing matches yield an empty slice.
func (l *Loader) Load(root string) ([]domain.RawDocument, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var docs []domain.RawDocument
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)
		if !l.shouldInclude(relPath) || l.shouldExclude(relPath) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var fileDocs []domain.RawDocument
		if err := json.Unmarshal(data, &fileDocs); err != nil {
			return fmt.Errorf("failed to decode %s: %w", path, err)
		}
		docs = append(docs, fileDocs...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func (l *Loader) shouldInclude(relPath string) bool {
	for _, pattern := range l.includes {
		if match, _ := doublestar.Match(pattern, relPath); match {
			return true
		}
	}
	return false
}

func (l *Loader) shouldExclude(relPath string) bool {
	for _, pattern := range l.excludes {
		if match, _ := doublestar.Match(pattern, relPath); match {
			return true
		}
	}
	return false
}
