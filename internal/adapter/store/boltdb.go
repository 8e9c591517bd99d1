package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"healthrag/internal/domain"
	"healthrag/internal/port"
)

var _ port.CorpusStore = (*BoltStore)(nil)

var bucketThreads = []byte("threads")

// BoltStore persists crawled forum threads keyed by URL, so a corpus
// can be gathered once and indexed as often as needed.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketThreads)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Put(doc domain.RawDocument) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return putThread(tx, doc)
	})
}

func (s *BoltStore) PutBatch(docs []domain.RawDocument) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, doc := range docs {
			if err := putThread(tx, doc); err != nil {
				return err
			}
		}
		return nil
	})
}

func putThread(tx *bbolt.Tx, doc domain.RawDocument) error {
	if doc.URL == "" {
		return fmt.Errorf("thread has no url")
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return tx.Bucket(bucketThreads).Put([]byte(doc.URL), data)
}

func (s *BoltStore) Get(url string) (domain.RawDocument, error) {
	var doc domain.RawDocument
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketThreads).Get([]byte(url))
		if data == nil {
			return fmt.Errorf("thread not found: %s", url)
		}
		return json.Unmarshal(data, &doc)
	})
	return doc, err
}

// List returns every stored thread. Bolt iterates keys in byte order,
// so the result is URL-sorted and index builds see a stable corpus
// order.
func (s *BoltStore) List() ([]domain.RawDocument, error) {
	var docs []domain.RawDocument
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketThreads).ForEach(func(k, v []byte) error {
			var doc domain.RawDocument
			if err := json.Unmarshal(v, &doc); err != nil {
				return err
			}
			docs = append(docs, doc)
			return nil
		})
	})
	return docs, err
}

func (s *BoltStore) Count() (int, error) {
	count := 0
	err := s.db.View(func(tx *bbolt.Tx) error {
		count = tx.Bucket(bucketThreads).Stats().KeyN
		return nil
	})
	return count, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
