// Package jsonstore contains the flat-file implementation of the
// persistence layer. Each entity collection is one JSON array file that
// is read and rewritten wholesale on every operation.
//
// There is deliberately no locking and no transactional guarantee:
// concurrent writers to the same file race and the last write wins.
// Swapping this package for a real datastore only requires new
// implementations of the interfaces in internal/domain/repository.
package jsonstore

import (
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Store serializes one entity collection to a single JSON file.
type Store[T any] struct {
	path string
}

// NewStore creates a store backed by the given file. The file is created
// holding an empty list if it does not exist yet.
func NewStore[T any](path string) (*Store[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create data directory")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, errors.Wrap(err, "initialize store file")
		}
	}

	return &Store[T]{path: path}, nil
}

// Load reads the whole collection. A missing, empty, or malformed file
// yields an empty collection rather than an error; this masks data loss
// but matches the behavior being reproduced.
func (s *Store[T]) Load() ([]T, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}

		return nil, errors.Wrap(err, "read store file")
	}

	if len(raw) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		// Malformed content loads as an empty collection.
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// Save rewrites the whole collection.
func (s *Store[T]) Save(items []T) error {
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal collection")
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return errors.Wrap(err, "write store file")
	}

	return nil
}

// NextID returns max(id)+1 over the given ids, or 1 for an empty list.
func NextID(ids []int) int {
	next := 1
	for _, id := range ids {
		if id >= next {
			next = id + 1
		}
	}

	return next
}
