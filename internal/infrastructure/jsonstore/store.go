// Package jsonstore persists record collections as flat JSON files on disk.
// Each collection is one file holding a JSON array; writes always replace the
// whole collection.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store manages a directory of JSON collection files. All access goes through
// a store-wide RWMutex, so read-modify-write sequences built with Replace are
// the single serialization point for writers.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// NewStore creates a Store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory the store is rooted at.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection)
}

// readLocked reads and decodes a collection. Caller must hold s.mu.
func readLocked[T any](s *Store, collection string) ([]T, error) {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", collection, err)
	}
	return items, nil
}

// writeLocked encodes and replaces a collection atomically via a temp file
// and rename. Caller must hold s.mu for writing.
func writeLocked[T any](s *Store, collection string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", collection, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close collection %s: %w", collection, err)
	}
	if err := os.Rename(tmpName, s.path(collection)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace collection %s: %w", collection, err)
	}
	return nil
}

// ReadAll returns every record in a collection. A collection that does not
// exist yet reads as empty, not as an error.
func ReadAll[T any](s *Store, collection string) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return readLocked[T](s, collection)
}

// WriteAll atomically replaces the full contents of a collection.
func WriteAll[T any](s *Store, collection string, items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeLocked(s, collection, items)
}

// Append adds a single record to the end of a collection.
func Append[T any](s *Store, collection string, item T) error {
	return Replace(s, collection, func(items []T) ([]T, error) {
		return append(items, item), nil
	})
}

// Find returns the records in a collection matching the predicate.
func Find[T any](s *Store, collection string, predicate func(T) bool) ([]T, error) {
	items, err := ReadAll[T](s, collection)
	if err != nil {
		return nil, err
	}

	matched := make([]T, 0)
	for _, item := range items {
		if predicate(item) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// Replace runs a read-modify-write cycle on a collection while holding the
// store's write lock, so no other reader or writer can interleave. If fn
// returns an error the collection is left untouched.
func Replace[T any](s *Store, collection string, fn func(items []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := readLocked[T](s, collection)
	if err != nil {
		return err
	}

	updated, err := fn(items)
	if err != nil {
		return err
	}

	return writeLocked(s, collection, updated)
}
