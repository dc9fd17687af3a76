// Package store implements the JSON-file-backed record store shared by
// the user, post and like repositories: one named JSON document holds an
// ordered sequence of records, and the process keeps an in-memory mirror
// synchronized with it.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Collection is the in-memory mirror of one JSON document containing a
// top-level array of records. A single mutex guards the whole
// read-modify-write-persist cycle, so two mutations against the same
// collection cannot lose each other's writes.
type Collection[T any] struct {
	path string
	log  *zap.Logger

	mu      sync.Mutex
	records []T
}

// Open loads the collection backed by the file at path. A missing file
// is created holding an empty array. A file that exists but cannot be
// parsed is logged and treated as empty; the broken content is
// overwritten on the next persist. This mirrors the reference behavior
// and is a known silent-data-loss risk.
func Open[T any](path string, log *zap.Logger) (*Collection[T], error) {
	c := &Collection[T]{path: path, log: log}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		c.records = []T{}
		if err := c.persistLocked(); err != nil {
			return nil, err
		}
		return c, nil
	}

	if err := json.Unmarshal(data, &c.records); err != nil {
		log.Warn("unreadable collection file, starting empty",
			zap.String("path", path), zap.Error(err))
		c.records = []T{}
		return c, nil
	}
	if c.records == nil {
		c.records = []T{}
	}
	return c, nil
}

// Snapshot returns a copy of the record sequence in insertion order.
func (c *Collection[T]) Snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

// View runs fn against the current records under the collection lock.
// fn must not retain or mutate the slice.
func (c *Collection[T]) View(fn func(records []T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.records)
}

// Update runs fn against the current records and, if fn succeeds,
// replaces the mirror with the returned sequence and rewrites the
// backing file before returning. The caller's HTTP response is not
// sent until the write completes. If fn returns an error, neither the
// mirror nor the file is touched.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := fn(c.records)
	if err != nil {
		return err
	}
	prev := c.records
	c.records = next
	if err := c.persistLocked(); err != nil {
		c.records = prev
		return err
	}
	return nil
}

// Flush rewrites the backing file from the current mirror.
func (c *Collection[T]) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.persistLocked()
}

// persistLocked serializes the full mirror and overwrites the file in
// place. Whole-file rewrite, no partial-write protection: a crash mid
// write can corrupt the document.
func (c *Collection[T]) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c.records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}
