// Package memory implements an in-memory blob store for development and testing.
package memory

import (
	"context"
	"sync"

	"levelup/internal/domain"
)

// DB implements an in-memory blob store.
type DB struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// New creates a new in-memory store.
func New() *DB {
	return &DB{blobs: make(map[string][]byte)}
}

// Ensure interfaces are met.
var _ domain.BlobStore = (*DB)(nil)

// GetBlobs returns copies of the stored blobs for keys.
func (db *DB) GetBlobs(ctx context.Context, keys ...string) (map[string][]byte, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if v, ok := db.blobs[k]; ok {
			out[k] = append([]byte(nil), v...)
		}
	}
	return out, nil
}

// PutBlobs stores all blobs under one lock.
func (db *DB) PutBlobs(ctx context.Context, blobs map[string][]byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for k, v := range blobs {
		db.blobs[k] = append([]byte(nil), v...)
	}
	return nil
}
