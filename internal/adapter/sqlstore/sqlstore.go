// Package sqlstore implements the blob store over database/sql. The postgres
// and sqlite adapters supply the dialect-specific statements.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"levelup/internal/domain"
)

// Queries holds the statements for one SQL dialect.
type Queries struct {
	// Select takes a key and returns its value as text.
	Select string
	// Upsert takes key, value and updated_at.
	Upsert string
}

// Store reads and writes blobs in a single key/value table.
type Store struct {
	db  *sql.DB
	q   Queries
	now func() time.Time
}

var _ domain.BlobStore = (*Store)(nil)

// New creates a Store on db using the given statements.
func New(db *sql.DB, q Queries) *Store {
	return &Store{db: db, q: q, now: time.Now}
}

// GetBlobs reads the requested keys inside one transaction.
func (s *Store) GetBlobs(ctx context.Context, keys ...string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	err := WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, k := range keys {
			var v string
			err := tx.QueryRowContext(ctx, s.q.Select, k).Scan(&v)
			if errors.Is(err, sql.ErrNoRows) {
				continue
			}
			if err != nil {
				return fmt.Errorf("select %s: %w", k, err)
			}
			out[k] = []byte(v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PutBlobs upserts every blob in one transaction.
func (s *Store) PutBlobs(ctx context.Context, blobs map[string][]byte) error {
	keys := make([]string, 0, len(blobs))
	for k := range blobs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	now := s.now().UTC()
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, k := range keys {
			if _, err := tx.ExecContext(ctx, s.q.Upsert, k, string(blobs[k]), now); err != nil {
				return fmt.Errorf("upsert %s: %w", k, err)
			}
		}
		return nil
	})
}

// WithTx runs fn inside a SQL transaction.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}
