// Package sqlite stores the state blobs in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"levelup/internal/adapter/sqlstore"
	"levelup/internal/domain"
)

// DB is a SQLite-backed blob store.
type DB struct {
	*sqlstore.Store
	sql *sql.DB
}

var _ domain.BlobStore = (*DB)(nil)

var queries = sqlstore.Queries{
	Select: "SELECT value FROM levelup_blobs WHERE key=?;",
	Upsert: "INSERT INTO levelup_blobs(key, value, updated_at) VALUES(?, ?, ?) " +
		"ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at;",
}

// DefaultPath returns the default database location in the home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".levelup.db"), nil
}

// Open opens (and creates if missing) the database at path and migrates it.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	s, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection serializes writers.
	s.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	d := &DB{Store: sqlstore.New(s, queries), sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmt := "CREATE TABLE IF NOT EXISTS levelup_blobs (key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TIMESTAMP NOT NULL);"
	if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
