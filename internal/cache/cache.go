// Package cache is the persistent mirror for the two synced documents.
// It is never authoritative: the in-memory copy owned by the running
// server wins once loaded.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SchemaVersion suffixes every document key. Bump it when the document
// schema changes incompatibly; rows under old suffixes are orphaned, not
// migrated.
const SchemaVersion = "v6"

// Keys for the two document blobs.
const (
	KeyContent = "content_" + SchemaVersion
	KeyTheme   = "theme_" + SchemaVersion
)

// Store wraps a SQLite database holding cached JSON documents.
type Store struct {
	*sql.DB
	path string
}

// Open creates or opens a SQLite cache at the given path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging cache: %w", err)
	}

	s := &Store{DB: sqlDB, path: path}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// OpenMemory creates an in-memory cache (useful for testing).
func OpenMemory() (*Store, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory cache: %w", err)
	}

	s := &Store{DB: sqlDB, path: ":memory:"}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS documents (
    key TEXT PRIMARY KEY,
    body TEXT NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

// Get returns the cached blob for key. The second return is false when no
// row exists.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var body []byte
	err := s.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE key = ?`, key,
	).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cached document %s: %w", key, err)
	}
	return body, true, nil
}

// Put writes the blob for key, replacing any previous value.
func (s *Store) Put(ctx context.Context, key string, body []byte) error {
	_, err := s.ExecContext(ctx,
		`INSERT INTO documents (key, body, updated_at) VALUES (?, ?, datetime('now'))
		 ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		key, body,
	)
	if err != nil {
		return fmt.Errorf("caching document %s: %w", key, err)
	}
	return nil
}
