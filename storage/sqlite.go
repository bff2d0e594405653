package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

const createCredentialTable = `
CREATE TABLE IF NOT EXISTS credential (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLiteTier keeps record entries in a single key/value table inside a local
// SQLite database. A heavier long-lived tier than FileTier; fits hosts that
// already keep client state in SQLite.
type SQLiteTier struct {
	db *sql.DB
}

// NewSQLiteTier opens (or creates) the database at path and ensures the
// credential table exists.
func NewSQLiteTier(path string) (*SQLiteTier, error) {
	if path == "" {
		return nil, errors.New("sqlite tier: database path required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite tier: %w: %w", ErrTierUnavailable, err)
	}
	if _, err := db.Exec(createCredentialTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite tier: %w: %w", ErrTierUnavailable, err)
	}
	return &SQLiteTier{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteTier) Close() error {
	return s.db.Close()
}

func (s *SQLiteTier) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credential WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("sqlite tier get: %w: %w", ErrTierUnavailable, err)
	}
	return value, nil
}

func (s *SQLiteTier) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO credential (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("sqlite tier set: %w: %w", ErrTierUnavailable, err)
	}
	return nil
}

func (s *SQLiteTier) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM credential WHERE key = ?`, key); err != nil {
		return fmt.Errorf("sqlite tier remove: %w: %w", ErrTierUnavailable, err)
	}
	return nil
}
