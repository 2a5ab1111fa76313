package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"mcq-trainer/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL
);
`

const (
	resultsKey = "results"
	themeKey   = "theme"
)

// Store keeps the two storage keys in a single-file SQLite database. The
// pure-Go driver keeps the binary free of cgo.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) LoadResults(ctx context.Context) ([]byte, error) {
	data, err := s.get(ctx, resultsKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrResultsNotFound
	}
	return data, err
}

func (s *Store) SaveResults(ctx context.Context, data []byte) error {
	return s.put(ctx, resultsKey, data)
}

func (s *Store) LoadTheme(ctx context.Context) (domain.Theme, error) {
	data, err := s.get(ctx, themeKey)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrThemeNotFound
	}
	if err != nil {
		return "", err
	}
	return domain.Theme(data), nil
}

func (s *Store) SaveTheme(ctx context.Context, theme domain.Theme) error {
	return s.put(ctx, themeKey, []byte(theme))
}

func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *Store) put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
