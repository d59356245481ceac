// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bookmarks

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/forkify/pkg/types"
)

// storageKey is the single key-value entry holding the serialized list.
const storageKey = "bookmarks"

// Store persists the bookmark list as a whole: Load returns every entry
// and Save replaces them.
type Store interface {
	Load(ctx context.Context) ([]types.Recipe, error)
	Save(ctx context.Context, recipes []types.Recipe) error
}

// SQLiteStore keeps the bookmark list as one JSON value in a key-value
// table of a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path and its schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating bookmarks directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Load returns the stored list, or an empty list when nothing was saved.
func (s *SQLiteStore) Load(ctx context.Context) ([]types.Recipe, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, storageKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []types.Recipe{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading bookmarks: %w", err)
	}

	var recipes []types.Recipe
	if err := json.Unmarshal([]byte(value), &recipes); err != nil {
		return nil, fmt.Errorf("parsing stored bookmarks: %w", err)
	}
	if recipes == nil {
		recipes = []types.Recipe{}
	}
	return recipes, nil
}

// Save replaces the stored list.
func (s *SQLiteStore) Save(ctx context.Context, recipes []types.Recipe) error {
	if recipes == nil {
		recipes = []types.Recipe{}
	}
	data, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("encoding bookmarks: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, datetime('now'))
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		storageKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("writing bookmarks: %w", err)
	}
	return nil
}
