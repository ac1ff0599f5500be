// Package kvstore provides the named-blob persistence layer for ticklist.
// Blobs are opaque byte values addressed by name, stored in a single-table
// SQLite database under the data directory. The stores above it serialize
// their full record lists into blobs; this layer never inspects contents.
package kvstore

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// DBFileName is the database file created inside the data directory.
const DBFileName = "ticklist.db"

// ErrNoBlob is returned by Get when no blob exists under the given name.
var ErrNoBlob = errors.New("no blob with that name")

// Store is a named-blob store backed by SQLite. Methods are safe for
// concurrent use; the database serializes writes.
type Store struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens (or creates) the
// database inside it, and ensures the schema exists.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the blob stored under name, or ErrNoBlob if absent.
func (s *Store) Get(name string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM blobs WHERE name = ?", name).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoBlob
		}
		return nil, fmt.Errorf("reading blob %s: %w", name, err)
	}
	return value, nil
}

// Set stores value under name, replacing any previous blob.
func (s *Store) Set(name string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO blobs (name, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		name, value, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing blob %s: %w", name, err)
	}
	return nil
}

// Delete removes the blob stored under name. Deleting a missing blob is
// not an error.
func (s *Store) Delete(name string) error {
	if _, err := s.db.Exec("DELETE FROM blobs WHERE name = ?", name); err != nil {
		return fmt.Errorf("deleting blob %s: %w", name, err)
	}
	return nil
}

// Close releases the database connection. Close is idempotent. The handle
// stays set so a straggling debounced write that fires after Close gets a
// "database is closed" error from database/sql rather than a panic; the
// stores record that error silently.
func (s *Store) Close() error {
	return s.db.Close()
}
