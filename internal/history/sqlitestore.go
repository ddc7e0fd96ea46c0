package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// historyKey is the fixed name the serialized ledger is stored under.
const historyKey = "promptHistory"

// SQLiteStore persists the ledger as a JSON blob in a small key-value
// table. It shares the file format contract with FileStore: one serialized
// array, newest first.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS kv_store (
		name  TEXT PRIMARY KEY,
		value BLOB NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load decodes the stored blob. A missing row is an empty ledger.
func (s *SQLiteStore) Load() ([]Entry, error) {
	var blob []byte
	err := s.db.QueryRow(`SELECT value FROM kv_store WHERE name = ?`, historyKey).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history row: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(blob, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse stored history: %w", err)
	}
	return entries, nil
}

// Save upserts the serialized sequence.
func (s *SQLiteStore) Save(entries []Entry) error {
	blob, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO kv_store (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		historyKey, blob,
	)
	if err != nil {
		return fmt.Errorf("failed to write history row: %w", err)
	}
	return nil
}

// Remove deletes the row entirely.
func (s *SQLiteStore) Remove() error {
	if _, err := s.db.Exec(`DELETE FROM kv_store WHERE name = ?`, historyKey); err != nil {
		return fmt.Errorf("failed to delete history row: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
