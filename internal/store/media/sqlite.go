package media

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore persists blobs in a single-table SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the media database at path. Use
// ":memory:" for an ephemeral database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open media db: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("ping media db: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS media (
		id TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create media table: %w", err)
	}
	return nil
}

// Save stores data under id, replacing any previous value.
func (s *SQLiteStore) Save(id, data string) error {
	_, err := s.db.Exec(
		`INSERT INTO media (id, data, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, created_at = excluded.created_at`,
		id, data, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save media %s: %w", id, err)
	}
	return nil
}

// Get returns the blob for id.
func (s *SQLiteStore) Get(id string) (string, bool) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM media WHERE id = ?`, id).Scan(&data)
	if err != nil {
		return "", false
	}
	return data, true
}

// Delete removes the blob for id.
func (s *SQLiteStore) Delete(id string) error {
	if _, err := s.db.Exec(`DELETE FROM media WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete media %s: %w", id, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
