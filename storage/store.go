// Package storage persists serialized documents in a local SQLite
// database. Documents live in named slots; the autosave slot is just a
// reserved name.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"mindgrid/graph"
)

// AutosaveSlot is the reserved slot name the shell saves into between
// explicit saves.
const AutosaveSlot = "autosave"

// ErrNotFound is returned when a slot name has no stored document.
var ErrNotFound = errors.New("document not found")

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	name       TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// Store is a key-value store of serialized documents backed by SQLite.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Entry describes one stored document slot.
type Entry struct {
	Name      string
	UpdatedAt time.Time
}

// Open opens (creating if necessary) the database at path and ensures
// the schema exists. The parent directory is created when missing.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("verify database connection: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	log.Info("document store opened", zap.String("path", path))
	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close document store: %w", err)
	}
	return nil
}

// Put serializes doc into the named slot, replacing any previous
// content.
func (s *Store) Put(name string, doc *graph.Document) error {
	if name == "" {
		return errors.New("empty slot name")
	}
	data, err := graph.Encode(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO documents (name, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("store document %q: %w", name, err)
	}
	s.log.Debug("document stored",
		zap.String("slot", name),
		zap.Int("nodes", len(doc.Nodes)),
		zap.Int("edges", len(doc.Edges)))
	return nil
}

// Get decodes the document stored in the named slot. Returns
// ErrNotFound when the slot is empty.
func (s *Store) Get(name string) (*graph.Document, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM documents WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load document %q: %w", name, err)
	}
	doc, err := graph.Decode([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("decode document %q: %w", name, err)
	}
	return doc, nil
}

// Raw returns the stored JSON for a slot without decoding it, for
// exporting as-is.
func (s *Store) Raw(name string) ([]byte, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM documents WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load document %q: %w", name, err)
	}
	return []byte(data), nil
}

// Delete removes a slot. Returns ErrNotFound when nothing was stored
// under the name.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec(`DELETE FROM documents WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete document %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.log.Debug("document deleted", zap.String("slot", name))
	return nil
}

// List returns all slots ordered by most recently updated.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT name, updated_at FROM documents ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
