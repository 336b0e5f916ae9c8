package lexicon

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a SQLite-backed pronunciation lexicon
type Store struct {
	db *sql.DB
}

// DefaultPath returns the standard lexicon location under the user's
// state directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "state", "yidspeak", "lexicon.db"), nil
}

// Open opens the lexicon database at path, creating the file and schema
// if needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lexicon directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS entries (
		word TEXT PRIMARY KEY,
		phonetic TEXT NOT NULL,
		added_at INTEGER NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create lexicon schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Add inserts or replaces a pronunciation entry
func (s *Store) Add(word, phonetic string) error {
	if word == "" {
		return fmt.Errorf("word cannot be empty")
	}
	if phonetic == "" {
		return fmt.Errorf("phonetic rendering cannot be empty")
	}

	_, err := s.db.Exec(
		`INSERT INTO entries (word, phonetic, added_at) VALUES (?, ?, ?)
		 ON CONFLICT(word) DO UPDATE SET phonetic = excluded.phonetic, added_at = excluded.added_at`,
		word, phonetic, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store lexicon entry: %w", err)
	}
	return nil
}

// Remove deletes a pronunciation entry. Removing an unknown word is not
// an error.
func (s *Store) Remove(word string) error {
	if _, err := s.db.Exec(`DELETE FROM entries WHERE word = ?`, word); err != nil {
		return fmt.Errorf("failed to remove lexicon entry: %w", err)
	}
	return nil
}

// Lookup returns the stored pronunciation for word
func (s *Store) Lookup(word string) (string, bool, error) {
	var phonetic string
	err := s.db.QueryRow(`SELECT phonetic FROM entries WHERE word = ?`, word).Scan(&phonetic)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query lexicon: %w", err)
	}
	return phonetic, true, nil
}

// All returns every stored entry as a word→phonetic map
func (s *Store) All() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT word, phonetic FROM entries`)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]string)
	for rows.Next() {
		var word, phonetic string
		if err := rows.Scan(&word, &phonetic); err != nil {
			return nil, fmt.Errorf("failed to scan lexicon row: %w", err)
		}
		entries[word] = phonetic
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lexicon: %w", err)
	}
	return entries, nil
}

// Count returns the number of stored entries
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count lexicon entries: %w", err)
	}
	return n, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
