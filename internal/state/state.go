// Package state persists what storesearch remembers between runs: the
// last search and the search history, in a SQLite file.
package state

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

// Interface is what the TUI needs from the store.
type Interface interface {
	SaveLastSearch(s LastSearch)
	GetLastSearch() (*LastSearch, error)
	AddHistory(query, category string) error
	History(limit int) ([]HistoryEntry, error)
	ClearHistory() error
	Close() error
}

var _ Interface = (*Store)(nil)

// Store is the SQLite-backed state.
type Store struct {
	db   *sql.DB
	last lastSearchWriter
}

// Open opens storesearch/storesearch.db in the XDG data directory.
func Open() (*Store, error) {
	path, err := xdg.DataFile(filepath.Join("storesearch", "storesearch.db"))
	if err != nil {
		return nil, fmt.Errorf("state path: %w", err)
	}
	return OpenPath(path)
}

// OpenPath opens the database at path. ":memory:" opens a private
// in-memory database.
func OpenPath(path string) (*Store, error) {
	memory := path == ":memory:"
	if !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if memory {
		// Each pooled connection would otherwise get its own database
		db.SetMaxOpenConns(1)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db}
	s.last.write = func(ls LastSearch) error { return saveLastSearch(db, ls) }
	return s, nil
}

// Close writes a held-back last search, then closes the database.
func (s *Store) Close() error {
	return errors.Join(s.last.flush(), s.db.Close())
}

// GetLastSearch returns the saved last search, or nil on first run.
func (s *Store) GetLastSearch() (*LastSearch, error) {
	return getLastSearch(s.db)
}

// SaveLastSearch records ls once saves settle.
func (s *Store) SaveLastSearch(ls LastSearch) {
	s.last.save(ls)
}

// AddHistory records query as the most recent search.
func (s *Store) AddHistory(query, category string) error {
	return addHistory(s.db, query, category, maxHistory)
}

// History returns up to limit entries, most recent first.
func (s *Store) History(limit int) ([]HistoryEntry, error) {
	return getHistory(s.db, limit)
}

// ClearHistory forgets every past search.
func (s *Store) ClearHistory() error {
	_, err := s.db.Exec(`DELETE FROM search_history`)
	return err
}
