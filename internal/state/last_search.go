package state

import (
	"database/sql"
	"errors"
)

// LastSearch is the search restored at startup.
type LastSearch struct {
	Query    string
	Category string // "all", "music", "software" or "ebooks"
	ViewMode string // "list" or "grid"
}

func getLastSearch(db *sql.DB) (*LastSearch, error) {
	row := db.QueryRow(`SELECT query, category, view_mode FROM last_search WHERE id = 1`)

	var state LastSearch
	var viewMode sql.NullString

	err := row.Scan(&state.Query, &state.Category, &viewMode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	if viewMode.Valid {
		state.ViewMode = viewMode.String
	}
	return &state, nil
}

func saveLastSearch(db *sql.DB, state LastSearch) error {
	_, err := db.Exec(`
		INSERT INTO last_search (id, query, category, view_mode)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			query = excluded.query,
			category = excluded.category,
			view_mode = excluded.view_mode
	`, state.Query, state.Category, state.ViewMode)

	return err
}
