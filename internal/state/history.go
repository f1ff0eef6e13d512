package state

import (
	"database/sql"
	"strings"
	"time"
)

const maxHistory = 100

// HistoryEntry is one past search.
type HistoryEntry struct {
	Query      string
	Category   string
	SearchedAt time.Time
}

// addHistory records query as the most recent search, replacing any earlier
// entry for the same query (case-insensitive), and trims to limit entries.
func addHistory(sqlDB *sql.DB, query, category string, limit int) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	tx, err := sqlDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	// The old row goes first so the re-run query gets a fresh id and sorts first.
	if _, err := tx.Exec(`DELETE FROM search_history WHERE query = ?`, query); err != nil {
		return err
	}
	if _, err := tx.Exec(`
		INSERT INTO search_history (query, category, searched_at)
		VALUES (?, ?, ?)
	`, query, category, time.Now().Unix()); err != nil {
		return err
	}
	if _, err := tx.Exec(`
		DELETE FROM search_history
		WHERE id NOT IN (SELECT id FROM search_history ORDER BY id DESC LIMIT ?)
	`, limit); err != nil {
		return err
	}
	return tx.Commit()
}

// getHistory returns up to limit entries, most recent first.
func getHistory(db *sql.DB, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = maxHistory
	}

	rows, err := db.Query(`
		SELECT query, category, searched_at
		FROM search_history
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var searchedAt int64
		if err := rows.Scan(&e.Query, &e.Category, &searchedAt); err != nil {
			return nil, err
		}
		e.SearchedAt = time.Unix(searchedAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
