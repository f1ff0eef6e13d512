package state

import (
	"database/sql"
	"fmt"
)

// migrations[i] moves the database from user_version i to i+1.
var migrations = []string{
	`CREATE TABLE last_search (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		query TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT 'all',
		view_mode TEXT DEFAULT 'list'
	);
	CREATE TABLE search_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query TEXT NOT NULL COLLATE NOCASE,
		category TEXT NOT NULL,
		searched_at INTEGER NOT NULL,
		UNIQUE(query)
	);
	CREATE INDEX idx_search_history_searched_at ON search_history(searched_at DESC);`,
}

// migrate applies the migrations the database has not seen, each in its
// own transaction together with the version bump.
func migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version > len(migrations) {
		return fmt.Errorf("schema version %d is newer than this build (%d)", version, len(migrations))
	}

	for v := version; v < len(migrations); v++ {
		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(migrations[v]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migrate to version %d: %w", v+1, err)
		}
		if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, v+1)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migrate to version %d: %w", v+1, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}
