package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so the
// full list re-runs on each startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS discovery_runs (
		id                   TEXT PRIMARY KEY,
		created_at           TEXT NOT NULL,
		mode                 TEXT NOT NULL
		                     CHECK(mode IN ('b2b','b2c')),
		business_description TEXT NOT NULL,
		beachhead_id         TEXT NOT NULL DEFAULT '',
		beachhead_profile    TEXT NOT NULL DEFAULT '',
		raw_population       INTEGER NOT NULL DEFAULT 0,
		survivors            INTEGER NOT NULL DEFAULT 0,
		elapsed_ms           INTEGER NOT NULL DEFAULT 0,
		result_json          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_discovery_runs_created ON discovery_runs(created_at)`,
}
