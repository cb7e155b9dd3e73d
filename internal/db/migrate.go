package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent schema statements, re-run on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS batch_runs (
		id          TEXT PRIMARY KEY,
		plan        TEXT NOT NULL,
		scenarios   INTEGER NOT NULL,
		successes   INTEGER NOT NULL,
		success_pct INTEGER NOT NULL,
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_batch_runs_created_at
		ON batch_runs(created_at DESC)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
