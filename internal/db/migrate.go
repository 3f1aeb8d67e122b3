package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS prompts (
		id           TEXT PRIMARY KEY,
		text         TEXT NOT NULL CHECK(length(trim(text)) > 0),
		phase        TEXT NOT NULL,
		context_tags TEXT NOT NULL DEFAULT '[]',
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_prompts_phase ON prompts(phase, created_at)`,

	`CREATE TABLE IF NOT EXISTS suggestion_events (
		id                TEXT PRIMARY KEY,
		user_id           TEXT NOT NULL,
		event_type        TEXT NOT NULL,
		phase_detected    TEXT NOT NULL,
		emotional_tones   TEXT NOT NULL DEFAULT '[]',
		prompts_suggested INTEGER NOT NULL DEFAULT 0 CHECK(prompts_suggested >= 0),
		created_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_created ON suggestion_events(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_events_user ON suggestion_events(user_id, created_at)`,

	`ALTER TABLE suggestion_events ADD COLUMN retrieval_tier TEXT NOT NULL DEFAULT ''`,
}
