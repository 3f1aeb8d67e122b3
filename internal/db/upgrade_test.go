package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradePath_EventsWithoutTier simulates a database created
// before suggestion events recorded which retrieval tier served them.
// Existing rows must survive and pick up the column default.
func TestMigrate_UpgradePath_EventsWithoutTier(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	legacy := []string{
		`CREATE TABLE suggestion_events (
			id                TEXT PRIMARY KEY,
			user_id           TEXT NOT NULL,
			event_type        TEXT NOT NULL,
			phase_detected    TEXT NOT NULL,
			emotional_tones   TEXT NOT NULL DEFAULT '[]',
			prompts_suggested INTEGER NOT NULL DEFAULT 0,
			created_at        TEXT NOT NULL
		)`,
		`INSERT INTO suggestion_events (id, user_id, event_type, phase_detected, prompts_suggested, created_at)
			VALUES ('e1', 'u1', 'journal_prompt_suggestion', 'Water', 3, '2025-01-01T00:00:00Z')`,
	}
	for _, stmt := range legacy {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))

	var tier, phase string
	var suggested int
	err = db.QueryRow(`SELECT retrieval_tier, phase_detected, prompts_suggested FROM suggestion_events WHERE id = 'e1'`).
		Scan(&tier, &phase, &suggested)
	require.NoError(t, err)
	assert.Equal(t, "", tier)
	assert.Equal(t, "Water", phase)
	assert.Equal(t, 3, suggested)

	// Prompts table is created alongside.
	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='prompts'`).Scan(&name))
}
