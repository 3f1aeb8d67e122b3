package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/spiralogic/internal/db"
	"github.com/alexanderramin/spiralogic/internal/domain"
)

// SQLiteEventRepo implements EventRepo using a SQLite database.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(conn db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: conn}
}

const eventColumns = `id, user_id, event_type, phase_detected, emotional_tones,
	prompts_suggested, retrieval_tier, created_at`

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.SuggestionEvent) error {
	tones, err := encodeStrings(e.EmotionalTones)
	if err != nil {
		return fmt.Errorf("encoding emotional tones: %w", err)
	}
	query := `INSERT INTO suggestion_events (` + eventColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		e.EventType,
		e.PhaseDetected,
		tones,
		e.PromptsSuggested,
		e.RetrievalTier,
		formatTime(e.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("inserting suggestion event: %w", err)
	}
	return nil
}

// ListRecent returns the newest events first.
func (r *SQLiteEventRepo) ListRecent(ctx context.Context, limit int) ([]*domain.SuggestionEvent, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT ` + eventColumns + ` FROM suggestion_events
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// ListByUser returns a user's events at or after since, oldest first.
func (r *SQLiteEventRepo) ListByUser(ctx context.Context, userID string, since time.Time) ([]*domain.SuggestionEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM suggestion_events
		WHERE user_id = ? AND created_at >= ?
		ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, userID, formatTime(since))
	if err != nil {
		return nil, fmt.Errorf("listing events by user: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// CountByPhase returns event counts per detected phase, most frequent first.
func (r *SQLiteEventRepo) CountByPhase(ctx context.Context) ([]PhaseCount, error) {
	query := `SELECT phase_detected, COUNT(*) AS n FROM suggestion_events
		GROUP BY phase_detected
		ORDER BY n DESC, phase_detected`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting events by phase: %w", err)
	}
	defer rows.Close()

	var counts []PhaseCount
	for rows.Next() {
		var pc PhaseCount
		if err := rows.Scan(&pc.Phase, &pc.Count); err != nil {
			return nil, fmt.Errorf("scanning phase count: %w", err)
		}
		counts = append(counts, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phase counts: %w", err)
	}
	return counts, nil
}

func scanEvents(rows *sql.Rows) ([]*domain.SuggestionEvent, error) {
	var events []*domain.SuggestionEvent
	for rows.Next() {
		var e domain.SuggestionEvent
		var tones, createdAt string
		err := rows.Scan(
			&e.ID, &e.UserID, &e.EventType, &e.PhaseDetected, &tones,
			&e.PromptsSuggested, &e.RetrievalTier, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		if e.EmotionalTones, err = decodeStrings(tones); err != nil {
			return nil, err
		}
		if e.Timestamp, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}
