package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/spiralogic/internal/db"
	"github.com/alexanderramin/spiralogic/internal/domain"
)

// SQLitePromptRepo implements PromptRepo using a SQLite database.
type SQLitePromptRepo struct {
	db db.DBTX
}

// NewSQLitePromptRepo creates a new SQLitePromptRepo. conn may be a
// *sql.DB or a *sql.Tx.
func NewSQLitePromptRepo(conn db.DBTX) *SQLitePromptRepo {
	return &SQLitePromptRepo{db: conn}
}

const promptColumns = `id, text, phase, context_tags, created_at`

func (r *SQLitePromptRepo) Create(ctx context.Context, p *domain.Prompt) error {
	tags, err := encodeStrings(p.ContextTags)
	if err != nil {
		return fmt.Errorf("encoding context tags: %w", err)
	}
	query := `INSERT INTO prompts (` + promptColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.Text,
		p.Phase,
		tags,
		formatTime(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting prompt: %w", err)
	}
	return nil
}

func (r *SQLitePromptRepo) GetByID(ctx context.Context, id string) (*domain.Prompt, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanPrompt(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("prompt: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning prompt: %w", err)
	}
	return p, nil
}

func (r *SQLitePromptRepo) List(ctx context.Context) ([]*domain.Prompt, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts ORDER BY phase, created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing prompts: %w", err)
	}
	defer rows.Close()
	return scanPrompts(rows)
}

// ListByPhase returns up to limit prompts for phase in insertion order.
// A non-positive limit returns all of them.
func (r *SQLitePromptRepo) ListByPhase(ctx context.Context, phase string, limit int) ([]*domain.Prompt, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT ` + promptColumns + ` FROM prompts
		WHERE phase = ? COLLATE NOCASE
		ORDER BY created_at, rowid
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, phase, limit)
	if err != nil {
		return nil, fmt.Errorf("listing prompts by phase: %w", err)
	}
	defer rows.Close()
	return scanPrompts(rows)
}

func (r *SQLitePromptRepo) CountByPhase(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT phase, COUNT(*) FROM prompts GROUP BY phase`)
	if err != nil {
		return nil, fmt.Errorf("counting prompts by phase: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var phase string
		var n int
		if err := rows.Scan(&phase, &n); err != nil {
			return nil, fmt.Errorf("scanning prompt count: %w", err)
		}
		counts[phase] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating prompt counts: %w", err)
	}
	return counts, nil
}

func (r *SQLitePromptRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM prompts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting prompt: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting prompt: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("prompt: %w", ErrNotFound)
	}
	return nil
}

// FetchByPhase adapts the repo to the ranker's prompt source contract.
func (r *SQLitePromptRepo) FetchByPhase(ctx context.Context, phase string, limit int) ([]domain.Prompt, error) {
	ptrs, err := r.ListByPhase(ctx, phase, limit)
	if err != nil {
		return nil, err
	}
	prompts := make([]domain.Prompt, len(ptrs))
	for i, p := range ptrs {
		prompts[i] = *p
	}
	return prompts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrompt(row rowScanner) (*domain.Prompt, error) {
	var p domain.Prompt
	var tags, createdAt string
	if err := row.Scan(&p.ID, &p.Text, &p.Phase, &tags, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if p.ContextTags, err = decodeStrings(tags); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &p, nil
}

func scanPrompts(rows *sql.Rows) ([]*domain.Prompt, error) {
	var prompts []*domain.Prompt
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning prompt row: %w", err)
		}
		prompts = append(prompts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating prompts: %w", err)
	}
	return prompts, nil
}
