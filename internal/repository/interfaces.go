package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/spiralogic/internal/domain"
)

// ErrNotFound is returned when a looked-up row does not exist.
var ErrNotFound = errors.New("not found")

type PromptRepo interface {
	Create(ctx context.Context, p *domain.Prompt) error
	GetByID(ctx context.Context, id string) (*domain.Prompt, error)
	List(ctx context.Context) ([]*domain.Prompt, error)
	ListByPhase(ctx context.Context, phase string, limit int) ([]*domain.Prompt, error)
	CountByPhase(ctx context.Context) (map[string]int, error)
	Delete(ctx context.Context, id string) error
}

// PhaseCount is the number of events recorded for one detected phase.
type PhaseCount struct {
	Phase string `json:"phase"`
	Count int    `json:"count"`
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.SuggestionEvent) error
	ListRecent(ctx context.Context, limit int) ([]*domain.SuggestionEvent, error)
	ListByUser(ctx context.Context, userID string, since time.Time) ([]*domain.SuggestionEvent, error)
	CountByPhase(ctx context.Context) ([]PhaseCount, error)
}
