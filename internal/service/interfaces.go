package service

import (
	"context"

	"github.com/alexanderramin/spiralogic/internal/analysis"
	"github.com/alexanderramin/spiralogic/internal/app"
	"github.com/alexanderramin/spiralogic/internal/domain"
	"github.com/alexanderramin/spiralogic/internal/repository"
)

type SuggestionService interface {
	AnalyzeAndSuggest(ctx context.Context, req app.SuggestRequest) *app.SuggestionResult
	Analyze(ctx context.Context, text string) analysis.Result
}

type PromptService interface {
	Add(ctx context.Context, p *domain.Prompt) error
	Get(ctx context.Context, id string) (*domain.Prompt, error)
	List(ctx context.Context, phase string) ([]*domain.Prompt, error)
	Delete(ctx context.Context, id string) error
	Import(ctx context.Context, path string) (*app.ImportResult, error)
}

type EventService interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.SuggestionEvent, error)
	PhaseCounts(ctx context.Context) ([]repository.PhaseCount, error)
}

// EventRecorder accepts analytics events without blocking or failing.
type EventRecorder interface {
	Record(ctx context.Context, e domain.SuggestionEvent)
}
