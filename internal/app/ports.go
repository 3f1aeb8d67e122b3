package app

import (
	"context"

	"github.com/alexanderramin/spiralogic/internal/analysis"
	"github.com/alexanderramin/spiralogic/internal/domain"
	"github.com/alexanderramin/spiralogic/internal/repository"
)

type SuggestUseCase interface {
	AnalyzeAndSuggest(ctx context.Context, req SuggestRequest) *SuggestionResult
	Analyze(ctx context.Context, text string) analysis.Result
}

type PromptCatalogUseCase interface {
	Add(ctx context.Context, p *domain.Prompt) error
	Get(ctx context.Context, id string) (*domain.Prompt, error)
	List(ctx context.Context, phase string) ([]*domain.Prompt, error)
	Delete(ctx context.Context, id string) error
	Import(ctx context.Context, path string) (*ImportResult, error)
}

type EventHistoryUseCase interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.SuggestionEvent, error)
	PhaseCounts(ctx context.Context) ([]repository.PhaseCount, error)
}
