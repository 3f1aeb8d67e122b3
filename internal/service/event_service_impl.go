package service

import (
	"context"

	"github.com/alexanderramin/spiralogic/internal/domain"
	"github.com/alexanderramin/spiralogic/internal/repository"
)

type eventService struct {
	events repository.EventRepo
}

func NewEventService(events repository.EventRepo) EventService {
	return &eventService{events: events}
}

func (s *eventService) ListRecent(ctx context.Context, limit int) ([]*domain.SuggestionEvent, error) {
	return s.events.ListRecent(ctx, limit)
}

func (s *eventService) PhaseCounts(ctx context.Context) ([]repository.PhaseCount, error) {
	return s.events.CountByPhase(ctx)
}
