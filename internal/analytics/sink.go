// Package analytics records suggestion events. Recording is best effort:
// sink failures are logged and never reach the caller.
package analytics

import (
	"context"
	"fmt"

	"github.com/alexanderramin/spiralogic/internal/domain"
)

// Sink persists one suggestion event.
type Sink interface {
	Record(ctx context.Context, e domain.SuggestionEvent) error
}

// NoopSink drops every event.
type NoopSink struct{}

func (NoopSink) Record(context.Context, domain.SuggestionEvent) error { return nil }

// EventStore is the subset of the event repository a StoreSink needs.
type EventStore interface {
	Create(ctx context.Context, e *domain.SuggestionEvent) error
}

// StoreSink writes events to a local event store.
type StoreSink struct {
	store EventStore
}

func NewStoreSink(store EventStore) *StoreSink {
	return &StoreSink{store: store}
}

func (s *StoreSink) Record(ctx context.Context, e domain.SuggestionEvent) error {
	if err := s.store.Create(ctx, &e); err != nil {
		return fmt.Errorf("storing suggestion event: %w", err)
	}
	return nil
}
