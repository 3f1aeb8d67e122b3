package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/spiralogic/internal/domain"
)

// StubSource is an in-memory prompt source. It returns Err when set,
// otherwise up to limit of the prompts whose phase matches.
type StubSource struct {
	mu      sync.Mutex
	Prompts []domain.Prompt
	Err     error
	calls   []int
}

func NewStubSource(prompts ...*domain.Prompt) *StubSource {
	s := &StubSource{}
	for _, p := range prompts {
		s.Prompts = append(s.Prompts, *p)
	}
	return s
}

func (s *StubSource) FetchByPhase(_ context.Context, phase string, limit int) ([]domain.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, limit)
	if s.Err != nil {
		return nil, s.Err
	}
	var out []domain.Prompt
	for _, p := range s.Prompts {
		if p.Phase != phase {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, p)
	}
	return out, nil
}

// Limits returns the limit passed on each call, in call order.
func (s *StubSource) Limits() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.calls...)
}

// RecordingSink keeps every event it is handed. It fails with Err when set.
type RecordingSink struct {
	mu     sync.Mutex
	events []domain.SuggestionEvent
	Err    error
}

func (s *RecordingSink) Record(_ context.Context, e domain.SuggestionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.events = append(s.events, e)
	return nil
}

func (s *RecordingSink) Events() []domain.SuggestionEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SuggestionEvent(nil), s.events...)
}
