package testutil

import (
	"sync/atomic"
	"time"

	"github.com/alexanderramin/spiralogic/internal/domain"
	"github.com/alexanderramin/spiralogic/internal/lexicon"
	"github.com/google/uuid"
)

// fixtureClock hands out strictly increasing creation times so fixtures
// created in sequence keep their insertion order in ordered queries.
var fixtureClock atomic.Int64

func nextCreatedAt() time.Time {
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(fixtureClock.Add(1)) * time.Millisecond)
}

// Prompt options
type PromptOption func(*domain.Prompt)

func WithPhase(phase string) PromptOption {
	return func(p *domain.Prompt) {
		p.Phase = phase
	}
}

func WithTags(tags ...string) PromptOption {
	return func(p *domain.Prompt) {
		p.ContextTags = tags
	}
}

func WithPromptID(id string) PromptOption {
	return func(p *domain.Prompt) {
		p.ID = id
	}
}

func WithCreatedAt(t time.Time) PromptOption {
	return func(p *domain.Prompt) {
		p.CreatedAt = t
	}
}

// NewTestPrompt builds a Fire prompt with no tags unless options say otherwise.
func NewTestPrompt(text string, opts ...PromptOption) *domain.Prompt {
	p := &domain.Prompt{
		ID:          uuid.New().String(),
		Text:        text,
		Phase:       lexicon.PhaseFire,
		ContextTags: []string{},
		CreatedAt:   nextCreatedAt(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Event options
type EventOption func(*domain.SuggestionEvent)

func WithTones(tones ...string) EventOption {
	return func(e *domain.SuggestionEvent) {
		e.EmotionalTones = tones
	}
}

func WithTimestamp(t time.Time) EventOption {
	return func(e *domain.SuggestionEvent) {
		e.Timestamp = t
	}
}

func WithTier(tier string) EventOption {
	return func(e *domain.SuggestionEvent) {
		e.RetrievalTier = tier
	}
}

func WithPromptsSuggested(n int) EventOption {
	return func(e *domain.SuggestionEvent) {
		e.PromptsSuggested = n
	}
}

func NewTestEvent(userID, phase string, opts ...EventOption) *domain.SuggestionEvent {
	e := &domain.SuggestionEvent{
		ID:               uuid.New().String(),
		UserID:           userID,
		EventType:        domain.EventJournalPromptSuggestion,
		PhaseDetected:    phase,
		EmotionalTones:   []string{},
		PromptsSuggested: 3,
		Timestamp:        nextCreatedAt(),
		RetrievalTier:    "primary",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
