package domain

import "time"

// EventJournalPromptSuggestion is the event type emitted per suggestion.
const EventJournalPromptSuggestion = "journal_prompt_suggestion"

// SuggestionEvent is the analytics record written after a suggestion.
type SuggestionEvent struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	EventType        string    `json:"event_type"`
	PhaseDetected    string    `json:"phase_detected"`
	EmotionalTones   []string  `json:"emotional_tones"`
	PromptsSuggested int       `json:"prompts_suggested"`
	Timestamp        time.Time `json:"timestamp"`
	// RetrievalTier names the prompt source that served the suggestion.
	// Local sinks persist it; the remote record omits it.
	RetrievalTier string `json:"retrieval_tier,omitempty"`
}

// Fields renders the event as the flat record sent to remote sinks.
func (e SuggestionEvent) Fields() map[string]any {
	tones := e.EmotionalTones
	if tones == nil {
		tones = []string{}
	}
	return map[string]any{
		"user_id":           e.UserID,
		"event_type":        e.EventType,
		"phase_detected":    e.PhaseDetected,
		"emotional_tones":   tones,
		"prompts_suggested": e.PromptsSuggested,
		"timestamp":         e.Timestamp.UTC().Format(time.RFC3339),
	}
}
