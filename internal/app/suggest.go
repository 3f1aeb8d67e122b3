package app

import (
	"time"

	"github.com/alexanderramin/spiralogic/internal/analysis"
	"github.com/alexanderramin/spiralogic/internal/domain"
	"github.com/alexanderramin/spiralogic/internal/ranker"
)

type SuggestRequest struct {
	UserID          string
	EntryText       string
	ResultCount     int
	IncludeAnalysis bool
	Now             *time.Time
}

func NewSuggestRequest(userID, entryText string) SuggestRequest {
	return SuggestRequest{
		UserID:          userID,
		EntryText:       entryText,
		ResultCount:     ranker.DefaultResultCount,
		IncludeAnalysis: true,
	}
}

// SuggestionResult is the answer to a suggestion request. Source and
// RetrievalErrors describe how the prompts were obtained; they are
// diagnostic only.
type SuggestionResult struct {
	SuggestedPrompts []domain.Prompt  `json:"suggested_prompts"`
	Phase            string           `json:"phase"`
	Timestamp        time.Time        `json:"timestamp"`
	Analysis         *analysis.Result `json:"analysis,omitempty"`
	Source           ranker.Tier      `json:"source"`
	RetrievalErrors  []string         `json:"retrieval_errors,omitempty"`

	// Scored holds per-prompt score breakdowns for primary-tier results.
	Scored []ranker.ScoredPrompt `json:"-"`
}

// ImportResult summarizes a catalogue import.
type ImportResult struct {
	Imported int
	ByPhase  map[string]int
}
