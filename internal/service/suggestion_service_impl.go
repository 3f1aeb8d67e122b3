package service

import (
	"context"
	"time"

	"github.com/alexanderramin/spiralogic/internal/analysis"
	"github.com/alexanderramin/spiralogic/internal/app"
	"github.com/alexanderramin/spiralogic/internal/domain"
	"github.com/alexanderramin/spiralogic/internal/ranker"
	"github.com/google/uuid"
)

type suggestionService struct {
	analyzer *analysis.Analyzer
	ranker   *ranker.Ranker
	recorder EventRecorder
	observer UseCaseObserver
}

// NewSuggestionService wires the analyzer and ranker. recorder may be nil,
// in which case no analytics event is emitted.
func NewSuggestionService(
	analyzer *analysis.Analyzer,
	rk *ranker.Ranker,
	recorder EventRecorder,
	observers ...UseCaseObserver,
) SuggestionService {
	return &suggestionService{
		analyzer: analyzer,
		ranker:   rk,
		recorder: recorder,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *suggestionService) AnalyzeAndSuggest(ctx context.Context, req app.SuggestRequest) *app.SuggestionResult {
	startedAt := time.Now()
	now := startedAt.UTC()
	if req.Now != nil {
		now = req.Now.UTC()
	}

	res := s.analyzer.Analyze(req.EntryText)
	retrieval := s.ranker.Rank(ctx, res.DominantPhase, ranker.Signals{
		Tones:  res.EmotionalTones,
		Themes: res.KeyThemes,
	}, req.ResultCount)

	out := &app.SuggestionResult{
		SuggestedPrompts: retrieval.Prompts,
		Phase:            res.DominantPhase,
		Timestamp:        now,
		Source:           retrieval.Tier,
		Scored:           retrieval.Scored,
	}
	for _, err := range retrieval.Errors() {
		out.RetrievalErrors = append(out.RetrievalErrors, err.Error())
	}
	if req.IncludeAnalysis {
		out.Analysis = &res
	}

	if s.recorder != nil {
		s.recorder.Record(ctx, domain.SuggestionEvent{
			ID:               uuid.New().String(),
			UserID:           req.UserID,
			EventType:        domain.EventJournalPromptSuggestion,
			PhaseDetected:    res.DominantPhase,
			EmotionalTones:   res.EmotionalTones,
			PromptsSuggested: len(out.SuggestedPrompts),
			Timestamp:        now,
			RetrievalTier:    string(retrieval.Tier),
		})
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "suggest",
		Duration:  time.Since(startedAt),
		Success:   true,
		StartedAt: startedAt,
		Fields: map[string]any{
			"phase":   res.DominantPhase,
			"source":  string(retrieval.Tier),
			"prompts": len(out.SuggestedPrompts),
		},
	})
	return out
}

func (s *suggestionService) Analyze(ctx context.Context, text string) analysis.Result {
	startedAt := time.Now()
	res := s.analyzer.Analyze(text)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "analyze",
		Duration:  time.Since(startedAt),
		Success:   true,
		StartedAt: startedAt,
		Fields: map[string]any{
			"phase":      res.DominantPhase,
			"word_count": res.WordCount,
		},
	})
	return res
}
