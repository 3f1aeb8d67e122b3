package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/spiralogic/internal/analysis"
	"github.com/alexanderramin/spiralogic/internal/analytics"
	"github.com/alexanderramin/spiralogic/internal/app"
	"github.com/alexanderramin/spiralogic/internal/domain"
	"github.com/alexanderramin/spiralogic/internal/lexicon"
	"github.com/alexanderramin/spiralogic/internal/promptstore"
	"github.com/alexanderramin/spiralogic/internal/ranker"
	"github.com/alexanderramin/spiralogic/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const groundedEntry = "I feel grounded and practical today, building something stable"

func promptTexts(prompts []domain.Prompt) []string {
	texts := make([]string, len(prompts))
	for i, p := range prompts {
		texts[i] = p.Text
	}
	return texts
}

func newSuggestionHarness(primary, secondary ranker.PromptSource, sink analytics.Sink) (SuggestionService, *analytics.Recorder) {
	rec := analytics.NewRecorder(sink, nil, time.Second)
	svc := NewSuggestionService(
		analysis.NewAnalyzer(lexicon.Default()),
		ranker.New(primary, secondary, nil),
		rec,
	)
	return svc, rec
}

func TestAnalyzeAndSuggest_RanksPrimaryByRelevance(t *testing.T) {
	primary := testutil.NewStubSource(
		testutil.NewTestPrompt("What is steady in your life?", testutil.WithPhase("Earth")),
		testutil.NewTestPrompt("How are you building today?", testutil.WithPhase("Earth")),
		testutil.NewTestPrompt("Where do you feel grounded?", testutil.WithPhase("Earth")),
		testutil.NewTestPrompt("Describe one practical step.", testutil.WithPhase("Earth")),
		testutil.NewTestPrompt("What sparks you?", testutil.WithPhase("Fire")),
	)
	sink := &testutil.RecordingSink{}
	svc, rec := newSuggestionHarness(primary, nil, sink)

	req := app.NewSuggestRequest("user-1", groundedEntry)
	req.ResultCount = 2
	res := svc.AnalyzeAndSuggest(context.Background(), req)
	require.NoError(t, rec.Close(context.Background()))

	assert.Equal(t, "Earth", res.Phase)
	assert.Equal(t, ranker.TierPrimary, res.Source)
	assert.Empty(t, res.RetrievalErrors)
	assert.Equal(t, []string{"How are you building today?", "Where do you feel grounded?"}, promptTexts(res.SuggestedPrompts))
	assert.Equal(t, []int{6}, primary.Limits())
	require.Len(t, res.Scored, 2)
	assert.Equal(t, 2, res.Scored[0].Score)

	require.NotNil(t, res.Analysis)
	assert.Equal(t, 9, res.Analysis.WordCount)
	assert.Equal(t, time.UTC, res.Timestamp.Location())

	events := sink.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "user-1", events[0].UserID)
	assert.Equal(t, domain.EventJournalPromptSuggestion, events[0].EventType)
	assert.Equal(t, "Earth", events[0].PhaseDetected)
	assert.Equal(t, 2, events[0].PromptsSuggested)
	assert.Equal(t, "primary", events[0].RetrievalTier)
}

func TestAnalyzeAndSuggest_ToneTagsOutrankThemes(t *testing.T) {
	primary := testutil.NewStubSource(
		testutil.NewTestPrompt("Sit with the ache.", testutil.WithPhase("Water")),
		testutil.NewTestPrompt("What does your shadow ask of you?", testutil.WithPhase("Water"), testutil.WithTags("shadow_work")),
		testutil.NewTestPrompt("Name one challenge you are meeting.", testutil.WithPhase("Water"), testutil.WithTags("challenge")),
		testutil.NewTestPrompt("Let the tears come.", testutil.WithPhase("Water")),
	)
	svc, rec := newSuggestionHarness(primary, nil, nil)

	res := svc.AnalyzeAndSuggest(context.Background(),
		app.NewSuggestRequest("u", "Struggling with deep tears, feeling the shadow"))
	require.NoError(t, rec.Close(context.Background()))

	assert.Equal(t, "Water", res.Phase)
	assert.Equal(t, []string{"challenge", "shadow_work"}, res.Analysis.EmotionalTones)
	assert.Equal(t, []string{
		"What does your shadow ask of you?",
		"Name one challenge you are meeting.",
		"Let the tears come.",
	}, promptTexts(res.SuggestedPrompts))
}

func TestAnalyzeAndSuggest_FallsBackOnPrimaryTransportFault(t *testing.T) {
	primary := ranker.PromptSourceFunc(func(context.Context, string, int) ([]domain.Prompt, error) {
		return nil, fmt.Errorf("postgrest: %w: dial tcp: connection refused", promptstore.ErrUnavailable)
	})
	secondary := testutil.NewStubSource(
		testutil.NewTestPrompt("one", testutil.WithPhase("Earth")),
		testutil.NewTestPrompt("two", testutil.WithPhase("Earth")),
		testutil.NewTestPrompt("three", testutil.WithPhase("Earth")),
		testutil.NewTestPrompt("four", testutil.WithPhase("Earth")),
	)
	sink := &testutil.RecordingSink{}
	svc, rec := newSuggestionHarness(primary, secondary, sink)

	res := svc.AnalyzeAndSuggest(context.Background(), app.NewSuggestRequest("u", groundedEntry))
	require.NoError(t, rec.Close(context.Background()))

	assert.Equal(t, ranker.TierSecondary, res.Source)
	assert.Equal(t, []string{"one", "two", "three"}, promptTexts(res.SuggestedPrompts))
	assert.Equal(t, []int{3}, secondary.Limits())
	require.Len(t, res.RetrievalErrors, 1)
	assert.Contains(t, res.RetrievalErrors[0], "unavailable")
	assert.Nil(t, res.Scored)

	require.Len(t, sink.Events(), 1)
	assert.Equal(t, "secondary", sink.Events()[0].RetrievalTier)
}

func TestAnalyzeAndSuggest_BothTiersFail(t *testing.T) {
	primary := &testutil.StubSource{Err: errors.New("boom")}
	secondary := &testutil.StubSource{Err: errors.New("also boom")}
	sink := &testutil.RecordingSink{}
	svc, rec := newSuggestionHarness(primary, secondary, sink)

	res := svc.AnalyzeAndSuggest(context.Background(), app.NewSuggestRequest("u", "anything at all"))
	require.NoError(t, rec.Close(context.Background()))

	require.NotNil(t, res)
	assert.NotNil(t, res.SuggestedPrompts)
	assert.Empty(t, res.SuggestedPrompts)
	assert.Equal(t, ranker.TierNone, res.Source)
	assert.Len(t, res.RetrievalErrors, 2)
	assert.Equal(t, 0, sink.Events()[0].PromptsSuggested)
}

func TestAnalyzeAndSuggest_AnalyticsFailureDoesNotAffectResult(t *testing.T) {
	primary := testutil.NewStubSource(testutil.NewTestPrompt("Where do you feel grounded?", testutil.WithPhase("Earth")))
	sink := &testutil.RecordingSink{Err: errors.New("analytics down")}
	svc, rec := newSuggestionHarness(primary, nil, sink)

	res := svc.AnalyzeAndSuggest(context.Background(), app.NewSuggestRequest("u", groundedEntry))
	require.NoError(t, rec.Close(context.Background()))

	assert.Equal(t, ranker.TierPrimary, res.Source)
	assert.Len(t, res.SuggestedPrompts, 1)
	assert.Empty(t, res.RetrievalErrors)
}

func TestAnalyzeAndSuggest_EmptyEntry(t *testing.T) {
	primary := testutil.NewStubSource(testutil.NewTestPrompt("Begin anywhere."))
	svc, rec := newSuggestionHarness(primary, nil, nil)

	res := svc.AnalyzeAndSuggest(context.Background(), app.NewSuggestRequest("u", ""))
	require.NoError(t, rec.Close(context.Background()))

	assert.Equal(t, lexicon.PhaseFire, res.Phase)
	assert.Equal(t, 0.0, res.Analysis.PhaseConfidence)
	assert.Equal(t, 0, res.Analysis.WordCount)
	assert.Equal(t, []string{"Begin anywhere."}, promptTexts(res.SuggestedPrompts))
}

func TestAnalyzeAndSuggest_OmitsAnalysisAndHonoursNow(t *testing.T) {
	svc, rec := newSuggestionHarness(testutil.NewStubSource(), nil, nil)

	fixed := time.Date(2025, 7, 1, 12, 0, 0, 0, time.FixedZone("EST", -5*3600))
	req := app.NewSuggestRequest("u", groundedEntry)
	req.IncludeAnalysis = false
	req.ResultCount = 0
	req.Now = &fixed
	res := svc.AnalyzeAndSuggest(context.Background(), req)
	require.NoError(t, rec.Close(context.Background()))

	assert.Nil(t, res.Analysis)
	assert.Equal(t, "Earth", res.Phase)
	assert.True(t, res.Timestamp.Equal(fixed))
	assert.Equal(t, time.UTC, res.Timestamp.Location())
}

func TestAnalyzeAndSuggest_NilRecorder(t *testing.T) {
	svc := NewSuggestionService(
		analysis.NewAnalyzer(lexicon.Default()),
		ranker.New(testutil.NewStubSource(), nil, nil),
		nil,
	)
	res := svc.AnalyzeAndSuggest(context.Background(), app.NewSuggestRequest("u", "hello"))
	assert.Equal(t, ranker.TierPrimary, res.Source)
}

type capturingObserver struct {
	events []UseCaseEvent
}

func (o *capturingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}

func TestSuggestionService_ObservesUseCases(t *testing.T) {
	obs := &capturingObserver{}
	svc := NewSuggestionService(
		analysis.NewAnalyzer(lexicon.Default()),
		ranker.New(testutil.NewStubSource(), nil, nil),
		nil,
		obs,
	)

	res := svc.Analyze(context.Background(), "curious thoughts and new ideas")
	assert.Equal(t, "Air", res.DominantPhase)
	svc.AnalyzeAndSuggest(context.Background(), app.NewSuggestRequest("u", "curious thoughts"))

	require.Len(t, obs.events, 2)
	assert.Equal(t, "analyze", obs.events[0].Name)
	assert.Equal(t, "suggest", obs.events[1].Name)
	assert.Equal(t, "primary", obs.events[1].Fields["source"])
	assert.Equal(t, 0, obs.events[1].Fields["prompts"])
}
