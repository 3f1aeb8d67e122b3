package ranker

import (
	"testing"

	"github.com/alexanderramin/spiralogic/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestScorePrompt_Weights(t *testing.T) {
	p := domain.Prompt{
		ID:          "p",
		Text:        "Explore the Challenge of TRANSFORMATION in your routine",
		ContextTags: []string{"challenge", "integration"},
	}
	got := ScorePrompt(p, Signals{
		Tones:  []string{"challenge", "transformation", "integration"},
		Themes: []string{"routine", "garden"},
	})

	// challenge: tag 2 + text 1; transformation: text 1; integration: tag 2; routine: text 1
	assert.Equal(t, 7, got.Score)
	assert.Equal(t, []ScoreReason{
		{Code: ReasonToneTag, Term: "challenge", Delta: 2},
		{Code: ReasonToneText, Term: "challenge", Delta: 1},
		{Code: ReasonToneText, Term: "transformation", Delta: 1},
		{Code: ReasonToneTag, Term: "integration", Delta: 2},
		{Code: ReasonThemeText, Term: "routine", Delta: 1},
	}, got.Reasons)
}

func TestScorePrompt_NoSignals(t *testing.T) {
	got := ScorePrompt(domain.Prompt{Text: "anything"}, Signals{})
	assert.Equal(t, 0, got.Score)
	assert.Empty(t, got.Reasons)
}

func TestScorePrompt_TagMatchIsExact(t *testing.T) {
	got := ScorePrompt(domain.Prompt{Text: "x", ContextTags: []string{"Challenge"}}, Signals{Tones: []string{"challenge"}})
	assert.Equal(t, 0, got.Score)
}

func TestScorePrompt_ThemeSubstring(t *testing.T) {
	got := ScorePrompt(domain.Prompt{Text: "What grounds your groundedness?"}, Signals{Themes: []string{"grounded"}})
	assert.Equal(t, 1, got.Score)
}

func TestSortByRelevance_Stable(t *testing.T) {
	scored := []ScoredPrompt{
		{Prompt: domain.Prompt{ID: "a"}, Score: 1},
		{Prompt: domain.Prompt{ID: "b"}, Score: 3},
		{Prompt: domain.Prompt{ID: "c"}, Score: 1},
		{Prompt: domain.Prompt{ID: "d"}, Score: 3},
		{Prompt: domain.Prompt{ID: "e"}, Score: 0},
	}
	SortByRelevance(scored)

	var got []string
	for _, s := range scored {
		got = append(got, s.Prompt.ID)
	}
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, got)
}
