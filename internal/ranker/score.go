package ranker

import (
	"strings"

	"github.com/alexanderramin/spiralogic/internal/domain"
)

const (
	toneTagWeight   = 2
	toneTextWeight  = 1
	themeTextWeight = 1
)

// ReasonCode names the signal behind a score delta.
type ReasonCode string

const (
	ReasonToneTag   ReasonCode = "TONE_TAG"
	ReasonToneText  ReasonCode = "TONE_TEXT"
	ReasonThemeText ReasonCode = "THEME_TEXT"
)

// ScoreReason records one matched signal and what it added.
type ScoreReason struct {
	Code  ReasonCode `json:"code"`
	Term  string     `json:"term"`
	Delta int        `json:"delta"`
}

// Signals are the analysis outputs that drive relevance.
type Signals struct {
	Tones  []string
	Themes []string
}

// ScoredPrompt pairs a prompt with its relevance score.
type ScoredPrompt struct {
	Prompt  domain.Prompt
	Score   int
	Reasons []ScoreReason
}

// ScorePrompt adds 2 per tone in the prompt's context tags, 1 per tone
// appearing in its text and 1 per theme appearing in its text. Text
// matches are case-insensitive substring tests.
func ScorePrompt(p domain.Prompt, sig Signals) ScoredPrompt {
	result := ScoredPrompt{Prompt: p}
	text := strings.ToLower(p.Text)

	add := func(code ReasonCode, term string, delta int) {
		result.Score += delta
		result.Reasons = append(result.Reasons, ScoreReason{Code: code, Term: term, Delta: delta})
	}

	for _, tone := range sig.Tones {
		if p.HasTag(tone) {
			add(ReasonToneTag, tone, toneTagWeight)
		}
		if strings.Contains(text, tone) {
			add(ReasonToneText, tone, toneTextWeight)
		}
	}
	for _, theme := range sig.Themes {
		if strings.Contains(text, theme) {
			add(ReasonThemeText, theme, themeTextWeight)
		}
	}
	return result
}

// ScoreAll scores prompts, preserving their order.
func ScoreAll(prompts []domain.Prompt, sig Signals) []ScoredPrompt {
	scored := make([]ScoredPrompt, len(prompts))
	for i, p := range prompts {
		scored[i] = ScorePrompt(p, sig)
	}
	return scored
}
