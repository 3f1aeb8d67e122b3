package analysis

import (
	"github.com/alexanderramin/spiralogic/internal/lexicon"
	"golang.org/x/sync/errgroup"
)

// Analyzer runs the full analysis against an injected set of lexicons.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	lex lexicon.Lexicons
}

// NewAnalyzer creates an Analyzer over lex.
func NewAnalyzer(lex lexicon.Lexicons) *Analyzer {
	return &Analyzer{lex: lex}
}

// Lexicons returns the lexicons the analyzer was built with.
func (a *Analyzer) Lexicons() lexicon.Lexicons { return a.lex }

// Analyze tokenizes text once, then classifies the phase and extracts
// themes concurrently over the shared token slice. Tones are detected on
// the raw text.
func (a *Analyzer) Analyze(text string) Result {
	tokens := Tokenize(text)

	var (
		phase  PhaseClassification
		themes []string
		g      errgroup.Group
	)
	g.Go(func() error {
		phase = ClassifyPhase(tokens, a.lex.Phases)
		return nil
	})
	g.Go(func() error {
		themes = ExtractThemes(tokens, a.lex.StopWords)
		return nil
	})
	_ = g.Wait()

	return Result{
		DominantPhase:   phase.Dominant,
		PhaseConfidence: phase.Confidence,
		PhaseScores:     phase.Scores,
		EmotionalTones:  DetectTones(text, a.lex.Tones),
		KeyThemes:       themes,
		WordCount:       len(tokens),
	}
}
