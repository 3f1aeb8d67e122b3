package analysis

import (
	"github.com/alexanderramin/spiralogic/internal/lexicon"
)

// PhaseScore is the trigger-hit count for one phase category.
type PhaseScore struct {
	Phase string
	Score int
}

// PhaseClassification is the outcome of ClassifyPhase.
type PhaseClassification struct {
	Dominant   string
	Confidence float64
	Scores     PhaseScores
}

// ClassifyPhase counts, per phase, the tokens found in its trigger set. A
// token listed under several phases counts for each of them. The dominant
// phase is the highest score; ties go to the earlier-declared phase, so
// when nothing matches the first phase wins with confidence 0.
func ClassifyPhase(tokens []string, phases *lexicon.Lexicon) PhaseClassification {
	cats := phases.Categories()
	scores := make(PhaseScores, len(cats))
	total := 0
	best := 0
	for i, c := range cats {
		n := 0
		for _, tok := range tokens {
			if c.Contains(tok) {
				n++
			}
		}
		scores[i] = PhaseScore{Phase: c.Name, Score: n}
		total += n
		if n > scores[best].Score {
			best = i
		}
	}

	return PhaseClassification{
		Dominant:   scores[best].Phase,
		Confidence: float64(scores[best].Score) / float64(max(1, total)),
		Scores:     scores,
	}
}
