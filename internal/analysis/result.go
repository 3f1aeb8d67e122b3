package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Result is the full analysis of one journal entry.
type Result struct {
	DominantPhase   string      `json:"dominant_phase"`
	PhaseConfidence float64     `json:"phase_confidence"`
	PhaseScores     PhaseScores `json:"phase_scores"`
	EmotionalTones  []string    `json:"emotional_tones"`
	KeyThemes       []string    `json:"key_themes"`
	WordCount       int         `json:"word_count"`
}

// PhaseScores keeps per-phase scores in lexicon order. It encodes as a JSON
// object whose keys follow that order.
type PhaseScores []PhaseScore

// Get returns the score for phase, or 0 if the phase is unknown.
func (s PhaseScores) Get(phase string) int {
	for _, ps := range s {
		if ps.Phase == phase {
			return ps.Score
		}
	}
	return 0
}

// Total sums all scores.
func (s PhaseScores) Total() int {
	total := 0
	for _, ps := range s {
		total += ps.Score
	}
	return total
}

// Map returns the scores keyed by phase name.
func (s PhaseScores) Map() map[string]int {
	m := make(map[string]int, len(s))
	for _, ps := range s {
		m[ps.Phase] = ps.Score
	}
	return m
}

func (s PhaseScores) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ps := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ps.Phase)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", ps.Score)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *PhaseScores) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("phase_scores: expected object, got %v", tok)
	}
	out := PhaseScores{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var score int
		if err := dec.Decode(&score); err != nil {
			return fmt.Errorf("phase_scores[%s]: %w", key, err)
		}
		out = append(out, PhaseScore{Phase: key, Score: score})
	}
	*s = out
	return nil
}
