package analysis

import (
	"strings"

	"github.com/alexanderramin/spiralogic/internal/lexicon"
)

// DetectTones returns every tone with at least one trigger occurring as a
// substring of the lowercased text, in lexicon order. Matching is not
// whole-word: "hard" is found inside "hardware".
func DetectTones(text string, tones *lexicon.Lexicon) []string {
	lower := strings.ToLower(text)
	detected := make([]string, 0)
	for _, c := range tones.Categories() {
		for _, trigger := range c.Triggers() {
			if strings.Contains(lower, trigger) {
				detected = append(detected, c.Name)
				break
			}
		}
	}
	return detected
}
