package analysis

import (
	"sort"
	"unicode/utf8"

	"github.com/alexanderramin/spiralogic/internal/lexicon"
)

const (
	// MaxThemes caps the number of themes returned by ExtractThemes.
	MaxThemes = 5

	// minThemeRunes is the shortest token length considered meaningful.
	minThemeRunes = 4
)

// ExtractThemes returns up to MaxThemes distinct tokens ranked by frequency,
// ignoring stop words and tokens shorter than four characters. Equal
// frequencies keep first-occurrence order.
func ExtractThemes(tokens []string, stopWords lexicon.WordSet) []string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) < minThemeRunes || stopWords.Contains(tok) {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > MaxThemes {
		order = order[:MaxThemes]
	}
	return order
}
