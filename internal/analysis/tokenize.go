// Package analysis turns a free-text journal entry into lexicon signals:
// a dominant elemental phase, the emotional tones present and the most
// frequent meaningful themes.
package analysis

import (
	"strings"
	"unicode"
)

// Tokenize splits text into lowercase tokens made of maximal runs of word
// characters (letters, digits, underscore). Everything else separates.
func Tokenize(text string) []string {
	tokens := make([]string, 0, len(text)/5)
	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, strings.ToLower(text[start:i]))
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, strings.ToLower(text[start:]))
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
