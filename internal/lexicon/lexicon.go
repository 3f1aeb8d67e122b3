package lexicon

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrEmptyLexicon indicates a lexicon was declared without categories.
	ErrEmptyLexicon = errors.New("lexicon has no categories")

	// ErrInvalidCategory indicates a category with a blank or duplicate name.
	ErrInvalidCategory = errors.New("invalid lexicon category")
)

// Category is a named set of trigger words. Triggers are stored lowercased.
type Category struct {
	Name     string
	triggers []string
	set      map[string]struct{}
}

// NewCategory builds a category, lowercasing and de-duplicating triggers
// while keeping their declared order.
func NewCategory(name string, triggers ...string) Category {
	c := Category{
		Name: strings.TrimSpace(name),
		set:  make(map[string]struct{}, len(triggers)),
	}
	for _, t := range triggers {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := c.set[t]; dup {
			continue
		}
		c.set[t] = struct{}{}
		c.triggers = append(c.triggers, t)
	}
	return c
}

// Contains reports whether word is one of the category's triggers.
// The word must already be lowercased.
func (c Category) Contains(word string) bool {
	_, ok := c.set[word]
	return ok
}

// Triggers returns a copy of the trigger words in declared order.
func (c Category) Triggers() []string {
	out := make([]string, len(c.triggers))
	copy(out, c.triggers)
	return out
}

// Lexicon is an ordered, immutable list of categories. Declaration order
// is the tie-break priority wherever categories compete.
type Lexicon struct {
	categories []Category
	index      map[string]int
}

// New validates categories and returns a Lexicon over them.
func New(categories ...Category) (*Lexicon, error) {
	if len(categories) == 0 {
		return nil, ErrEmptyLexicon
	}
	l := &Lexicon{
		categories: make([]Category, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	for i, c := range categories {
		if c.Name == "" {
			return nil, fmt.Errorf("category %d: blank name: %w", i, ErrInvalidCategory)
		}
		key := strings.ToLower(c.Name)
		if _, dup := l.index[key]; dup {
			return nil, fmt.Errorf("category %q declared twice: %w", c.Name, ErrInvalidCategory)
		}
		l.index[key] = i
		l.categories[i] = c
	}
	return l, nil
}

// MustNew is New for package-level defaults; it panics on invalid input.
func MustNew(categories ...Category) *Lexicon {
	l, err := New(categories...)
	if err != nil {
		panic(err)
	}
	return l
}

// Categories returns the categories in declaration order.
func (l *Lexicon) Categories() []Category {
	out := make([]Category, len(l.categories))
	copy(out, l.categories)
	return out
}

// Names returns the category names in declaration order.
func (l *Lexicon) Names() []string {
	names := make([]string, len(l.categories))
	for i, c := range l.categories {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of categories.
func (l *Lexicon) Len() int { return len(l.categories) }

// First returns the highest-priority category name.
func (l *Lexicon) First() string {
	return l.categories[0].Name
}

// Canonical resolves name case-insensitively to the declared category name.
func (l *Lexicon) Canonical(name string) (string, bool) {
	i, ok := l.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", false
	}
	return l.categories[i].Name, true
}

// WordSet is an immutable set of lowercase words.
type WordSet struct {
	m map[string]struct{}
}

// NewWordSet builds a WordSet from words, lowercasing each.
func NewWordSet(words ...string) WordSet {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			m[w] = struct{}{}
		}
	}
	return WordSet{m: m}
}

// Contains reports whether w is in the set.
func (s WordSet) Contains(w string) bool {
	_, ok := s.m[w]
	return ok
}

// Len returns the number of words.
func (s WordSet) Len() int { return len(s.m) }

// Words returns the set sorted alphabetically.
func (s WordSet) Words() []string {
	out := make([]string, 0, len(s.m))
	for w := range s.m {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Lexicons bundles everything the analyzer needs. It is passed by value
// and never modified after construction.
type Lexicons struct {
	Phases    *Lexicon
	Tones     *Lexicon
	StopWords WordSet
}
