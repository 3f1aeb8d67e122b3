package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileCategory is one category entry in a lexicon YAML file.
type fileCategory struct {
	Name     string   `yaml:"name"`
	Triggers []string `yaml:"triggers"`
}

// fileFormat is the on-disk lexicon layout. Omitted sections keep defaults.
//
//	phases:
//	  - name: Fire
//	    triggers: [excited, bold]
//	tones:
//	  - name: challenge
//	    triggers: [hard]
//	stop_words: [the, and]
type fileFormat struct {
	Phases    []fileCategory `yaml:"phases"`
	Tones     []fileCategory `yaml:"tones"`
	StopWords []string       `yaml:"stop_words"`
}

// LoadFile reads a lexicon YAML file. An empty path returns the defaults.
func LoadFile(path string) (Lexicons, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicons{}, fmt.Errorf("reading lexicon file: %w", err)
	}
	lex, err := Parse(data)
	if err != nil {
		return Lexicons{}, fmt.Errorf("lexicon file %s: %w", path, err)
	}
	return lex, nil
}

// Parse decodes lexicon YAML, falling back to defaults for omitted sections.
func Parse(data []byte) (Lexicons, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Lexicons{}, fmt.Errorf("decoding lexicon yaml: %w", err)
	}

	lex := Default()
	if len(f.Phases) > 0 {
		phases, err := build(f.Phases)
		if err != nil {
			return Lexicons{}, fmt.Errorf("phases: %w", err)
		}
		lex.Phases = phases
	}
	if len(f.Tones) > 0 {
		tones, err := build(f.Tones)
		if err != nil {
			return Lexicons{}, fmt.Errorf("tones: %w", err)
		}
		lex.Tones = tones
	}
	if len(f.StopWords) > 0 {
		lex.StopWords = NewWordSet(f.StopWords...)
	}
	return lex, nil
}

func build(entries []fileCategory) (*Lexicon, error) {
	cats := make([]Category, len(entries))
	for i, e := range entries {
		cats[i] = NewCategory(e.Name, e.Triggers...)
	}
	return New(cats...)
}

// Marshal renders lexicons in the same YAML layout LoadFile reads.
func Marshal(lex Lexicons) ([]byte, error) {
	f := fileFormat{
		Phases:    toFile(lex.Phases),
		Tones:     toFile(lex.Tones),
		StopWords: lex.StopWords.Words(),
	}
	return yaml.Marshal(f)
}

func toFile(l *Lexicon) []fileCategory {
	out := make([]fileCategory, 0, l.Len())
	for _, c := range l.Categories() {
		out = append(out, fileCategory{Name: c.Name, Triggers: c.Triggers()})
	}
	return out
}
