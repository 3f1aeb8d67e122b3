package service

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/spiralogic/internal/lexicon"
	"gopkg.in/yaml.v3"
)

// catalogueFile is the YAML layout accepted by prompt import:
//
//	prompts:
//	  - text: What are you ready to begin?
//	    phase: Fire
//	    tags: [exploration]
type catalogueFile struct {
	Prompts []catalogueEntry `yaml:"prompts"`
}

type catalogueEntry struct {
	Text  string   `yaml:"text"`
	Phase string   `yaml:"phase"`
	Tags  []string `yaml:"tags"`
}

func loadCatalogue(path string) (*catalogueFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue: %w", err)
	}
	var cat catalogueFile
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalogue: %w", err)
	}
	return &cat, nil
}

// validate canonicalizes each entry's phase in place and returns every problem found.
func (c *catalogueFile) validate(phases *lexicon.Lexicon) []error {
	if len(c.Prompts) == 0 {
		return []error{fmt.Errorf("catalogue contains no prompts")}
	}
	var errs []error
	for i := range c.Prompts {
		e := &c.Prompts[i]
		if strings.TrimSpace(e.Text) == "" {
			errs = append(errs, fmt.Errorf("prompts[%d]: text is required", i))
		}
		phase, ok := phases.Canonical(e.Phase)
		if !ok {
			errs = append(errs, fmt.Errorf("prompts[%d]: unknown phase %q", i, e.Phase))
			continue
		}
		e.Phase = phase
	}
	return errs
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("catalogue validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%w: %s", ErrInvalidPrompt, msg)
}
