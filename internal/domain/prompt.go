package domain

import "time"

// Prompt is a pre-authored journal prompt tagged with the elemental phase
// it belongs to and free-form context tags.
type Prompt struct {
	ID          string    `json:"id"`
	Text        string    `json:"prompt"`
	Phase       string    `json:"phase"`
	ContextTags []string  `json:"context_tags"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// HasTag reports whether tag is one of the prompt's context tags.
func (p Prompt) HasTag(tag string) bool {
	for _, t := range p.ContextTags {
		if t == tag {
			return true
		}
	}
	return false
}
