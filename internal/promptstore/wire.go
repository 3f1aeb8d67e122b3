package promptstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/spiralogic/internal/domain"
)

// wireID accepts both text and numeric primary keys.
type wireID string

func (id *wireID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("prompt id: %w", err)
	}
	if _, err := strconv.ParseFloat(string(n), 64); err != nil {
		return fmt.Errorf("prompt id: %w", err)
	}
	*id = wireID(n)
	return nil
}

// wirePrompt is the row shape served by both the PostgREST table and the
// oracle API prompt endpoint.
type wirePrompt struct {
	ID          wireID     `json:"id"`
	Prompt      string     `json:"prompt"`
	Phase       string     `json:"phase"`
	ContextTags []string   `json:"context_tags"`
	CreatedAt   *time.Time `json:"created_at"`
}

func (w wirePrompt) toDomain() domain.Prompt {
	p := domain.Prompt{
		ID:          string(w.ID),
		Text:        w.Prompt,
		Phase:       w.Phase,
		ContextTags: w.ContextTags,
	}
	if w.CreatedAt != nil {
		p.CreatedAt = w.CreatedAt.UTC()
	}
	return p
}

func decodePrompts(body []byte) ([]domain.Prompt, error) {
	var rows []wirePrompt
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	prompts := make([]domain.Prompt, len(rows))
	for i, row := range rows {
		prompts[i] = row.toDomain()
	}
	return prompts, nil
}
