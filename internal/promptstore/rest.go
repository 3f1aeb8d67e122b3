package promptstore

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/alexanderramin/spiralogic/internal/domain"
)

// PromptsTable is the PostgREST table holding the prompt catalogue.
const PromptsTable = "spiralogic_prompts"

// RESTStore reads prompts from a Supabase/PostgREST table. It is the
// primary retrieval tier.
type RESTStore struct {
	client httpClient
}

// NewRESTStore creates a RESTStore for cfg.BaseURL (the project URL).
func NewRESTStore(cfg Config, observer Observer) *RESTStore {
	return &RESTStore{client: newHTTPClient("postgrest", cfg, observer)}
}

// FetchByPhase requests up to limit rows whose phase column equals phase.
func (s *RESTStore) FetchByPhase(ctx context.Context, phase string, limit int) ([]domain.Prompt, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("phase", "eq."+phase)
	q.Set("limit", strconv.Itoa(limit))
	u := strings.TrimRight(s.client.cfg.BaseURL, "/") + "/rest/v1/" + PromptsTable + "?" + q.Encode()

	return s.client.fetch(ctx, phase, u, AuthHeader(s.client.cfg.APIKey))
}

// AuthHeader returns the Supabase key headers for key.
func AuthHeader(key string) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if key != "" {
		h.Set("apikey", key)
		h.Set("Authorization", "Bearer "+key)
	}
	return h
}
