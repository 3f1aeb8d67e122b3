package promptstore

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/alexanderramin/spiralogic/internal/domain"
)

// APIStore reads prompts from the oracle API phase endpoint. It is the
// secondary retrieval tier and takes no scoring hints.
type APIStore struct {
	client httpClient
}

// NewAPIStore creates an APIStore rooted at cfg.BaseURL.
func NewAPIStore(cfg Config, observer Observer) *APIStore {
	return &APIStore{client: newHTTPClient("oracle_api", cfg, observer)}
}

// FetchByPhase requests up to limit prompts for phase.
func (s *APIStore) FetchByPhase(ctx context.Context, phase string, limit int) ([]domain.Prompt, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	u := strings.TrimRight(s.client.cfg.BaseURL, "/") +
		"/api/oracle-agent/prompts/" + url.PathEscape(strings.ToLower(phase)) + "?" + q.Encode()

	return s.client.fetch(ctx, phase, u, http.Header{})
}
