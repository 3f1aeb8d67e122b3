package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/alexanderramin/spiralogic/internal/domain"
	"github.com/alexanderramin/spiralogic/internal/promptstore"
)

// EventsTable is the PostgREST table receiving suggestion events.
const EventsTable = "oracle_events"

// ErrRejected indicates the events endpoint answered with a non-2xx status.
var ErrRejected = errors.New("analytics event rejected")

// RESTSink posts events to a Supabase/PostgREST table.
type RESTSink struct {
	cfg  promptstore.Config
	http *http.Client
}

// NewRESTSink creates a RESTSink for cfg.BaseURL (the project URL).
// Timeouts come from the caller's context.
func NewRESTSink(cfg promptstore.Config) *RESTSink {
	return &RESTSink{cfg: cfg, http: &http.Client{Transport: &http.Transport{}}}
}

func (s *RESTSink) Record(ctx context.Context, e domain.SuggestionEvent) error {
	body, err := json.Marshal(e.Fields())
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}
	u := strings.TrimRight(s.cfg.BaseURL, "/") + "/rest/v1/" + EventsTable

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header = promptstore.AuthHeader(s.cfg.APIKey)
	req.Header.Set("Prefer", "return=minimal")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("posting event: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}
	return nil
}

// Close releases idle connections held by the sink.
func (s *RESTSink) Close() error {
	s.http.CloseIdleConnections()
	return nil
}
