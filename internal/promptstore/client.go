// Package promptstore retrieves journal prompts from remote stores over
// HTTP. Every call is a single attempt bounded by the configured timeout;
// retrying is left to the ranker's fallback tier.
package promptstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/spiralogic/internal/domain"
)

// DefaultTimeout bounds a single request when Config.Timeout is zero.
const DefaultTimeout = 5 * time.Second

// maxErrorBody caps how much of a failed response is kept for diagnostics.
const maxErrorBody = 512

// Config holds connection settings for a remote store.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}

// httpClient is the transport shared by the remote stores.
type httpClient struct {
	name     string
	cfg      Config
	http     *http.Client
	observer Observer
}

func newHTTPClient(name string, cfg Config, observer Observer) httpClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return httpClient{
		name: name,
		cfg:  cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// fetch issues one GET and decodes a prompt list.
func (c httpClient) fetch(ctx context.Context, phase, url string, header http.Header) ([]domain.Prompt, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout())
	defer cancel()

	prompts, err := c.do(ctx, url, header)
	if err != nil {
		err = classify(ctx, err)
	}

	c.observer.OnCallComplete(CallEvent{
		Store:     c.name,
		Op:        "fetch_by_phase",
		Phase:     phase,
		Count:     len(prompts),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}
	return prompts, nil
}

func (c httpClient) do(ctx context.Context, url string, header http.Header) ([]domain.Prompt, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return decodePrompts(body)
}

// classify maps transport failures onto the package sentinels.
func classify(ctx context.Context, err error) error {
	if errors.Is(err, ErrBadStatus) || errors.Is(err, ErrDecode) {
		return err
	}
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
