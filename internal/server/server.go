// Package server exposes the suggestion engine over HTTP. It also serves
// the phase-keyed prompt endpoint that remote instances use as their
// secondary retrieval tier.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/spiralogic/internal/app"
	"github.com/alexanderramin/spiralogic/internal/domain"
	"github.com/alexanderramin/spiralogic/internal/ranker"
	"github.com/alexanderramin/spiralogic/internal/service"
	"go.uber.org/zap"
)

// maxRequestBody caps suggestion request bodies.
const maxRequestBody = 64 << 10

const shutdownTimeout = 10 * time.Second

type Server struct {
	suggestions service.SuggestionService
	prompts     service.PromptService
	logger      *zap.Logger
	resultCount int
}

// New creates a Server. resultCount is used when a request does not set one.
func New(suggestions service.SuggestionService, prompts service.PromptService, logger *zap.Logger, resultCount int) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if resultCount <= 0 {
		resultCount = ranker.DefaultResultCount
	}
	return &Server{suggestions: suggestions, prompts: prompts, logger: logger, resultCount: resultCount}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/journal/suggestions", s.handleSuggest)
	mux.HandleFunc("GET /api/oracle-agent/prompts/{phase}", s.handlePromptsByPhase)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.logRequests(mux)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("http server listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	<-errCh
	return nil
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

type suggestRequest struct {
	UserID          string `json:"user_id"`
	EntryText       string `json:"entry_text"`
	ResultCount     int    `json:"result_count"`
	IncludeAnalysis *bool  `json:"include_analysis"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var body suggestRequest
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if body.ResultCount < 0 {
		writeError(w, http.StatusBadRequest, "result_count must not be negative")
		return
	}

	req := app.NewSuggestRequest(body.UserID, body.EntryText)
	req.ResultCount = s.resultCount
	if body.ResultCount > 0 {
		req.ResultCount = body.ResultCount
	}
	if body.IncludeAnalysis != nil {
		req.IncludeAnalysis = *body.IncludeAnalysis
	}

	writeJSON(w, http.StatusOK, s.suggestions.AnalyzeAndSuggest(r.Context(), req))
}

func (s *Server) handlePromptsByPhase(w http.ResponseWriter, r *http.Request) {
	limit := s.resultCount
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	prompts, err := s.prompts.List(r.Context(), r.PathValue("phase"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidPrompt) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.logger.Error("listing prompts by phase", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load prompts")
		return
	}
	if len(prompts) > limit {
		prompts = prompts[:limit]
	}

	out := make([]domain.Prompt, len(prompts))
	for i, p := range prompts {
		out[i] = *p
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("http_request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}
