// Package ranker selects the journal prompts most relevant to an analyzed
// entry, falling back to an unscored phase-only retrieval when the primary
// prompt source fails.
package ranker

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/spiralogic/internal/domain"
	"go.uber.org/zap"
)

const (
	// DefaultResultCount is used when a non-positive count is requested.
	DefaultResultCount = 3

	// candidateMultiplier widens the primary pool so scoring has room to reorder.
	candidateMultiplier = 3
)

var (
	// ErrNoSource indicates a retrieval tier has no source configured.
	ErrNoSource = errors.New("no prompt source configured")

	// ErrSourcePanic wraps a panic recovered from a prompt source.
	ErrSourcePanic = errors.New("prompt source panicked")
)

// PromptSource retrieves prompts tagged with a phase.
type PromptSource interface {
	FetchByPhase(ctx context.Context, phase string, limit int) ([]domain.Prompt, error)
}

// PromptSourceFunc adapts a function to PromptSource.
type PromptSourceFunc func(ctx context.Context, phase string, limit int) ([]domain.Prompt, error)

func (f PromptSourceFunc) FetchByPhase(ctx context.Context, phase string, limit int) ([]domain.Prompt, error) {
	return f(ctx, phase, limit)
}

// Tier identifies which retrieval produced the prompts.
type Tier string

const (
	TierPrimary   Tier = "primary"
	TierSecondary Tier = "secondary"
	TierNone      Tier = "none"
)

// Retrieval is the outcome of Rank. Failures are carried as values so
// callers can log them; they never change what Rank returns.
type Retrieval struct {
	Prompts      []domain.Prompt
	Scored       []ScoredPrompt
	Tier         Tier
	PrimaryErr   error
	SecondaryErr error
}

// Errors returns the retrieval failures in tier order.
func (r Retrieval) Errors() []error {
	var errs []error
	if r.PrimaryErr != nil {
		errs = append(errs, r.PrimaryErr)
	}
	if r.SecondaryErr != nil {
		errs = append(errs, r.SecondaryErr)
	}
	return errs
}

// Ranker scores prompts from a primary source and falls back to a
// secondary one. Each source is called at most once per Rank.
type Ranker struct {
	primary   PromptSource
	secondary PromptSource
	logger    *zap.Logger
}

// New creates a Ranker. Either source may be nil; a nil tier counts as failed.
func New(primary, secondary PromptSource, logger *zap.Logger) *Ranker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ranker{primary: primary, secondary: secondary, logger: logger}
}

// Rank returns up to n prompts for phase ordered by relevance to sig.
// It never fails: when both tiers fail the prompt list is empty.
func (r *Ranker) Rank(ctx context.Context, phase string, sig Signals, n int) Retrieval {
	if n <= 0 {
		n = DefaultResultCount
	}

	prompts, err := fetch(ctx, r.primary, phase, n*candidateMultiplier)
	if err == nil {
		scored := ScoreAll(prompts, sig)
		SortByRelevance(scored)
		if len(scored) > n {
			scored = scored[:n]
		}
		top := make([]domain.Prompt, len(scored))
		for i, sp := range scored {
			top[i] = sp.Prompt
		}
		return Retrieval{Prompts: top, Scored: scored, Tier: TierPrimary}
	}

	out := Retrieval{PrimaryErr: err}
	r.logger.Warn("primary prompt retrieval failed, falling back",
		zap.String("phase", phase), zap.Error(err))

	prompts, err = fetch(ctx, r.secondary, phase, n)
	if err != nil {
		r.logger.Warn("secondary prompt retrieval failed",
			zap.String("phase", phase), zap.Error(err))
		out.SecondaryErr = err
		out.Tier = TierNone
		out.Prompts = []domain.Prompt{}
		return out
	}
	if len(prompts) > n {
		prompts = prompts[:n]
	}
	out.Tier = TierSecondary
	out.Prompts = prompts
	return out
}

// fetch calls src once, converting a panic into an error.
func fetch(ctx context.Context, src PromptSource, phase string, limit int) (prompts []domain.Prompt, err error) {
	if src == nil {
		return nil, ErrNoSource
	}
	defer func() {
		if p := recover(); p != nil {
			prompts = nil
			err = fmt.Errorf("%w: %v", ErrSourcePanic, p)
		}
	}()
	prompts, err = src.FetchByPhase(ctx, phase, limit)
	if prompts == nil && err == nil {
		prompts = []domain.Prompt{}
	}
	return prompts, err
}
