package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/spiralogic/internal/app"
	"github.com/alexanderramin/spiralogic/internal/db"
	"github.com/alexanderramin/spiralogic/internal/domain"
	"github.com/alexanderramin/spiralogic/internal/lexicon"
	"github.com/alexanderramin/spiralogic/internal/repository"
	"github.com/google/uuid"
)

// ErrInvalidPrompt is returned when a prompt fails validation.
var ErrInvalidPrompt = errors.New("invalid prompt")

type promptService struct {
	prompts repository.PromptRepo
	phases  *lexicon.Lexicon
	uow     db.UnitOfWork
}

func NewPromptService(prompts repository.PromptRepo, phases *lexicon.Lexicon, uow db.UnitOfWork) PromptService {
	return &promptService{prompts: prompts, phases: phases, uow: uow}
}

func (s *promptService) Add(ctx context.Context, p *domain.Prompt) error {
	if err := s.prepare(p); err != nil {
		return err
	}
	return s.prompts.Create(ctx, p)
}

// prepare validates p, canonicalizes its phase and fills defaults.
func (s *promptService) prepare(p *domain.Prompt) error {
	p.Text = strings.TrimSpace(p.Text)
	if p.Text == "" {
		return fmt.Errorf("%w: text is required", ErrInvalidPrompt)
	}
	phase, ok := s.phases.Canonical(p.Phase)
	if !ok {
		return fmt.Errorf("%w: unknown phase %q (want one of %s)",
			ErrInvalidPrompt, p.Phase, strings.Join(s.phases.Names(), ", "))
	}
	p.Phase = phase
	p.ContextTags = cleanTags(p.ContextTags)
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func (s *promptService) Get(ctx context.Context, id string) (*domain.Prompt, error) {
	return s.prompts.GetByID(ctx, id)
}

// List returns every prompt, or only those for phase when it is non-empty.
func (s *promptService) List(ctx context.Context, phase string) ([]*domain.Prompt, error) {
	if phase == "" {
		return s.prompts.List(ctx)
	}
	canonical, ok := s.phases.Canonical(phase)
	if !ok {
		return nil, fmt.Errorf("%w: unknown phase %q", ErrInvalidPrompt, phase)
	}
	return s.prompts.ListByPhase(ctx, canonical, 0)
}

func (s *promptService) Delete(ctx context.Context, id string) error {
	return s.prompts.Delete(ctx, id)
}

// Import loads a YAML catalogue and stores all of its prompts in one
// transaction. Nothing is stored if any entry is invalid or any insert fails.
func (s *promptService) Import(ctx context.Context, path string) (*app.ImportResult, error) {
	cat, err := loadCatalogue(path)
	if err != nil {
		return nil, err
	}
	if errs := cat.validate(s.phases); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	base := time.Now().UTC()
	prompts := make([]*domain.Prompt, len(cat.Prompts))
	for i, e := range cat.Prompts {
		p := &domain.Prompt{
			Text:        e.Text,
			Phase:       e.Phase,
			ContextTags: e.Tags,
			// Offset keeps file order stable in created_at ordering.
			CreatedAt: base.Add(time.Duration(i) * time.Microsecond),
		}
		if err := s.prepare(p); err != nil {
			return nil, fmt.Errorf("prompts[%d]: %w", i, err)
		}
		prompts[i] = p
	}

	result := &app.ImportResult{ByPhase: make(map[string]int)}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPrompts := repository.NewSQLitePromptRepo(tx)
		for i, p := range prompts {
			if err := txPrompts.Create(ctx, p); err != nil {
				return fmt.Errorf("importing prompts[%d]: %w", i, err)
			}
			result.ByPhase[p.Phase]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Imported = len(prompts)
	return result, nil
}
