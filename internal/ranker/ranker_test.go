package ranker

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/spiralogic/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	prompts []domain.Prompt
	err     error
	panic   any

	calls      int
	lastPhase  string
	lastLimits []int
}

func (s *stubSource) FetchByPhase(_ context.Context, phase string, limit int) ([]domain.Prompt, error) {
	s.calls++
	s.lastPhase = phase
	s.lastLimits = append(s.lastLimits, limit)
	if s.panic != nil {
		panic(s.panic)
	}
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.prompts) {
		return s.prompts[:limit], nil
	}
	return s.prompts, nil
}

func prompt(id, text string, tags ...string) domain.Prompt {
	return domain.Prompt{ID: id, Text: text, Phase: "Water", ContextTags: tags}
}

func ids(prompts []domain.Prompt) []string {
	out := make([]string, len(prompts))
	for i, p := range prompts {
		out[i] = p.ID
	}
	return out
}

func TestRank_PrimaryScoresAndSorts(t *testing.T) {
	primary := &stubSource{prompts: []domain.Prompt{
		prompt("p1", "What are you grateful for?"),
		prompt("p2", "Where does the shadow hide in your day?", "shadow_work"),
		prompt("p3", "Name one healing ritual."),
		prompt("p4", "What is the challenge beneath the healing?", "challenge"),
	}}
	secondary := &stubSource{}
	r := New(primary, secondary, nil)

	got := r.Rank(context.Background(), "Water", Signals{
		Tones:  []string{"shadow_work", "challenge"},
		Themes: []string{"healing"},
	}, 3)

	assert.Equal(t, TierPrimary, got.Tier)
	// p4: tag(2)+text(1)+theme(1)=4; p2: tag(2); p3: theme(1); p1: 0
	assert.Equal(t, []string{"p4", "p2", "p3"}, ids(got.Prompts))
	assert.Equal(t, []int{4, 2, 1}, []int{got.Scored[0].Score, got.Scored[1].Score, got.Scored[2].Score})
	assert.Equal(t, "Water", primary.lastPhase)
	assert.Equal(t, []int{9}, primary.lastLimits)
	assert.Equal(t, 0, secondary.calls)
	assert.Empty(t, got.Errors())
}

func TestRank_StableForEqualScores(t *testing.T) {
	primary := &stubSource{prompts: []domain.Prompt{
		prompt("a", "one"), prompt("b", "two"), prompt("c", "three river"),
		prompt("d", "four"), prompt("e", "five river"),
	}}
	r := New(primary, nil, nil)

	got := r.Rank(context.Background(), "Water", Signals{Themes: []string{"river"}}, 5)

	if diff := cmp.Diff([]string{"c", "e", "a", "b", "d"}, ids(got.Prompts)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestRank_DefaultCount(t *testing.T) {
	var prompts []domain.Prompt
	for i := 0; i < 12; i++ {
		prompts = append(prompts, prompt(fmt.Sprintf("p%d", i), "text"))
	}
	primary := &stubSource{prompts: prompts}

	got := New(primary, nil, nil).Rank(context.Background(), "Water", Signals{}, 0)

	assert.Len(t, got.Prompts, DefaultResultCount)
	assert.Equal(t, []int{DefaultResultCount * candidateMultiplier}, primary.lastLimits)
}

func TestRank_PrimaryEmptyDoesNotFallBack(t *testing.T) {
	primary := &stubSource{}
	secondary := &stubSource{prompts: []domain.Prompt{prompt("s1", "x")}}

	got := New(primary, secondary, nil).Rank(context.Background(), "Air", Signals{}, 3)

	assert.Equal(t, TierPrimary, got.Tier)
	assert.NotNil(t, got.Prompts)
	assert.Empty(t, got.Prompts)
	assert.Equal(t, 0, secondary.calls)
}

func TestRank_PrimaryErrorFallsBackOnce(t *testing.T) {
	transport := errors.New("connection refused")
	primary := &stubSource{err: transport}
	secondary := &stubSource{prompts: []domain.Prompt{
		prompt("s1", "unscored one"), prompt("s2", "healing two", "challenge"),
		prompt("s3", "three"), prompt("s4", "four"),
	}}

	got := New(primary, secondary, nil).Rank(context.Background(), "Water", Signals{
		Tones:  []string{"challenge"},
		Themes: []string{"healing"},
	}, 3)

	assert.Equal(t, TierSecondary, got.Tier)
	assert.Equal(t, []string{"s1", "s2", "s3"}, ids(got.Prompts), "secondary results are not rescored")
	assert.Nil(t, got.Scored)
	assert.Equal(t, 1, secondary.calls)
	assert.Equal(t, []int{3}, secondary.lastLimits)
	assert.Equal(t, "Water", secondary.lastPhase)
	assert.ErrorIs(t, got.PrimaryErr, transport)
	assert.NoError(t, got.SecondaryErr)
}

func TestRank_SecondaryTruncatesOversizedResponse(t *testing.T) {
	secondary := PromptSourceFunc(func(context.Context, string, int) ([]domain.Prompt, error) {
		return []domain.Prompt{prompt("1", ""), prompt("2", ""), prompt("3", ""), prompt("4", "")}, nil
	})
	primary := &stubSource{err: errors.New("500")}

	got := New(primary, secondary, nil).Rank(context.Background(), "Fire", Signals{}, 2)

	assert.Equal(t, []string{"1", "2"}, ids(got.Prompts))
}

func TestRank_PrimaryPanicIsRecovered(t *testing.T) {
	primary := &stubSource{panic: "boom"}
	secondary := &stubSource{prompts: []domain.Prompt{prompt("s1", "x")}}

	var got Retrieval
	require.NotPanics(t, func() {
		got = New(primary, secondary, nil).Rank(context.Background(), "Earth", Signals{}, 3)
	})

	assert.Equal(t, TierSecondary, got.Tier)
	assert.ErrorIs(t, got.PrimaryErr, ErrSourcePanic)
	assert.Equal(t, 1, secondary.calls)
}

func TestRank_BothTiersFail(t *testing.T) {
	primary := &stubSource{err: errors.New("primary down")}
	secondary := &stubSource{err: errors.New("secondary down")}

	got := New(primary, secondary, nil).Rank(context.Background(), "Earth", Signals{}, 3)

	assert.Equal(t, TierNone, got.Tier)
	assert.NotNil(t, got.Prompts)
	assert.Empty(t, got.Prompts)
	assert.Len(t, got.Errors(), 2)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestRank_NilSources(t *testing.T) {
	got := New(nil, nil, nil).Rank(context.Background(), "Earth", Signals{}, 3)

	assert.Equal(t, TierNone, got.Tier)
	assert.ErrorIs(t, got.PrimaryErr, ErrNoSource)
	assert.ErrorIs(t, got.SecondaryErr, ErrNoSource)
}
