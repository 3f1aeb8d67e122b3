package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/spiralogic/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePromptRepo(db)
	ctx := context.Background()

	p := testutil.NewTestPrompt("What wants to grow through you?",
		testutil.WithPhase("Earth"), testutil.WithTags("integration", "challenge"))
	require.NoError(t, repo.Create(ctx, p))

	fetched, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, fetched.ID)
	assert.Equal(t, "What wants to grow through you?", fetched.Text)
	assert.Equal(t, "Earth", fetched.Phase)
	assert.Equal(t, []string{"integration", "challenge"}, fetched.ContextTags)
	assert.True(t, p.CreatedAt.Equal(fetched.CreatedAt))
}

func TestPromptRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePromptRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPromptRepo_Create_RejectsBlankText(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePromptRepo(db)

	err := repo.Create(context.Background(), testutil.NewTestPrompt("   "))
	assert.Error(t, err)
}

func TestPromptRepo_NilTagsStoredAsEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePromptRepo(db)
	ctx := context.Background()

	p := testutil.NewTestPrompt("Untagged")
	p.ContextTags = nil
	require.NoError(t, repo.Create(ctx, p))

	fetched, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.NotNil(t, fetched.ContextTags)
	assert.Empty(t, fetched.ContextTags)
}

func TestPromptRepo_ListByPhase_LimitAndOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePromptRepo(db)
	ctx := context.Background()

	first := testutil.NewTestPrompt("first", testutil.WithPhase("Water"))
	second := testutil.NewTestPrompt("second", testutil.WithPhase("Water"))
	other := testutil.NewTestPrompt("other", testutil.WithPhase("Air"))
	third := testutil.NewTestPrompt("third", testutil.WithPhase("Water"))
	require.NoError(t, repo.Create(ctx, third))
	require.NoError(t, repo.Create(ctx, other))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	got, err := repo.ListByPhase(ctx, "Water", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Text)
	assert.Equal(t, "second", got[1].Text)

	all, err := repo.ListByPhase(ctx, "Water", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPromptRepo_ListByPhase_CaseInsensitive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePromptRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestPrompt("deep", testutil.WithPhase("Water"))))

	got, err := repo.ListByPhase(ctx, "water", 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Water", got[0].Phase)
}

func TestPromptRepo_CountByPhaseAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePromptRepo(db)
	ctx := context.Background()

	a := testutil.NewTestPrompt("a", testutil.WithPhase("Fire"))
	b := testutil.NewTestPrompt("b", testutil.WithPhase("Fire"))
	c := testutil.NewTestPrompt("c", testutil.WithPhase("Aether"))
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Create(ctx, c))

	counts, err := repo.CountByPhase(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Fire": 2, "Aether": 1}, counts)

	require.NoError(t, repo.Delete(ctx, a.ID))
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), ErrNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Aether", all[0].Phase)
}

func TestPromptRepo_FetchByPhase(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePromptRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestPrompt("spark", testutil.WithTags("breakthrough"))))

	got, err := repo.FetchByPhase(ctx, "Fire", 9)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "spark", got[0].Text)
	assert.True(t, got[0].HasTag("breakthrough"))
}
