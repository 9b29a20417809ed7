package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeRepo_RoundTripsLists(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRecipeRepo(db)
	ctx := context.Background()

	rec := &domain.Recipe{
		ID:           7,
		Title:        "Macaroni met 'Verstopte' Groenten",
		Tags:         []string{"Peuterproof", "Prep"},
		Time:         "20 min",
		Ingredients:  []string{"Volkoren Macaroni", "Rundergehakt"},
		Instructions: "Rul gehakt.",
	}
	require.NoError(t, repo.Put(ctx, rec))

	got, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestRecipeRepo_InsertIfAbsentDoesNotOverwrite(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRecipeRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &domain.Recipe{ID: 1, Title: "Mijn versie"}))
	require.NoError(t, repo.InsertIfAbsent(ctx, &domain.Recipe{ID: 1, Title: "Standaard"}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Mijn versie", all[0].Title)
	assert.Equal(t, []string{}, all[0].Tags)
}

func TestExerciseRepo_PutAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteExerciseRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &domain.Exercise{ID: 6, Title: "Plank", Reps: "45-60s", Desc: "Navel intrekken."}))
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Navel intrekken.", all[0].Desc)

	require.NoError(t, repo.Delete(ctx, 6))
	assert.ErrorIs(t, repo.Delete(ctx, 6), ErrNotFound)
}

func TestFoodSuggestionRepo_Upsert(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteFoodSuggestionRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.InsertIfAbsent(ctx, &domain.FoodSuggestion{Name: "Banaan", Quantity: "1 stuk", Calories: 105}))
	require.NoError(t, repo.InsertIfAbsent(ctx, &domain.FoodSuggestion{Name: "Banaan", Quantity: "1 stuk", Calories: 999}))
	require.NoError(t, repo.Put(ctx, &domain.FoodSuggestion{Name: "Appel", Quantity: "1 stuk", Calories: 70}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Appel", all[0].Name)
	assert.Equal(t, 105.0, all[1].Calories)
}
