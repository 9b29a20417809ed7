package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/courtside/internal/catalog"
	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(r repos) CatalogService {
	return NewCatalogService(r.recipes, r.exercises, r.uow)
}

func TestSaveRecipe_AssignsNextID(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := newCatalogService(r)

	require.NoError(t, r.recipes.Put(ctx, &domain.Recipe{ID: 7, Title: "Bestaand"}))

	rec := &domain.Recipe{Title: "Shakshuka", Ingredients: []string{"Eieren", "Tomaten"}}
	require.NoError(t, svc.SaveRecipe(ctx, rec))
	assert.Equal(t, int64(8), rec.ID)

	got, err := svc.Recipe(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, "Shakshuka", got.Title)
	assert.Equal(t, []string{"Eieren", "Tomaten"}, got.Ingredients)
}

func TestSaveRecipe_UpsertsExisting(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := newCatalogService(r)

	require.NoError(t, svc.SaveRecipe(ctx, &domain.Recipe{ID: 3, Title: "Oud"}))
	require.NoError(t, svc.SaveRecipe(ctx, &domain.Recipe{ID: 3, Title: "Nieuw"}))

	all, err := svc.Recipes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Nieuw", all[0].Title)
}

func TestSaveRecipe_RequiresTitle(t *testing.T) {
	r := setupRepos(t)
	assert.ErrorIs(t, newCatalogService(r).SaveRecipe(context.Background(), &domain.Recipe{}), ErrInvalid)
}

func TestDeleteRecipe_MissingIsNotFound(t *testing.T) {
	r := setupRepos(t)
	assert.ErrorIs(t, newCatalogService(r).DeleteRecipe(context.Background(), 99), repository.ErrNotFound)
}

func TestExercises_SaveAndDelete(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := newCatalogService(r)

	e := &domain.Exercise{Title: "Goblet Squats", Reps: "3x12"}
	require.NoError(t, svc.SaveExercise(ctx, e))
	assert.Equal(t, int64(1), e.ID)

	all, err := svc.Exercises(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, svc.DeleteExercise(ctx, e.ID))
	all, err = svc.Exercises(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStandardPantry_IsACopy(t *testing.T) {
	r := setupRepos(t)
	svc := newCatalogService(r)

	p := svc.StandardPantry()
	require.Equal(t, catalog.StandardPantry, p)
	p[0] = "changed"
	assert.NotEqual(t, "changed", catalog.StandardPantry[0])
}
