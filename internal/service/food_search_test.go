package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSearch(t *testing.T) FoodSearch {
	t.Helper()
	r := setupRepos(t)
	ctx := context.Background()
	for _, f := range []domain.FoodSuggestion{
		{Name: "Magere kwark", Quantity: "200 g", Calories: 118, Protein: 18},
		{Name: "Banaan", Quantity: "1 stuk", Calories: 105, Carbs: 23},
		{Name: "Kipfilet", Quantity: "100 g", Calories: 110, Protein: 24},
		{Name: "Volkoren pasta (gekookt)", Quantity: "200 g", Calories: 290},
	} {
		f := f
		require.NoError(t, r.suggestions.Put(ctx, &f))
	}

	require.NoError(t, r.calories.Put(ctx, testutil.NewTestCalorieLog("Kwark met honing",
		testutil.WithTimestamp(testutil.FixedNow.Add(-time.Hour)),
		testutil.WithMacros(domain.Macros{Calories: 150}))))
	require.NoError(t, r.calories.Put(ctx, testutil.NewTestCalorieLog("Kwark met honing",
		testutil.WithTimestamp(testutil.FixedNow),
		testutil.WithMacros(domain.Macros{Calories: 180}))))
	require.NoError(t, r.calories.Put(ctx, testutil.NewTestCalorieLog("kipfilet",
		testutil.WithMacros(domain.Macros{Calories: 130}))))

	return NewFoodSearch(r.calories, r.suggestions)
}

func TestSearch_PrefixBeforeWordPrefix(t *testing.T) {
	svc := setupSearch(t)

	got, err := svc.Search(context.Background(), "kwa", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Kwark met honing", got[0].Name)
	assert.True(t, got[0].FromHistory)
	assert.Equal(t, 180.0, got[0].Macros.Calories)
	assert.Equal(t, "Magere kwark", got[1].Name)
	assert.False(t, got[1].FromHistory)
}

func TestSearch_HistoryShadowsDictionary(t *testing.T) {
	svc := setupSearch(t)

	got, err := svc.Search(context.Background(), "Kip", 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "kipfilet", got[0].Name)
	assert.Equal(t, 130.0, got[0].Macros.Calories)
}

func TestSearch_FuzzyTypo(t *testing.T) {
	svc := setupSearch(t)

	got, err := svc.Search(context.Background(), "banan", 5)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "Banaan", got[0].Name)
	assert.Equal(t, 1, got[0].Distance)
}

func TestSearch_ShortQueriesAreNotFuzzy(t *testing.T) {
	svc := setupSearch(t)

	got, err := svc.Search(context.Background(), "zz", 5)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = svc.Search(context.Background(), "   ", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearch_Limit(t *testing.T) {
	svc := setupSearch(t)

	got, err := svc.Search(context.Background(), "k", 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
