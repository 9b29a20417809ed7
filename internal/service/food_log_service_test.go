package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/intelligence"
	"github.com/alexanderramin/courtside/internal/llm"
	"github.com/alexanderramin/courtside/internal/repository"
	"github.com/alexanderramin/courtside/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFoodLogService(r repos, food intelligence.FoodService, observers ...UseCaseObserver) FoodLogService {
	return NewFoodLogService(r.calories, r.settings, food, r.tracker(), testClock(), observers...)
}

func TestFoodLog_AnalyzeSavesAIEntryAndAwardsXP(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	food := &fakeFood{analysis: &intelligence.FoodAnalysis{
		Food: "Boterham met kaas", Quantity: "2 sneetjes", Calories: 320, Protein: 16, Carbs: 30, Fat: 14,
	}}
	svc := newFoodLogService(r, food)

	res, err := svc.Analyze(ctx, "2 boterhammen kaas", "data:image/jpeg;base64,AAAA")
	require.NoError(t, err)

	assert.Equal(t, domain.LogTypeAI, res.Log.Type)
	assert.Equal(t, "2026-02-26", res.Log.Date)
	assert.Equal(t, "data:image/jpeg;base64,AAAA", res.Log.Image)
	assert.Equal(t, 10, res.Award.Stats.XP)
	assert.Equal(t, 1, res.Award.Stats.Streak)

	stored, err := r.calories.GetByID(ctx, res.Log.ID)
	require.NoError(t, err)
	assert.Equal(t, "Boterham met kaas", stored.Food)
	assert.Equal(t, 320.0, stored.Calories)
}

func TestFoodLog_AnalyzeNothingIsInvalid(t *testing.T) {
	r := setupRepos(t)
	svc := newFoodLogService(r, &fakeFood{})

	_, err := svc.Analyze(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestFoodLog_AnalyzeMissingKeyWritesNothing(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	food := &fakeFood{err: &llm.ConfigError{Setting: "api key", Err: llm.ErrMissingAPIKey}}
	svc := newFoodLogService(r, food)

	_, err := svc.Analyze(ctx, "appel", "")
	var ce *llm.ConfigError
	require.True(t, errors.As(err, &ce))

	all, err := r.calories.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFoodLog_AddManualRejectsNegativeMacros(t *testing.T) {
	r := setupRepos(t)
	svc := newFoodLogService(r, &fakeFood{})

	_, err := svc.AddManual(context.Background(), &domain.CalorieLog{Food: "Appel", Calories: -5})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestFoodLog_UpdateKeepsTimestampAndType(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := newFoodLogService(r, &fakeFood{})

	orig := testutil.NewTestCalorieLog("Kwark", testutil.WithLogType(domain.LogTypeAI))
	require.NoError(t, r.calories.Put(ctx, orig))

	require.NoError(t, svc.Update(ctx, &domain.CalorieLog{ID: orig.ID, Food: "Magere kwark", Calories: 110, Protein: 18}))

	got, err := svc.Get(ctx, orig.ID)
	require.NoError(t, err)
	assert.Equal(t, "Magere kwark", got.Food)
	assert.Equal(t, domain.LogTypeAI, got.Type)
	assert.True(t, orig.Timestamp.Equal(got.Timestamp))
}

func TestFoodLog_UpdateUnknownIsNotFound(t *testing.T) {
	r := setupRepos(t)
	svc := newFoodLogService(r, &fakeFood{})

	err := svc.Update(context.Background(), &domain.CalorieLog{ID: "missing", Food: "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFoodLog_SummaryTotalsAndRemaining(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := newFoodLogService(r, &fakeFood{})

	require.NoError(t, r.settings.Put(ctx, domain.SettingCalorieGoal, 2000.0))
	require.NoError(t, r.settings.Put(ctx, domain.SettingProteinGoal, 150.0))
	require.NoError(t, r.calories.Put(ctx, testutil.NewTestCalorieLog("Havermout",
		testutil.WithMacros(domain.Macros{Calories: 400, Protein: 15, Carbs: 60, Fat: 8}))))
	require.NoError(t, r.calories.Put(ctx, testutil.NewTestCalorieLog("Pasta", testutil.WithLogDate("2026-02-25"))))

	sum, err := svc.Summary(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-26", sum.Date)
	assert.Len(t, sum.Logs, 1)
	assert.Equal(t, 400.0, sum.Totals.Calories)
	assert.Equal(t, 1600.0, sum.Remaining.Calories)
	assert.Equal(t, 135.0, sum.Remaining.Protein)
	assert.NotEmpty(t, sum.Advice)
}

func TestFoodLog_DeleteReportsUseCase(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := newFoodLogService(r, &fakeFood{}, obs)

	err := svc.Delete(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "food-delete", obs.events[0].Name)
	assert.False(t, obs.events[0].Success())
}
