package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/intelligence"
	"github.com/alexanderramin/courtside/internal/llm"
	"github.com/alexanderramin/courtside/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrainingService(r repos, coach intelligence.CoachService) TrainingService {
	return NewTrainingService(r.training, r.calories, coach, r.tracker(), testClock())
}

func TestTraining_LogAnalyzesLastDayOfNutrition(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	coach := &fakeCoach{fuel: &intelligence.FuelInsight{Score: 80, Insight: "Goed getankt", Recommendation: "Meer water"}}
	svc := newTrainingService(r, coach)

	recent := testutil.NewTestCalorieLog("Pasta", testutil.WithTimestamp(testutil.FixedNow.Add(-2*time.Hour)))
	old := testutil.NewTestCalorieLog("Pizza", testutil.WithTimestamp(testutil.FixedNow.Add(-30*time.Hour)))
	require.NoError(t, r.calories.Put(ctx, recent))
	require.NoError(t, r.calories.Put(ctx, old))

	res, err := svc.Log(ctx, &domain.TrainingLog{Type: "Volleybal Training", Rating: 8, DurationMin: 90})
	require.NoError(t, err)

	assert.False(t, res.Fallback)
	assert.Equal(t, intelligence.Score(80), res.Fuel.Score)
	assert.Equal(t, 50, res.Award.Stats.XP)
	require.Len(t, coach.lastNutrition, 1)
	assert.Equal(t, "Pasta", coach.lastNutrition[0].Food)

	stored, err := r.training.GetByID(ctx, res.Log.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-26", stored.Date)
}

func TestTraining_MissingKeyKeepsLogAndFallsBack(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	coach := &fakeCoach{err: &llm.ConfigError{Setting: "api key", Err: llm.ErrMissingAPIKey}}
	svc := newTrainingService(r, coach)

	res, err := svc.Log(ctx, &domain.TrainingLog{Type: "Kracht", Rating: 6, DurationMin: 45})
	require.NoError(t, err)

	assert.True(t, res.Fallback)
	assert.Equal(t, FuelNoKey, res.Fuel)
	assert.True(t, errors.Is(res.FuelErr, llm.ErrMissingAPIKey))

	all, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTraining_AIFailureFallsBackToGenericMessage(t *testing.T) {
	r := setupRepos(t)
	coach := &fakeCoach{err: &llm.NetworkError{StatusCode: 500, Body: "boom", Err: llm.ErrHTTPStatus}}
	svc := newTrainingService(r, coach)

	res, err := svc.Log(context.Background(), &domain.TrainingLog{Type: "Training", Rating: 7, DurationMin: 60})
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, FuelFailed, res.Fuel)
}

func TestTraining_InvalidRatingWritesNothing(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	coach := &fakeCoach{}
	svc := newTrainingService(r, coach)

	_, err := svc.Log(ctx, &domain.TrainingLog{Type: "Training", Rating: 11, DurationMin: 60})
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Zero(t, coach.calls)

	all, err := r.training.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTraining_ListRange(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := newTrainingService(r, &fakeCoach{})

	for _, d := range []string{"2026-02-20", "2026-02-24", "2026-02-26"} {
		require.NoError(t, r.training.Put(ctx, testutil.NewTestTrainingLog("Training", testutil.WithTrainingDate(d))))
	}

	got, err := svc.List(ctx, "2026-02-23", "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-02-24", got[0].Date)

	_, err = svc.List(ctx, "gisteren", "")
	assert.ErrorIs(t, err, ErrInvalid)
}
