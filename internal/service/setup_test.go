package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/courtside/internal/db"
	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/gamification"
	"github.com/alexanderramin/courtside/internal/intelligence"
	"github.com/alexanderramin/courtside/internal/repository"
	"github.com/alexanderramin/courtside/internal/testutil"
)

type repos struct {
	db          *sql.DB
	uow         db.UnitOfWork
	calories    *repository.SQLiteCalorieLogRepo
	training    *repository.SQLiteTrainingLogRepo
	overrides   *repository.SQLiteOverrideRepo
	recipes     *repository.SQLiteRecipeRepo
	exercises   *repository.SQLiteExerciseRepo
	suggestions *repository.SQLiteFoodSuggestionRepo
	settings    *repository.SQLiteSettingsRepo
}

func setupRepos(t *testing.T) repos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repos{
		db:          database,
		uow:         testutil.NewTestUoW(database),
		calories:    repository.NewSQLiteCalorieLogRepo(database),
		training:    repository.NewSQLiteTrainingLogRepo(database),
		overrides:   repository.NewSQLiteOverrideRepo(database),
		recipes:     repository.NewSQLiteRecipeRepo(database),
		exercises:   repository.NewSQLiteExerciseRepo(database),
		suggestions: repository.NewSQLiteFoodSuggestionRepo(database),
		settings:    repository.NewSQLiteSettingsRepo(database),
	}
}

func testClock() Clock {
	return NewClock(testutil.FixedClock(testutil.FixedNow), time.UTC)
}

func (r repos) tracker() *gamification.Tracker {
	return gamification.NewTracker(r.settings, testutil.FixedClock(testutil.FixedNow), time.UTC)
}

func (r repos) plan() PlanService {
	return NewPlanService(NewOverrideService(r.overrides), testClock())
}

// fakeFood is a canned intelligence.FoodService.
type fakeFood struct {
	analysis *intelligence.FoodAnalysis
	meal     *intelligence.MealSuggestion
	err      error

	lastRemaining domain.Macros
	lastPantry    []string
	calls         int
}

func (f *fakeFood) AnalyzeFood(_ context.Context, text, image string) (*intelligence.FoodAnalysis, error) {
	f.calls++
	if text == "" && image == "" {
		return nil, intelligence.ErrNothingToAnalyze
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.analysis, nil
}

func (f *fakeFood) SuggestMeal(_ context.Context, remaining domain.Macros, pantry []string) (*intelligence.MealSuggestion, error) {
	f.calls++
	f.lastRemaining = remaining
	f.lastPantry = pantry
	if f.err != nil {
		return nil, f.err
	}
	return f.meal, nil
}

// fakeCoach is a canned intelligence.CoachService.
type fakeCoach struct {
	feedback *intelligence.CoachFeedback
	goals    *domain.Macros
	progress *intelligence.ProgressAnalysis
	fuel     *intelligence.FuelInsight
	err      error

	lastNutrition []*domain.CalorieLog
	lastSchedule  []intelligence.ScheduleDay
	lastStats     intelligence.BodyStats
	calls         int
}

func (c *fakeCoach) Feedback(_ context.Context, _ []*domain.CalorieLog, stats intelligence.BodyStats, schedule []intelligence.ScheduleDay) (*intelligence.CoachFeedback, error) {
	c.calls++
	c.lastStats, c.lastSchedule = stats, schedule
	return c.feedback, c.err
}

func (c *fakeCoach) Goals(_ context.Context, stats intelligence.BodyStats, schedule []intelligence.ScheduleDay) (*domain.Macros, error) {
	c.calls++
	c.lastStats, c.lastSchedule = stats, schedule
	if c.err != nil {
		return nil, c.err
	}
	return c.goals, nil
}

func (c *fakeCoach) Progress(_ context.Context, logs []*domain.CalorieLog, _ domain.Macros) (*intelligence.ProgressAnalysis, error) {
	c.calls++
	c.lastNutrition = logs
	if c.err != nil {
		return nil, c.err
	}
	return c.progress, nil
}

func (c *fakeCoach) Fuel(_ context.Context, _ *domain.TrainingLog, nutrition []*domain.CalorieLog) (*intelligence.FuelInsight, error) {
	c.calls++
	c.lastNutrition = nutrition
	if c.err != nil {
		return nil, c.err
	}
	return c.fuel, nil
}

// recordingObserver keeps every use-case event.
type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}
