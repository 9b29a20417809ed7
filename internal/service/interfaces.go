package service

import (
	"context"
	"io"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/gamification"
	"github.com/alexanderramin/courtside/internal/intelligence"
	"github.com/alexanderramin/courtside/internal/schedule"
)

type PlanService interface {
	Today(ctx context.Context) (domain.ResolvedDay, error)
	// Day resolves a YYYY-MM-DD key; empty means today.
	Day(ctx context.Context, date string) (domain.ResolvedDay, error)
	// Week resolves Monday..Sunday of the week containing date.
	Week(ctx context.Context, date string) ([]domain.ResolvedDay, error)
	// Upcoming resolves today plus the following days-1 days.
	Upcoming(ctx context.Context, days int) ([]domain.ResolvedDay, error)
	// Range resolves every day in [from, to]; an inverted range is invalid.
	Range(ctx context.Context, from, to string) ([]domain.ResolvedDay, error)
}

type OverrideService interface {
	// Set replaces any override for the entry's date.
	Set(ctx context.Context, entry domain.OverrideEntry) error
	Delete(ctx context.Context, date string) error
	List(ctx context.Context) ([]domain.OverrideEntry, error)
	Table(ctx context.Context) (schedule.Table, error)
}

type FoodLogService interface {
	Analyze(ctx context.Context, text, image string) (*FoodLogResult, error)
	AddManual(ctx context.Context, log *domain.CalorieLog) (*FoodLogResult, error)
	Get(ctx context.Context, id string) (*domain.CalorieLog, error)
	Update(ctx context.Context, log *domain.CalorieLog) error
	Delete(ctx context.Context, id string) error
	ListDay(ctx context.Context, date string) ([]*domain.CalorieLog, error)
	DayTotals(ctx context.Context, date string) (domain.Macros, error)
	Advice(ctx context.Context, date string) ([]string, error)
	Summary(ctx context.Context, date string) (*DaySummary, error)
}

type TrainingService interface {
	// Log saves the workout, awards XP and then asks for a fuel analysis.
	// The analysis never undoes the save.
	Log(ctx context.Context, log *domain.TrainingLog) (*TrainingResult, error)
	List(ctx context.Context, from, to string) ([]*domain.TrainingLog, error)
	Delete(ctx context.Context, id string) error
}

type InsightsService interface {
	Series(ctx context.Context, timeframe domain.Timeframe, metric domain.Metric, end string) (*Series, error)
	Analyze(ctx context.Context) (*intelligence.ProgressAnalysis, error)
}

type MealService interface {
	Pantry(ctx context.Context) ([]string, error)
	Suggest(ctx context.Context, date string) (*MealPlan, error)
	// Accept logs every ingredient as its own entry. A failure part way
	// leaves earlier entries in place.
	Accept(ctx context.Context, meal *intelligence.MealSuggestion) (*AcceptResult, error)
}

type ProfileService interface {
	Profile(ctx context.Context) (domain.UserProfile, error)
	Goals(ctx context.Context) (domain.Macros, error)
	SetGoals(ctx context.Context, goals domain.Macros) error
	SetBodyStats(ctx context.Context, heightCm, weightKg float64) error
	SetAPIKey(ctx context.Context, key string) error
	HasAPIKey(ctx context.Context) (bool, error)
	GenerateGoals(ctx context.Context) (*domain.Macros, error)
	CoachFeedback(ctx context.Context) (*intelligence.CoachFeedback, error)
	Stats(ctx context.Context) (domain.UserStats, gamification.LevelInfo, error)

	Habits(ctx context.Context) (domain.Habits, error)
	ToggleHabit(ctx context.Context, name string) (*HabitResult, error)

	ShoppingList(ctx context.Context) ([]string, error)
	AddShoppingItems(ctx context.Context, items ...string) ([]string, error)
	RemoveShoppingItem(ctx context.Context, item string) ([]string, error)
	ClearShoppingList(ctx context.Context) error
}

// SettingsService is raw key/value access for the settings command and API.
type SettingsService interface {
	Get(ctx context.Context, key string) (any, bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

type CatalogService interface {
	Recipes(ctx context.Context) ([]*domain.Recipe, error)
	Recipe(ctx context.Context, id int64) (*domain.Recipe, error)
	// SaveRecipe upserts; an ID of 0 gets the next free ID.
	SaveRecipe(ctx context.Context, r *domain.Recipe) error
	DeleteRecipe(ctx context.Context, id int64) error
	Exercises(ctx context.Context) ([]*domain.Exercise, error)
	SaveExercise(ctx context.Context, e *domain.Exercise) error
	DeleteExercise(ctx context.Context, id int64) error
	StandardPantry() []string
}

type FoodSearch interface {
	Search(ctx context.Context, query string, limit int) ([]FoodMatch, error)
}

type ExportService interface {
	// WriteWorkbook writes calorie and training logs in [from, to] as .xlsx.
	WriteWorkbook(ctx context.Context, w io.Writer, from, to string) error
	// WriteCalendar writes the resolved plan for [from, to] as .ics.
	WriteCalendar(ctx context.Context, w io.Writer, from, to string) error
}

type SeedService interface {
	// Seed writes the built-in data once per seed version and reports
	// whether anything ran.
	Seed(ctx context.Context) (bool, error)
}
