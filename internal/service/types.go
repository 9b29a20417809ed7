package service

import (
	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/gamification"
	"github.com/alexanderramin/courtside/internal/intelligence"
)

// FoodLogResult is a saved calorie log with the XP it earned.
type FoodLogResult struct {
	Log   *domain.CalorieLog `json:"log"`
	Award gamification.Award `json:"award"`
}

// DaySummary is the tracker view of one day.
type DaySummary struct {
	Date      string               `json:"date"`
	Logs      []*domain.CalorieLog `json:"logs"`
	Totals    domain.Macros        `json:"totals"`
	Goals     domain.Macros        `json:"goals"`
	Remaining domain.Macros        `json:"remaining"`
	Advice    []string             `json:"advice"`
}

// TrainingResult is a saved workout plus its fuel analysis. Fallback is
// set when the analysis could not run and Fuel holds a canned message.
type TrainingResult struct {
	Log      *domain.TrainingLog      `json:"log"`
	Award    gamification.Award       `json:"award"`
	Fuel     intelligence.FuelInsight `json:"fuel"`
	Fallback bool                     `json:"fallback"`
	FuelErr  error                    `json:"-"`
}

// SeriesPoint is one day of an insights chart.
type SeriesPoint struct {
	Date    string  `json:"date"`
	Value   float64 `json:"value"`
	HasData bool    `json:"has_data"`
}

// Series is a per-day metric over a timeframe. Average is rounded and
// counts only days with a non-zero value.
type Series struct {
	Timeframe    domain.Timeframe `json:"timeframe"`
	Metric       domain.Metric    `json:"metric"`
	Goal         float64          `json:"goal"`
	Points       []SeriesPoint    `json:"points"`
	Average      float64          `json:"average"`
	Total        float64          `json:"total"`
	Max          float64          `json:"max"`
	DaysWithData int              `json:"days_with_data"`
}

// MealPlan is a suggestion together with the inputs it was built from.
type MealPlan struct {
	Date       string                       `json:"date"`
	Remaining  domain.Macros                `json:"remaining"`
	Pantry     []string                     `json:"pantry"`
	Suggestion *intelligence.MealSuggestion `json:"suggestion"`
}

// AcceptResult lists the logs written for an accepted meal.
type AcceptResult struct {
	Logs  []*domain.CalorieLog `json:"logs"`
	Award gamification.Award   `json:"award"`
}

// HabitResult is the habit state after a toggle. Award is set only when
// the habit was checked.
type HabitResult struct {
	Habits  domain.Habits       `json:"habits"`
	Checked bool                `json:"checked"`
	Award   *gamification.Award `json:"award,omitempty"`
}

// FoodMatch is one autocomplete candidate.
type FoodMatch struct {
	Name        string        `json:"name"`
	Quantity    string        `json:"quantity,omitempty"`
	Macros      domain.Macros `json:"macros"`
	FromHistory bool          `json:"from_history"`
	Distance    int           `json:"distance"`
}
