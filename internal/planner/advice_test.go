package planner

import (
	"testing"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/stretchr/testify/assert"
)

var goals = domain.Macros{Calories: 2000, Protein: 150, Carbs: 250, Fat: 70}

func TestDailyAdvice_EmptyDay(t *testing.T) {
	assert.Equal(t, []string{AdviceStartLogging}, DailyAdvice(domain.Macros{}, goals))
}

func TestDailyAdvice_ProteinBehind(t *testing.T) {
	totals := domain.Macros{Calories: 1000, Protein: 20, Fat: 30}
	assert.Equal(t, []string{AdviceProteinBehind}, DailyAdvice(totals, goals))
}

func TestDailyAdvice_Balanced(t *testing.T) {
	totals := domain.Macros{Calories: 1200, Protein: 100, Fat: 40}
	assert.Equal(t, []string{AdviceBalanced}, DailyAdvice(totals, goals))
}

func TestDailyAdvice_OverEverything(t *testing.T) {
	totals := domain.Macros{Calories: 2500, Protein: 80, Fat: 90}
	got := DailyAdvice(totals, goals)
	assert.Equal(t, []string{AdviceProteinBehind, AdviceFatReached, AdviceOverCalories}, got)
}

func TestDailyAdvice_NoGoalsIsQuiet(t *testing.T) {
	got := DailyAdvice(domain.Macros{Calories: 500}, domain.Macros{})
	assert.Equal(t, []string{AdviceStartLogging}, got)
}

func TestThemeFor_UnknownFallsBackToRest(t *testing.T) {
	assert.Equal(t, ThemeFor(domain.ActivityRest), ThemeFor("toernooi"))
	assert.NotEqual(t, ThemeFor(domain.ActivityRest), ThemeFor(domain.ActivityMatch))
}
