package planner

import (
	"testing"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNutritionFor_AlwaysHasMainMeals(t *testing.T) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		for _, act := range domain.ActivityTypes {
			n := NutritionFor(wd, act)
			assert.NotEmpty(t, n.Breakfast, "%s/%s", wd, act)
			assert.NotEmpty(t, n.Lunch, "%s/%s", wd, act)
			assert.NotEmpty(t, n.Dinner, "%s/%s", wd, act)
			assert.NotEmpty(t, n.FamilyTip, "%s/%s", wd, act)
		}
	}
}

func TestNutritionFor_SaturdayMatchBranch(t *testing.T) {
	match := NutritionFor(time.Saturday, domain.ActivityMatch)
	assert.Equal(t, "3 uur voor de wedstrijd: Laatste grote maaltijd (Pasta/Brood).", match.Lunch)
	assert.True(t, match.HasSnack())

	rest := NutritionFor(time.Saturday, domain.ActivityRest)
	assert.Equal(t, "BBQ of lekker koken in het weekend.", rest.Dinner)
	assert.Equal(t, baseNutrition().Lunch, rest.Lunch)
	assert.False(t, rest.HasSnack())
}

func TestNutritionFor_MatchOnlyChangesThursdayAndSaturday(t *testing.T) {
	for _, wd := range []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Friday} {
		assert.Equal(t, NutritionFor(wd, domain.ActivityRest), NutritionFor(wd, domain.ActivityMatch), "weekday=%s", wd)
	}
	assert.NotEqual(t, NutritionFor(time.Thursday, domain.ActivityStrength), NutritionFor(time.Thursday, domain.ActivityMatch))
}

func TestNutritionFor_TuesdayKeepsBaseSnackFree(t *testing.T) {
	n := NutritionFor(time.Tuesday, domain.ActivitySleep)
	assert.Empty(t, n.Snack)
	assert.Contains(t, n.Breakfast, "Eieren")
}
