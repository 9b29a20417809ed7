package planner

import "github.com/alexanderramin/courtside/internal/domain"

// Advice lines shown under the day totals.
const (
	AdviceProteinBehind = "⚠️ Tip: Je eiwitten lopen achter op je calorieën. Probeer wat kwark of kip!"
	AdviceFatReached    = "🚨 Let op: Je vetinname is al bereikt voor vandaag."
	AdviceOverCalories  = "🔥 Je zit over je calorie doel. Eet de rest van de dag licht."
	AdviceBalanced      = "💪 Lekker bezig! Je macro's zijn mooi in balans."
	AdviceStartLogging  = "☕ Goedemorgen! Tijd om te loggen."
)

// DailyAdvice compares the day's totals with the goals and returns the
// matching tips in a fixed order. Zero goals are treated as unset.
func DailyAdvice(totals, goals domain.Macros) []string {
	calPct := ratio(totals.Calories, goals.Calories)
	proteinPct := ratio(totals.Protein, goals.Protein)

	var advice []string
	if calPct > 0.4 && proteinPct < calPct*0.7 {
		advice = append(advice, AdviceProteinBehind)
	}
	if goals.Fat > 0 && totals.Fat > goals.Fat {
		advice = append(advice, AdviceFatReached)
	}
	if goals.Calories > 0 && totals.Calories > goals.Calories {
		advice = append(advice, AdviceOverCalories)
	}
	if calPct > 0.5 && proteinPct > 0.5 && totals.Fat < goals.Fat {
		advice = append(advice, AdviceBalanced)
	}
	if len(advice) == 0 && calPct < 0.3 {
		advice = append(advice, AdviceStartLogging)
	}
	return advice
}

func ratio(v, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return v / goal
}
