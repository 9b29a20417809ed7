package planner

import (
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
)

var trainingPlan = domain.DayPlan{
	Type:    domain.ActivityTraining,
	Title:   "Volleybal Training",
	Details: "LET OP: Direct eiwitten & slapen",
	Icon:    domain.IconVolleyball,
}

// RoutinePlan returns the fixed weekly routine for a weekday.
func RoutinePlan(weekday time.Weekday) domain.DayPlan {
	switch weekday {
	case time.Monday, time.Wednesday:
		return trainingPlan
	case time.Tuesday:
		return domain.DayPlan{
			Type:    domain.ActivitySleep,
			Title:   "SLAAPAVOND",
			Details: "Minimaal 9 uur pakken. Geen sport.",
			Icon:    domain.IconMoon,
		}
	case time.Thursday:
		return domain.DayPlan{
			Type:    domain.ActivityStrength,
			Title:   "Kracht Circuit",
			Details: "Moe? Espresso. Kapot? Slapen.",
			Icon:    domain.IconDumbbell,
		}
	case time.Friday:
		return domain.DayPlan{
			Type:    domain.ActivityRest,
			Title:   "Papadag & Herstel",
			Details: "Focus op gezin & rustig aan",
			Icon:    domain.IconCoffee,
		}
	case time.Saturday:
		return domain.DayPlan{
			Type:    domain.ActivityRest,
			Title:   "Vrij Weekend",
			Details: "Rust of lichte Power Training",
			Icon:    domain.IconZap,
		}
	case time.Sunday:
		return domain.DayPlan{
			Type:    domain.ActivityRest,
			Title:   "Rustdag & Prep",
			Details: "Voorbereiden op werkweek",
			Icon:    domain.IconCoffee,
		}
	default:
		return domain.DayPlan{Type: domain.ActivityRest, Title: "Rust", Icon: domain.IconCoffee}
	}
}
