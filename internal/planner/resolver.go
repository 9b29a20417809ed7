package planner

import (
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/schedule"
)

// Resolve computes the plan for a calendar date. An override for the date
// wins over the weekday routine; nutrition follows the weekday and the
// resolved activity type. Only the calendar fields of date are used.
func Resolve(date time.Time, overrides schedule.Table) domain.ResolvedDay {
	key := domain.DateKey(date)
	weekday := date.Weekday()

	plan, overridden := overrides.Lookup(key)
	if !overridden {
		plan = RoutinePlan(weekday)
	}
	if !plan.Type.Valid() {
		plan.Type = domain.ActivityRest
	}

	return domain.ResolvedDay{
		Date:       key,
		Weekday:    weekday,
		Overridden: overridden,
		DayPlan:    plan,
		Nutrition:  NutritionFor(weekday, plan.Type),
	}
}

// StartOfWeek returns the Monday on or before date, at midnight in date's location.
func StartOfWeek(date time.Time) time.Time {
	d := midnight(date)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// WeekOf resolves Monday through Sunday of the week containing date.
func WeekOf(date time.Time, overrides schedule.Table) []domain.ResolvedDay {
	start := StartOfWeek(date)
	return Range(start, start.AddDate(0, 0, 6), overrides)
}

// Range resolves every calendar day from from to to, inclusive.
// An inverted range yields nil.
func Range(from, to time.Time, overrides schedule.Table) []domain.ResolvedDay {
	from, to = midnight(from), midnight(to)
	if to.Before(from) {
		return nil
	}
	var days []domain.ResolvedDay
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, Resolve(d, overrides))
	}
	return days
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
