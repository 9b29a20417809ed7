package planner

import (
	"testing"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve_OverrideMatchOnThursday(t *testing.T) {
	got := Resolve(day(2026, 2, 26), schedule.Default())

	assert.Equal(t, "2026-02-26", got.Date)
	assert.Equal(t, time.Thursday, got.Weekday)
	assert.True(t, got.Overridden)
	assert.Equal(t, domain.ActivityMatch, got.Type)
	assert.Contains(t, got.Title, "WEDSTRIJD UIT")

	assert.Equal(t, "Grote warme lunch als het kan.", got.Nutrition.Lunch)
	assert.Equal(t, "Banaan en koek mee voor na de wedstrijd.", got.Nutrition.Snack)
	assert.Equal(t, "Lichte maaltijd om 17:30. Pasta/Wraps.", got.Nutrition.Dinner)
}

func TestResolve_ThursdayWithoutOverride(t *testing.T) {
	got := Resolve(day(2026, 1, 1), schedule.Default())

	assert.False(t, got.Overridden)
	assert.Equal(t, domain.ActivityStrength, got.Type)
	assert.Equal(t, "Kracht Circuit", got.Title)
	assert.Equal(t, domain.IconDumbbell, got.Icon)
	assert.Equal(t, "Koffie/Espresso om 17:00 voor je krachtcircuit.", got.Nutrition.Snack)
}

func TestResolve_OverrideWinsOnEveryWeekday(t *testing.T) {
	override := domain.DayPlan{Type: domain.ActivityPower, Title: "Extra", Details: "d", Icon: domain.IconZap}
	table := schedule.Table{}
	start := day(2026, 6, 1)
	for i := 0; i < 7; i++ {
		table[domain.DateKey(start.AddDate(0, 0, i))] = override
	}

	for i := 0; i < 7; i++ {
		got := Resolve(start.AddDate(0, 0, i), table)
		assert.Equal(t, override, got.DayPlan, "weekday=%s", got.Weekday)
	}
}

func TestResolve_RoutineTable(t *testing.T) {
	cases := []struct {
		date time.Time
		want domain.ActivityType
	}{
		{day(2026, 1, 5), domain.ActivityTraining}, // Monday
		{day(2026, 1, 6), domain.ActivitySleep},
		{day(2026, 1, 7), domain.ActivityTraining},
		{day(2026, 1, 8), domain.ActivityStrength},
		{day(2026, 1, 9), domain.ActivityRest},
		{day(2026, 1, 11), domain.ActivityRest},
	}
	for _, tc := range cases {
		got := Resolve(tc.date, nil)
		assert.Equal(t, tc.want, got.Type, "date=%s", got.Date)
		assert.NotEmpty(t, got.Nutrition.Breakfast)
		assert.NotEmpty(t, got.Nutrition.Lunch)
		assert.NotEmpty(t, got.Nutrition.Dinner)
	}
}

func TestResolve_UnknownOverrideTypeBecomesRest(t *testing.T) {
	table := schedule.Table{
		"2026-05-02": {Type: "toernooi", Title: "Toernooi", Details: "hele dag", Icon: domain.IconTrophy},
	}

	got := Resolve(day(2026, 5, 2), table)

	assert.Equal(t, domain.ActivityRest, got.Type)
	assert.Equal(t, "Toernooi", got.Title)
	assert.Equal(t, "hele dag", got.Details)
}

func TestResolve_IsPure(t *testing.T) {
	table := schedule.Default()
	a := Resolve(day(2025, 12, 20), table)
	b := Resolve(day(2025, 12, 20), table)
	assert.Equal(t, a, b)
	assert.Len(t, table, len(schedule.Default()))
}

func TestResolve_IgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	late := time.Date(2026, 2, 26, 23, 30, 0, 0, loc)

	got := Resolve(late, schedule.Default())
	assert.Equal(t, "2026-02-26", got.Date)
	assert.Equal(t, domain.ActivityMatch, got.Type)
}

func TestWeekOf_StartsOnMonday(t *testing.T) {
	week := WeekOf(day(2026, 1, 1), nil)

	require.Len(t, week, 7)
	assert.Equal(t, "2025-12-29", week[0].Date)
	assert.Equal(t, time.Monday, week[0].Weekday)
	assert.Equal(t, "2026-01-04", week[6].Date)
	assert.Equal(t, time.Sunday, week[6].Weekday)
}

func TestWeekOf_SundayBelongsToPreviousMonday(t *testing.T) {
	week := WeekOf(day(2026, 1, 4), nil)
	require.Len(t, week, 7)
	assert.Equal(t, "2025-12-29", week[0].Date)
}

func TestRange_InclusiveAndInverted(t *testing.T) {
	days := Range(day(2026, 3, 19), day(2026, 3, 21), schedule.Default())
	require.Len(t, days, 3)
	assert.Equal(t, domain.ActivityMatch, days[0].Type)
	assert.Equal(t, "Rust / Slaap", days[1].Title)
	assert.Equal(t, "Rust Weekend", days[2].Title)

	assert.Nil(t, Range(day(2026, 3, 21), day(2026, 3, 19), nil))
}
