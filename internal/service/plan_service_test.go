package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_TodayFollowsRoutineWithoutOverride(t *testing.T) {
	r := setupRepos(t)

	day, err := r.plan().Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-02-26", day.Date)
	assert.Equal(t, time.Thursday, day.Weekday)
	assert.Equal(t, domain.ActivityStrength, day.Type)
	assert.False(t, day.Overridden)
}

func TestPlan_OverrideWins(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	overrides := NewOverrideService(r.overrides)
	plan := NewPlanService(overrides, testClock())

	require.NoError(t, overrides.Set(ctx, domain.OverrideEntry{
		Date:    "2026-02-26",
		DayPlan: domain.DayPlan{Type: domain.ActivityMatch, Title: "WEDSTRIJD UIT", Icon: domain.IconTrophy},
	}))

	day, err := plan.Day(ctx, "2026-02-26")
	require.NoError(t, err)
	assert.True(t, day.Overridden)
	assert.Equal(t, domain.ActivityMatch, day.Type)
	assert.Equal(t, "WEDSTRIJD UIT", day.Title)

	// Last write wins.
	require.NoError(t, overrides.Set(ctx, domain.OverrideEntry{
		Date:    "2026-02-26",
		DayPlan: domain.DayPlan{Type: domain.ActivityRest, Title: "Afgelast"},
	}))
	day, err = plan.Day(ctx, "2026-02-26")
	require.NoError(t, err)
	assert.Equal(t, "Afgelast", day.Title)

	require.NoError(t, overrides.Delete(ctx, "2026-02-26"))
	day, err = plan.Day(ctx, "2026-02-26")
	require.NoError(t, err)
	assert.False(t, day.Overridden)
	assert.Equal(t, domain.ActivityStrength, day.Type)
}

func TestOverride_SetRejectsBadDate(t *testing.T) {
	r := setupRepos(t)
	err := NewOverrideService(r.overrides).Set(context.Background(), domain.OverrideEntry{Date: "26-02-2026"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestOverride_DeleteMissingIsNotFound(t *testing.T) {
	r := setupRepos(t)
	err := NewOverrideService(r.overrides).Delete(context.Background(), "2030-01-01")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlan_WeekStartsMonday(t *testing.T) {
	r := setupRepos(t)

	week, err := r.plan().Week(context.Background(), "2026-03-01")
	require.NoError(t, err)
	require.Len(t, week, 7)
	assert.Equal(t, "2026-02-23", week[0].Date)
	assert.Equal(t, "2026-03-01", week[6].Date)
}

func TestPlan_UpcomingAndRange(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	plan := r.plan()

	days, err := plan.Upcoming(ctx, 7)
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.Equal(t, "2026-02-26", days[0].Date)
	assert.Equal(t, "2026-03-04", days[6].Date)

	days, err = plan.Range(ctx, "2026-02-01", "2026-02-03")
	require.NoError(t, err)
	assert.Len(t, days, 3)

	_, err = plan.Range(ctx, "2026-02-03", "2026-02-01")
	assert.ErrorIs(t, err, ErrInvalid)
}
