package gamification

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time   { return c.t }
func (c *clock) advance(days int) { c.t = c.t.AddDate(0, 0, days) }

func newClock(y int, m time.Month, d int) *clock {
	return &clock{t: time.Date(y, m, d, 20, 0, 0, 0, time.UTC)}
}

func newTestTracker(c *clock) (*Tracker, *repository.MemorySettings) {
	settings := repository.NewMemorySettings()
	return NewTracker(settings, c.now, time.UTC), settings
}

func TestTracker_AddXP_LevelUpOnce(t *testing.T) {
	tr, _ := newTestTracker(newClock(2026, 2, 26))
	ctx := context.Background()

	award, err := tr.AddXP(ctx, 50)
	require.NoError(t, err)
	assert.False(t, award.LeveledUp)
	assert.Equal(t, 50, award.Stats.XP)

	award, err = tr.AddXP(ctx, 50)
	require.NoError(t, err)
	assert.True(t, award.LeveledUp)
	assert.Equal(t, 1, award.PreviousLevel)
	assert.Equal(t, 2, award.Stats.Level)

	award, err = tr.AddXP(ctx, 10)
	require.NoError(t, err)
	assert.False(t, award.LeveledUp)
}

func TestTracker_AddXP_RejectsNegative(t *testing.T) {
	tr, _ := newTestTracker(newClock(2026, 2, 26))
	_, err := tr.AddXP(context.Background(), -5)
	assert.Error(t, err)
}

func TestTracker_Stats_RecomputesStoredLevel(t *testing.T) {
	tr, settings := newTestTracker(newClock(2026, 2, 26))
	ctx := context.Background()

	require.NoError(t, settings.Put(ctx, domain.SettingUserStats, domain.UserStats{XP: 650, Level: 9}))

	stats, info, err := tr.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Level)
	assert.Equal(t, 4, info.Level)
}

func TestTracker_Stats_Defaults(t *testing.T) {
	tr, _ := newTestTracker(newClock(2026, 2, 26))

	stats, info, err := tr.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.NewUserStats(), stats)
	assert.Equal(t, 1, info.Level)
}

func TestTracker_UpdateStreak_SameDayNoChange(t *testing.T) {
	c := newClock(2026, 2, 26)
	tr, _ := newTestTracker(c)
	ctx := context.Background()

	first, err := tr.UpdateStreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Streak)

	second, err := tr.UpdateStreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTracker_UpdateStreak_ConsecutiveDays(t *testing.T) {
	c := newClock(2026, 2, 26)
	tr, _ := newTestTracker(c)
	ctx := context.Background()

	for want := 1; want <= 4; want++ {
		stats, err := tr.UpdateStreak(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, stats.Streak)
		c.advance(1)
	}
}

func TestTracker_UpdateStreak_GapResets(t *testing.T) {
	c := newClock(2026, 2, 26)
	tr, _ := newTestTracker(c)
	ctx := context.Background()

	_, err := tr.UpdateStreak(ctx)
	require.NoError(t, err)
	c.advance(1)
	stats, err := tr.UpdateStreak(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Streak)

	c.advance(2)
	stats, err = tr.UpdateStreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Streak)
	assert.Equal(t, "2026-03-01", stats.LastLogDate)
}

func TestTracker_UpdateStreak_CrossesMonthBoundary(t *testing.T) {
	c := newClock(2026, 2, 28)
	tr, _ := newTestTracker(c)
	ctx := context.Background()

	_, err := tr.UpdateStreak(ctx)
	require.NoError(t, err)
	c.advance(1)
	stats, err := tr.UpdateStreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Streak)
	assert.Equal(t, "2026-03-01", stats.LastLogDate)
}

func TestTracker_Record_AwardsAndStreaks(t *testing.T) {
	tr, _ := newTestTracker(newClock(2026, 2, 26))

	award, err := tr.Record(context.Background(), XPTrainingLog)
	require.NoError(t, err)
	assert.Equal(t, 50, award.Stats.XP)
	assert.Equal(t, 1, award.Stats.Streak)
	assert.Equal(t, "2026-02-26", award.Stats.LastLogDate)
}
