package gamification

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/repository"
)

// XP awarded per action.
const (
	XPTrainingLog = 50
	XPFoodLog     = 10
	XPHabit       = 5
)

// Award is the outcome of AddXP.
type Award struct {
	Stats         domain.UserStats `json:"stats"`
	Level         LevelInfo        `json:"levelInfo"`
	LeveledUp     bool             `json:"leveledUp"`
	PreviousLevel int              `json:"previousLevel"`
}

// Tracker keeps the XP and streak record in the settings store. Each call
// is an unguarded read-modify-write; concurrent callers can lose updates.
type Tracker struct {
	settings repository.SettingsRepo
	now      func() time.Time
	loc      *time.Location
}

// NewTracker creates a Tracker. A nil clock uses time.Now; a nil location
// uses time.Local for calendar-day comparisons.
func NewTracker(settings repository.SettingsRepo, now func() time.Time, loc *time.Location) *Tracker {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Tracker{settings: settings, now: now, loc: loc}
}

// Today is the current calendar day as a date key.
func (t *Tracker) Today() string {
	return domain.DateKey(t.now().In(t.loc))
}

func (t *Tracker) load(ctx context.Context) (domain.UserStats, error) {
	stats := domain.NewUserStats()
	if _, err := t.settings.Get(ctx, domain.SettingUserStats, &stats); err != nil {
		return stats, fmt.Errorf("loading user stats: %w", err)
	}
	return stats, nil
}

func (t *Tracker) save(ctx context.Context, stats domain.UserStats) error {
	if err := t.settings.Put(ctx, domain.SettingUserStats, stats); err != nil {
		return fmt.Errorf("saving user stats: %w", err)
	}
	return nil
}

// Stats returns the stored record with the level recomputed from XP.
func (t *Tracker) Stats(ctx context.Context) (domain.UserStats, LevelInfo, error) {
	stats, err := t.load(ctx)
	if err != nil {
		return stats, LevelInfo{}, err
	}
	info := LevelOf(stats.XP)
	stats.Level = info.Level
	return stats, info, nil
}

// AddXP adds amount to the cumulative XP. Negative amounts are rejected so
// XP never decreases.
func (t *Tracker) AddXP(ctx context.Context, amount int) (Award, error) {
	if amount < 0 {
		return Award{}, fmt.Errorf("xp amount must be non-negative, got %d", amount)
	}
	stats, err := t.load(ctx)
	if err != nil {
		return Award{}, err
	}

	previous := LevelOf(stats.XP).Level
	stats.XP += amount
	info := LevelOf(stats.XP)
	stats.Level = info.Level

	if err := t.save(ctx, stats); err != nil {
		return Award{}, err
	}
	return Award{
		Stats:         stats,
		Level:         info,
		LeveledUp:     info.Level > previous,
		PreviousLevel: previous,
	}, nil
}

// UpdateStreak records activity for today: same day is a no-op, the day
// after the last log extends the streak, any other gap restarts it at 1.
func (t *Tracker) UpdateStreak(ctx context.Context) (domain.UserStats, error) {
	stats, err := t.load(ctx)
	if err != nil {
		return stats, err
	}

	now := t.now().In(t.loc)
	today := domain.DateKey(now)
	if stats.LastLogDate == today {
		return stats, nil
	}

	yesterday := domain.DateKey(now.AddDate(0, 0, -1))
	if stats.LastLogDate == yesterday {
		stats.Streak++
	} else {
		stats.Streak = 1
	}
	stats.LastLogDate = today
	stats.Level = LevelOf(stats.XP).Level

	if err := t.save(ctx, stats); err != nil {
		return stats, err
	}
	return stats, nil
}

// Record awards XP for one logged action and extends the streak.
func (t *Tracker) Record(ctx context.Context, xp int) (Award, error) {
	award, err := t.AddXP(ctx, xp)
	if err != nil {
		return Award{}, err
	}
	stats, err := t.UpdateStreak(ctx)
	if err != nil {
		return Award{}, err
	}
	award.Stats = stats
	return award, nil
}
