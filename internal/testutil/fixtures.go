package testutil

import (
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/google/uuid"
)

// FixedNow is the reference clock used across fixtures: Thursday 2026-02-26 09:00 UTC.
var FixedNow = time.Date(2026, 2, 26, 9, 0, 0, 0, time.UTC)

// Calorie log options
type CalorieLogOption func(*domain.CalorieLog)

func WithLogDate(date string) CalorieLogOption {
	return func(l *domain.CalorieLog) {
		l.Date = date
		if ts, err := domain.ParseDateKey(date); err == nil {
			l.Timestamp = ts.Add(12 * time.Hour)
		}
	}
}

func WithTimestamp(ts time.Time) CalorieLogOption {
	return func(l *domain.CalorieLog) {
		l.Timestamp = ts
		l.Date = domain.DateKey(ts)
	}
}

func WithMacros(m domain.Macros) CalorieLogOption {
	return func(l *domain.CalorieLog) {
		l.Calories, l.Protein, l.Carbs, l.Fat = m.Calories, m.Protein, m.Carbs, m.Fat
	}
}

func WithLogType(typ string) CalorieLogOption {
	return func(l *domain.CalorieLog) {
		l.Type = typ
	}
}

func NewTestCalorieLog(food string, opts ...CalorieLogOption) *domain.CalorieLog {
	l := &domain.CalorieLog{
		ID:        uuid.New().String(),
		Date:      domain.DateKey(FixedNow),
		Timestamp: FixedNow,
		Food:      food,
		Quantity:  "1 portie",
		Type:      domain.LogTypeManual,
		Calories:  300,
		Protein:   20,
		Carbs:     30,
		Fat:       10,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Training log options
type TrainingLogOption func(*domain.TrainingLog)

func WithTrainingDate(date string) TrainingLogOption {
	return func(l *domain.TrainingLog) {
		l.Date = date
		if ts, err := domain.ParseDateKey(date); err == nil {
			l.Timestamp = ts.Add(21 * time.Hour)
		}
	}
}

func WithRating(r int) TrainingLogOption {
	return func(l *domain.TrainingLog) {
		l.Rating = r
	}
}

func WithDuration(min int) TrainingLogOption {
	return func(l *domain.TrainingLog) {
		l.DurationMin = min
	}
}

func NewTestTrainingLog(typ string, opts ...TrainingLogOption) *domain.TrainingLog {
	l := &domain.TrainingLog{
		ID:          uuid.New().String(),
		Date:        domain.DateKey(FixedNow),
		Timestamp:   FixedNow,
		Type:        typ,
		Rating:      7,
		DurationMin: 90,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FixedClock returns a clock function that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
