package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
)

// Collection is the contract every record store shares: read everything,
// upsert by primary key, delete by key.
type Collection[K comparable, T any] interface {
	GetAll(ctx context.Context) ([]*T, error)
	Put(ctx context.Context, item *T) error
	Delete(ctx context.Context, key K) error
}

type RecipeRepo interface {
	Collection[int64, domain.Recipe]
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
	InsertIfAbsent(ctx context.Context, r *domain.Recipe) error
}

type OverrideRepo interface {
	Collection[string, domain.OverrideEntry]
	GetByDate(ctx context.Context, date string) (*domain.OverrideEntry, error)
	InsertIfAbsent(ctx context.Context, e *domain.OverrideEntry) error
}

type ExerciseRepo interface {
	Collection[int64, domain.Exercise]
	InsertIfAbsent(ctx context.Context, e *domain.Exercise) error
}

type CalorieLogRepo interface {
	Collection[string, domain.CalorieLog]
	GetByID(ctx context.Context, id string) (*domain.CalorieLog, error)
	// ListRange returns logs whose date key lies in [from, to], oldest first.
	ListRange(ctx context.Context, from, to string) ([]*domain.CalorieLog, error)
	// ListSince returns logs with a timestamp at or after since, oldest first.
	ListSince(ctx context.Context, since time.Time) ([]*domain.CalorieLog, error)
	// ListRecent returns the newest limit logs, oldest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.CalorieLog, error)
	// FoodFrequencies counts logs per food name, most frequent first.
	FoodFrequencies(ctx context.Context) ([]FoodCount, error)
}

type TrainingLogRepo interface {
	Collection[string, domain.TrainingLog]
	GetByID(ctx context.Context, id string) (*domain.TrainingLog, error)
	ListRange(ctx context.Context, from, to string) ([]*domain.TrainingLog, error)
}

type FoodSuggestionRepo interface {
	Collection[string, domain.FoodSuggestion]
	InsertIfAbsent(ctx context.Context, f *domain.FoodSuggestion) error
}

// SettingsRepo is a key-value store of JSON values.
type SettingsRepo interface {
	// Get decodes the value for key into dst and reports whether it existed.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Put(ctx context.Context, key string, value any) error
	// PutIfAbsent writes value only when key has no value yet.
	PutIfAbsent(ctx context.Context, key string, value any) (bool, error)
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// FoodCount is one row of the food frequency table.
type FoodCount struct {
	Food  string
	Count int
}
