package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// MemorySettings is an in-process SettingsRepo. Values are kept as JSON so
// decoding behaves exactly like the SQLite store.
type MemorySettings struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemorySettings returns an empty in-memory settings store.
func NewMemorySettings() *MemorySettings {
	return &MemorySettings{values: make(map[string][]byte)}
}

func (m *MemorySettings) Get(_ context.Context, key string, dst any) (bool, error) {
	m.mu.Lock()
	raw, ok := m.values[key]
	m.mu.Unlock()
	if !ok || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decoding setting %q: %w", key, err)
	}
	return true, nil
}

func (m *MemorySettings) Put(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding setting %q: %w", key, err)
	}
	m.mu.Lock()
	m.values[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemorySettings) PutIfAbsent(ctx context.Context, key string, value any) (bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("encoding setting %q: %w", key, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values[key]; ok {
		return false, nil
	}
	m.values[key] = raw
	return true, nil
}

func (m *MemorySettings) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values[key]; !ok {
		return fmt.Errorf("setting %q: %w", key, ErrNotFound)
	}
	delete(m.values, key)
	return nil
}

func (m *MemorySettings) Keys(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

var (
	_ SettingsRepo = (*MemorySettings)(nil)
	_ SettingsRepo = (*SQLiteSettingsRepo)(nil)

	_ RecipeRepo         = (*SQLiteRecipeRepo)(nil)
	_ OverrideRepo       = (*SQLiteOverrideRepo)(nil)
	_ ExerciseRepo       = (*SQLiteExerciseRepo)(nil)
	_ CalorieLogRepo     = (*SQLiteCalorieLogRepo)(nil)
	_ TrainingLogRepo    = (*SQLiteTrainingLogRepo)(nil)
	_ FoodSuggestionRepo = (*SQLiteFoodSuggestionRepo)(nil)
)
