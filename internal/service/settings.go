package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/repository"
)

func readFloat(ctx context.Context, settings repository.SettingsRepo, key string, fallback float64) (float64, error) {
	var v float64
	ok, err := settings.Get(ctx, key, &v)
	if err != nil {
		return 0, err
	}
	if !ok {
		return fallback, nil
	}
	return v, nil
}

// readGoals reads the four goal settings, using the defaults for any that
// were never saved.
func readGoals(ctx context.Context, settings repository.SettingsRepo) (domain.Macros, error) {
	def := domain.DefaultGoals()
	var g domain.Macros
	var err error
	if g.Calories, err = readFloat(ctx, settings, domain.SettingCalorieGoal, def.Calories); err != nil {
		return g, err
	}
	if g.Protein, err = readFloat(ctx, settings, domain.SettingProteinGoal, def.Protein); err != nil {
		return g, err
	}
	if g.Carbs, err = readFloat(ctx, settings, domain.SettingCarbsGoal, def.Carbs); err != nil {
		return g, err
	}
	if g.Fat, err = readFloat(ctx, settings, domain.SettingFatGoal, def.Fat); err != nil {
		return g, err
	}
	return g, nil
}

func writeGoals(ctx context.Context, settings repository.SettingsRepo, g domain.Macros) error {
	for key, v := range map[string]float64{
		domain.SettingCalorieGoal: g.Calories,
		domain.SettingProteinGoal: g.Protein,
		domain.SettingCarbsGoal:   g.Carbs,
		domain.SettingFatGoal:     g.Fat,
	} {
		if err := settings.Put(ctx, key, v); err != nil {
			return err
		}
	}
	return nil
}

type settingsService struct {
	settings repository.SettingsRepo
	observer UseCaseObserver
}

func NewSettingsService(settings repository.SettingsRepo, observers ...UseCaseObserver) SettingsService {
	return &settingsService{settings: settings, observer: combineObservers(observers)}
}

func (s *settingsService) Get(ctx context.Context, key string) (any, bool, error) {
	var v any
	ok, err := s.settings.Get(ctx, key, &v)
	return v, ok, err
}

// Set stores value under key. The numeric settings must hold non-negative
// numbers; everything else is stored as given.
func (s *settingsService) Set(ctx context.Context, key string, value any) (err error) {
	defer finish(ctx, s.observer, "setting-set", time.Now(), map[string]any{"key": key}, &err)

	key = strings.TrimSpace(key)
	if key == "" {
		return invalidf("setting key is required")
	}
	if numericSetting(key) {
		n, ok := value.(float64)
		if !ok {
			return invalidf("%s must be a number, got %T", key, value)
		}
		if n < 0 {
			return invalidf("%s must not be negative", key)
		}
	}
	if err := s.settings.Put(ctx, key, value); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

func (s *settingsService) Delete(ctx context.Context, key string) error {
	return s.settings.Delete(ctx, key)
}

func (s *settingsService) Keys(ctx context.Context) ([]string, error) {
	return s.settings.Keys(ctx)
}

func numericSetting(key string) bool {
	switch key {
	case domain.SettingCalorieGoal, domain.SettingProteinGoal, domain.SettingCarbsGoal,
		domain.SettingFatGoal, domain.SettingHeight, domain.SettingWeight:
		return true
	}
	return false
}
