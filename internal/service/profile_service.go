package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/gamification"
	"github.com/alexanderramin/courtside/internal/intelligence"
	"github.com/alexanderramin/courtside/internal/llm"
	"github.com/alexanderramin/courtside/internal/repository"
)

// coachLogLimit is how many recent food logs the coach sees.
const coachLogLimit = 20

// scheduleHorizonDays is the "next 7 days" window the AI prompts use.
const scheduleHorizonDays = 7

type profileService struct {
	settings repository.SettingsRepo
	calories repository.CalorieLogRepo
	plan     PlanService
	tracker  *gamification.Tracker
	coach    intelligence.CoachService
	keys     llm.KeySource
	observer UseCaseObserver
}

func NewProfileService(
	settings repository.SettingsRepo,
	calories repository.CalorieLogRepo,
	plan PlanService,
	tracker *gamification.Tracker,
	coach intelligence.CoachService,
	keys llm.KeySource,
	observers ...UseCaseObserver,
) ProfileService {
	return &profileService{
		settings: settings,
		calories: calories,
		plan:     plan,
		tracker:  tracker,
		coach:    coach,
		keys:     keys,
		observer: combineObservers(observers),
	}
}

func (s *profileService) Profile(ctx context.Context) (domain.UserProfile, error) {
	var p domain.UserProfile
	var err error
	if p.HeightCm, err = readFloat(ctx, s.settings, domain.SettingHeight, 0); err != nil {
		return p, err
	}
	if p.WeightKg, err = readFloat(ctx, s.settings, domain.SettingWeight, 0); err != nil {
		return p, err
	}
	if p.Goals, err = readGoals(ctx, s.settings); err != nil {
		return p, err
	}
	return p, nil
}

func (s *profileService) Goals(ctx context.Context) (domain.Macros, error) {
	return readGoals(ctx, s.settings)
}

func (s *profileService) SetGoals(ctx context.Context, goals domain.Macros) (err error) {
	defer finish(ctx, s.observer, "goals-set", time.Now(), nil, &err)

	if goals.Calories <= 0 {
		return invalidf("calorie goal must be positive")
	}
	if goals.Protein < 0 || goals.Carbs < 0 || goals.Fat < 0 {
		return invalidf("macro goals must not be negative")
	}
	return writeGoals(ctx, s.settings, goals)
}

func (s *profileService) SetBodyStats(ctx context.Context, heightCm, weightKg float64) error {
	if heightCm < 0 || weightKg < 0 {
		return invalidf("height and weight must not be negative")
	}
	if err := s.settings.Put(ctx, domain.SettingHeight, heightCm); err != nil {
		return err
	}
	return s.settings.Put(ctx, domain.SettingWeight, weightKg)
}

func (s *profileService) SetAPIKey(ctx context.Context, key string) error {
	return s.settings.Put(ctx, domain.SettingAPIKey, strings.TrimSpace(key))
}

func (s *profileService) HasAPIKey(ctx context.Context) (bool, error) {
	key, err := s.keys.APIKey(ctx)
	if err != nil {
		return false, err
	}
	return key != "", nil
}

func (s *profileService) GenerateGoals(ctx context.Context) (goals *domain.Macros, err error) {
	defer finish(ctx, s.observer, "goals-generate", time.Now(), nil, &err)

	profile, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if !profile.HasBodyStats() {
		return nil, invalidf("enter height and weight before generating goals")
	}
	days, err := s.plan.Upcoming(ctx, scheduleHorizonDays)
	if err != nil {
		return nil, err
	}

	goals, err = s.coach.Goals(ctx, intelligence.StatsFromProfile(profile), intelligence.ScheduleFromDays(days))
	if err != nil {
		return nil, err
	}
	if err := writeGoals(ctx, s.settings, *goals); err != nil {
		return nil, fmt.Errorf("saving generated goals: %w", err)
	}
	return goals, nil
}

func (s *profileService) CoachFeedback(ctx context.Context) (fb *intelligence.CoachFeedback, err error) {
	fields := map[string]any{}
	defer finish(ctx, s.observer, "coach-feedback", time.Now(), fields, &err)

	profile, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.calories.ListRecent(ctx, coachLogLimit)
	if err != nil {
		return nil, err
	}
	fields["log_count"] = len(logs)
	days, err := s.plan.Upcoming(ctx, scheduleHorizonDays)
	if err != nil {
		return nil, err
	}
	return s.coach.Feedback(ctx, logs, intelligence.StatsFromProfile(profile), intelligence.ScheduleFromDays(days))
}

func (s *profileService) Stats(ctx context.Context) (domain.UserStats, gamification.LevelInfo, error) {
	return s.tracker.Stats(ctx)
}

func (s *profileService) Habits(ctx context.Context) (domain.Habits, error) {
	var h domain.Habits
	if _, err := s.settings.Get(ctx, domain.SettingHabits, &h); err != nil {
		return h, err
	}
	return h, nil
}

func (s *profileService) ToggleHabit(ctx context.Context, name string) (res *HabitResult, err error) {
	defer finish(ctx, s.observer, "habit-toggle", time.Now(), map[string]any{"habit": name}, &err)

	h, err := s.Habits(ctx)
	if err != nil {
		return nil, err
	}
	key := strings.ToLower(strings.TrimSpace(name))
	checked, ok := h.Toggle(key)
	if !ok {
		return nil, invalidf("unknown habit %q (want one of %s)", name, strings.Join(domain.HabitNames, ", "))
	}
	// XP once per habit per day; unchecking and rechecking earns nothing.
	rewarded := checked && h.ClaimReward(key, s.tracker.Today())
	if err := s.settings.Put(ctx, domain.SettingHabits, h); err != nil {
		return nil, err
	}

	res = &HabitResult{Habits: h, Checked: checked}
	if rewarded {
		award, err := s.tracker.Record(ctx, gamification.XPHabit)
		if err != nil {
			return nil, fmt.Errorf("habit saved, awarding xp: %w", err)
		}
		res.Award = &award
	}
	return res, nil
}

func (s *profileService) ShoppingList(ctx context.Context) ([]string, error) {
	items := []string{}
	if _, err := s.settings.Get(ctx, domain.SettingShoppingList, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddShoppingItems appends items, skipping blanks and case-insensitive
// duplicates.
func (s *profileService) AddShoppingItems(ctx context.Context, items ...string) ([]string, error) {
	list, err := s.ShoppingList(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(list))
	for _, it := range list {
		seen[strings.ToLower(it)] = true
	}
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" || seen[strings.ToLower(it)] {
			continue
		}
		seen[strings.ToLower(it)] = true
		list = append(list, it)
	}
	if err := s.settings.Put(ctx, domain.SettingShoppingList, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *profileService) RemoveShoppingItem(ctx context.Context, item string) ([]string, error) {
	list, err := s.ShoppingList(ctx)
	if err != nil {
		return nil, err
	}
	for i, it := range list {
		if strings.EqualFold(it, strings.TrimSpace(item)) {
			list = append(list[:i], list[i+1:]...)
			if err := s.settings.Put(ctx, domain.SettingShoppingList, list); err != nil {
				return nil, err
			}
			return list, nil
		}
	}
	return nil, fmt.Errorf("shopping item %q: %w", item, repository.ErrNotFound)
}

func (s *profileService) ClearShoppingList(ctx context.Context) error {
	return s.settings.Put(ctx, domain.SettingShoppingList, []string{})
}
