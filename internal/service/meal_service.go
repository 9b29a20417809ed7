package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/gamification"
	"github.com/alexanderramin/courtside/internal/intelligence"
	"github.com/alexanderramin/courtside/internal/repository"
	"github.com/google/uuid"
)

const (
	// pantryMinHistory is the number of distinct logged foods below which the
	// pantry is topped up from the food dictionary.
	pantryMinHistory = 5
	pantryLimit      = 20
)

type mealService struct {
	logs        repository.CalorieLogRepo
	suggestions repository.FoodSuggestionRepo
	foodLogs    FoodLogService
	food        intelligence.FoodService
	tracker     *gamification.Tracker
	clock       Clock
	observer    UseCaseObserver
}

func NewMealService(
	logs repository.CalorieLogRepo,
	suggestions repository.FoodSuggestionRepo,
	foodLogs FoodLogService,
	food intelligence.FoodService,
	tracker *gamification.Tracker,
	clock Clock,
	observers ...UseCaseObserver,
) MealService {
	return &mealService{
		logs:        logs,
		suggestions: suggestions,
		foodLogs:    foodLogs,
		food:        food,
		tracker:     tracker,
		clock:       clock,
		observer:    combineObservers(observers),
	}
}

// Pantry ranks logged foods by how often they were logged. With fewer than
// five distinct foods it appends the dictionary names, then keeps the top 20.
func (s *mealService) Pantry(ctx context.Context) ([]string, error) {
	counts, err := s.logs.FoodFrequencies(ctx)
	if err != nil {
		return nil, err
	}
	pantry := make([]string, 0, len(counts))
	seen := make(map[string]bool, len(counts))
	for _, c := range counts {
		if !seen[c.Food] {
			seen[c.Food] = true
			pantry = append(pantry, c.Food)
		}
	}

	if len(pantry) < pantryMinHistory {
		defaults, err := s.suggestions.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, f := range defaults {
			if !seen[f.Name] {
				seen[f.Name] = true
				pantry = append(pantry, f.Name)
			}
		}
	}

	if len(pantry) > pantryLimit {
		pantry = pantry[:pantryLimit]
	}
	return pantry, nil
}

func (s *mealService) Suggest(ctx context.Context, date string) (plan *MealPlan, err error) {
	fields := map[string]any{}
	defer finish(ctx, s.observer, "meal-suggest", time.Now(), fields, &err)

	summary, err := s.foodLogs.Summary(ctx, date)
	if err != nil {
		return nil, err
	}
	pantry, err := s.Pantry(ctx)
	if err != nil {
		return nil, err
	}
	fields["pantry_size"] = len(pantry)

	meal, err := s.food.SuggestMeal(ctx, summary.Remaining, pantry)
	if err != nil {
		return nil, err
	}
	fields["match_score"] = float64(meal.MatchScore)
	return &MealPlan{
		Date:       summary.Date,
		Remaining:  summary.Remaining,
		Pantry:     pantry,
		Suggestion: meal,
	}, nil
}

// Accept writes one calorie log per ingredient without a transaction. XP
// is awarded once, for the meal.
func (s *mealService) Accept(ctx context.Context, meal *intelligence.MealSuggestion) (res *AcceptResult, err error) {
	fields := map[string]any{}
	defer finish(ctx, s.observer, "meal-accept", time.Now(), fields, &err)

	if meal == nil || len(meal.Ingredients) == 0 {
		return nil, invalidf("meal has no ingredients")
	}

	now := s.clock.Now()
	res = &AcceptResult{}
	for i, ing := range meal.Ingredients {
		log := &domain.CalorieLog{
			ID:        uuid.New().String(),
			Date:      domain.DateKey(now),
			Timestamp: now.Add(time.Duration(i) * time.Millisecond),
			Food:      strings.TrimSpace(ing.Name),
			Quantity:  ingredientQuantity(ing),
			Type:      domain.LogTypeSuggestion,
			Calories:  ing.Macros.Calories,
			Protein:   ing.Macros.Protein,
			Carbs:     ing.Macros.Carbs,
			Fat:       ing.Macros.Fat,
		}
		if err := log.Validate(); err != nil {
			fields["written"] = len(res.Logs)
			return res, invalid(fmt.Errorf("ingredient %d: %w", i+1, err))
		}
		if err := s.logs.Put(ctx, log); err != nil {
			fields["written"] = len(res.Logs)
			return res, fmt.Errorf("logging ingredient %q (%d of %d written): %w",
				ing.Name, len(res.Logs), len(meal.Ingredients), err)
		}
		res.Logs = append(res.Logs, log)
	}
	fields["written"] = len(res.Logs)

	award, err := s.tracker.Record(ctx, gamification.XPFoodLog)
	if err != nil {
		return res, fmt.Errorf("meal logged, awarding xp: %w", err)
	}
	res.Award = award
	return res, nil
}

func ingredientQuantity(ing intelligence.MealIngredient) string {
	if ing.Amount <= 0 {
		return strings.TrimSpace(ing.Unit)
	}
	return strings.TrimSpace(strconv.FormatFloat(ing.Amount, 'f', -1, 64) + " " + ing.Unit)
}
