package intelligence

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/courtside/internal/domain"
)

// ErrNothingToAnalyze is returned when a food analysis has neither text nor image.
var ErrNothingToAnalyze = errors.New("provide a description or a photo")

// FoodAnalysis is the model's estimate for one food entry.
type FoodAnalysis struct {
	Food     string  `json:"food"`
	Quantity string  `json:"quantity"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (a FoodAnalysis) Macros() domain.Macros {
	return domain.Macros{Calories: a.Calories, Protein: a.Protein, Carbs: a.Carbs, Fat: a.Fat}
}

func validateFoodAnalysis(a FoodAnalysis) error {
	if strings.TrimSpace(a.Food) == "" {
		return errors.New("food name is empty")
	}
	return validateMacros(a.Macros())
}

// CoachFeedback holds the weekly coaching bullets.
type CoachFeedback struct {
	Feedback []string `json:"feedback"`
}

func validateCoachFeedback(c CoachFeedback) error {
	for _, b := range c.Feedback {
		if strings.TrimSpace(b) != "" {
			return nil
		}
	}
	return errors.New("feedback has no bullets")
}

func validateGoals(m domain.Macros) error {
	if m.Calories <= 0 {
		return fmt.Errorf("calorie goal must be positive, got %g", m.Calories)
	}
	return validateMacros(m)
}

// ProgressAnalysis is the 30-day review.
type ProgressAnalysis struct {
	Summary string   `json:"summary"`
	Tips    []string `json:"tips"`
}

func validateProgress(p ProgressAnalysis) error {
	if strings.TrimSpace(p.Summary) == "" {
		return errors.New("summary is empty")
	}
	return nil
}

// MealIngredient is one line of a suggested meal.
type MealIngredient struct {
	Name   string                  `json:"name"`
	Amount float64                 `json:"amount"`
	Unit   string                  `json:"unit"`
	Source domain.IngredientSource `json:"source"`
	Macros domain.Macros           `json:"macros"`
}

// MealSuggestion is a meal composed to fill the remaining macros.
type MealSuggestion struct {
	MealName    string           `json:"meal_name"`
	Ingredients []MealIngredient `json:"ingredients"`
	MatchScore  Score            `json:"match_score"`
}

// Totals sums the macros of every ingredient.
func (m MealSuggestion) Totals() domain.Macros {
	var total domain.Macros
	for _, ing := range m.Ingredients {
		total = total.Add(ing.Macros)
	}
	return total
}

func validateMeal(m MealSuggestion) error {
	if strings.TrimSpace(m.MealName) == "" {
		return errors.New("meal_name is empty")
	}
	if len(m.Ingredients) == 0 {
		return errors.New("meal has no ingredients")
	}
	for i, ing := range m.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			return fmt.Errorf("ingredient %d has no name", i)
		}
		if err := validateMacros(ing.Macros); err != nil {
			return fmt.Errorf("ingredient %q: %w", ing.Name, err)
		}
	}
	return nil
}

// normalizeMeal fills in what the model tends to get loosely right: an
// unknown source becomes store and the score is clamped to 0..100.
func normalizeMeal(m MealSuggestion) MealSuggestion {
	for i := range m.Ingredients {
		if m.Ingredients[i].Source != domain.SourcePantry {
			m.Ingredients[i].Source = domain.SourceStore
		}
	}
	m.MatchScore = m.MatchScore.clamp()
	return m
}

// FuelInsight correlates one workout with the preceding day of nutrition.
type FuelInsight struct {
	Score          Score  `json:"score"`
	Insight        string `json:"insight"`
	Recommendation string `json:"recommendation"`
}

func validateFuel(f FuelInsight) error {
	if strings.TrimSpace(f.Insight) == "" {
		return errors.New("insight is empty")
	}
	return nil
}

func validateMacros(m domain.Macros) error {
	if m.Calories < 0 || m.Protein < 0 || m.Carbs < 0 || m.Fat < 0 {
		return fmt.Errorf("macros must be non-negative: %+v", m)
	}
	return nil
}

// Score is a 0..100 rating. Models return it as a number or a numeric
// string ("82", "82/100"), so both decode.
type Score float64

func (s *Score) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*s = Score(n)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("score: %w", err)
	}
	str = strings.TrimSpace(str)
	if i := strings.IndexAny(str, "/% "); i >= 0 {
		str = str[:i]
	}
	n, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return fmt.Errorf("score %q is not numeric", str)
	}
	*s = Score(n)
	return nil
}

func (s Score) clamp() Score {
	switch {
	case s < 0:
		return 0
	case s > 100:
		return 100
	}
	return s
}
