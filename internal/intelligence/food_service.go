package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/llm"
)

// FoodService turns food descriptions and photos into macro estimates and
// composes meals for what is left of the day.
type FoodService interface {
	// AnalyzeFood estimates one entry from a description, a photo, or both.
	AnalyzeFood(ctx context.Context, text, image string) (*FoodAnalysis, error)

	// SuggestMeal composes a meal that fills remaining from the pantry first.
	SuggestMeal(ctx context.Context, remaining domain.Macros, pantry []string) (*MealSuggestion, error)
}

type foodService struct {
	client llm.LLMClient
}

// NewFoodService creates a FoodService backed by an LLM client.
func NewFoodService(client llm.LLMClient) FoodService {
	return &foodService{client: client}
}

func (s *foodService) AnalyzeFood(ctx context.Context, text, image string) (*FoodAnalysis, error) {
	text = strings.TrimSpace(text)
	image = strings.TrimSpace(image)
	if text == "" && image == "" {
		return nil, ErrNothingToAnalyze
	}

	req := llm.GenerateRequest{Task: llm.TaskFood, UserPrompt: foodPrompt}
	if text != "" {
		req.ExtraText = []string{foodDescriptionPrefix + text}
	}
	if image != "" {
		req.Images = []string{image}
	}

	analysis, err := generate(ctx, s.client, req, validateFoodAnalysis)
	if err != nil {
		return nil, err
	}
	analysis.Food = strings.TrimSpace(analysis.Food)
	analysis.Quantity = strings.TrimSpace(analysis.Quantity)
	return &analysis, nil
}

func (s *foodService) SuggestMeal(ctx context.Context, remaining domain.Macros, pantry []string) (*MealSuggestion, error) {
	prompt := fmt.Sprintf(mealPrompt,
		remaining.Calories, remaining.Protein, remaining.Carbs, remaining.Fat,
		strings.Join(pantry, ", "))

	meal, err := generate(ctx, s.client, llm.GenerateRequest{
		Task:       llm.TaskMeal,
		UserPrompt: prompt,
	}, validateMeal)
	if err != nil {
		return nil, err
	}
	meal = normalizeMeal(meal)
	return &meal, nil
}
