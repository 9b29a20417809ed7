package intelligence

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeFood_TextAndImage(t *testing.T) {
	client := &mockLLMClient{response: "```json\n" +
		`{"food":" Boterham met kaas ","quantity":"2 sneetjes","calories":380,"protein":18,"carbs":40,"fat":16}` +
		"\n```"}
	svc := NewFoodService(client)

	a, err := svc.AnalyzeFood(context.Background(), "2 boterhammen met kaas", "data:image/jpeg;base64,AAA")

	require.NoError(t, err)
	assert.Equal(t, "Boterham met kaas", a.Food)
	assert.Equal(t, "2 sneetjes", a.Quantity)
	assert.Equal(t, domain.Macros{Calories: 380, Protein: 18, Carbs: 40, Fat: 16}, a.Macros())

	assert.Equal(t, llm.TaskFood, client.last.Task)
	assert.Equal(t, []string{"Food description / portion: 2 boterhammen met kaas"}, client.last.ExtraText)
	assert.Equal(t, []string{"data:image/jpeg;base64,AAA"}, client.last.Images)
}

func TestAnalyzeFood_ImageOnly(t *testing.T) {
	client := &mockLLMClient{response: `{"food":"Banaan","quantity":"1 stuk","calories":105,"protein":1,"carbs":27,"fat":0}`}
	svc := NewFoodService(client)

	_, err := svc.AnalyzeFood(context.Background(), "", "data:image/png;base64,BBB")

	require.NoError(t, err)
	assert.Empty(t, client.last.ExtraText)
	assert.Len(t, client.last.Images, 1)
}

func TestAnalyzeFood_EmptyInputSkipsGateway(t *testing.T) {
	client := &mockLLMClient{}
	svc := NewFoodService(client)

	_, err := svc.AnalyzeFood(context.Background(), "  ", "")

	assert.ErrorIs(t, err, ErrNothingToAnalyze)
	assert.Equal(t, 0, client.calls)
}

func TestAnalyzeFood_GatewayErrorPassesThrough(t *testing.T) {
	cfgErr := &llm.ConfigError{Setting: "openai_api_key", Err: llm.ErrMissingAPIKey}
	svc := NewFoodService(&mockLLMClient{err: cfgErr})

	_, err := svc.AnalyzeFood(context.Background(), "appel", "")

	var ce *llm.ConfigError
	assert.True(t, errors.As(err, &ce))
}

func TestAnalyzeFood_RejectsNegativeMacros(t *testing.T) {
	svc := NewFoodService(&mockLLMClient{response: `{"food":"x","calories":-1}`})

	_, err := svc.AnalyzeFood(context.Background(), "x", "")

	var pe *llm.ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestAnalyzeFood_Garbage(t *testing.T) {
	svc := NewFoodService(&mockLLMClient{response: "Ik zie geen eten op deze foto."})

	_, err := svc.AnalyzeFood(context.Background(), "", "data:image/png;base64,CCC")

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestSuggestMeal_NormalizesSourceAndScore(t *testing.T) {
	client := &mockLLMClient{response: `{
		"meal_name": "Kwark power bowl",
		"ingredients": [
			{"name":"Havermout","amount":60,"unit":"g","source":"pantry","macros":{"calories":220,"protein":8,"carbs":36,"fat":4}},
			{"name":"Magere kwark","amount":250,"unit":"g","source":"supermarket","macros":{"calories":140,"protein":22,"carbs":10,"fat":0}}
		],
		"match_score": "120"
	}`}
	svc := NewFoodService(client)

	meal, err := svc.SuggestMeal(context.Background(),
		domain.Macros{Calories: 400, Protein: 30, Carbs: 45, Fat: 5},
		[]string{"Havermout", "Banaan"})

	require.NoError(t, err)
	assert.Equal(t, "Kwark power bowl", meal.MealName)
	require.Len(t, meal.Ingredients, 2)
	assert.Equal(t, domain.SourcePantry, meal.Ingredients[0].Source)
	assert.Equal(t, domain.SourceStore, meal.Ingredients[1].Source)
	assert.Equal(t, Score(100), meal.MatchScore)
	assert.Equal(t, domain.Macros{Calories: 360, Protein: 30, Carbs: 46, Fat: 4}, meal.Totals())

	assert.Equal(t, llm.TaskMeal, client.last.Task)
	assert.Contains(t, client.last.UserPrompt, "Havermout, Banaan")
	assert.Contains(t, client.last.UserPrompt, "- Calories: 400")
	assert.Contains(t, client.last.UserPrompt, "within 10%")
}

func TestSuggestMeal_RequiresIngredients(t *testing.T) {
	svc := NewFoodService(&mockLLMClient{response: `{"meal_name":"Leeg","ingredients":[],"match_score":50}`})

	_, err := svc.SuggestMeal(context.Background(), domain.Macros{Calories: 300}, nil)

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestScore_Decoding(t *testing.T) {
	cases := []struct {
		raw  string
		want Score
	}{
		{`82`, 82},
		{`"82"`, 82},
		{`"82/100"`, 82},
		{`"65 %"`, 65},
	}
	for _, tc := range cases {
		var s Score
		require.NoError(t, s.UnmarshalJSON([]byte(tc.raw)), tc.raw)
		assert.Equal(t, tc.want, s, tc.raw)
	}

	var s Score
	assert.Error(t, s.UnmarshalJSON([]byte(`"hoog"`)))
}
