package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMacros struct {
	Food     string  `json:"food"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"food":"Kwark","calories":120,"protein":18}`
	result, err := ExtractJSON[testMacros](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Kwark", result.Food)
	assert.Equal(t, 120.0, result.Calories)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"food\":\"Boterham met kaas\",\"calories\":190,\"protein\":9}\n```"
	result, err := ExtractJSON[testMacros](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Boterham met kaas", result.Food)
	assert.Equal(t, 9.0, result.Protein)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Hier is de analyse:\n{\"food\":\"Banaan\",\"calories\":105,\"protein\":1.3}\nEet smakelijk!"
	result, err := ExtractJSON[testMacros](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Banaan", result.Food)
}

func TestExtractJSON_NestedObjects(t *testing.T) {
	type ingredient struct {
		Name   string     `json:"name"`
		Macros testMacros `json:"macros"`
	}
	type meal struct {
		MealName    string       `json:"meal_name"`
		Ingredients []ingredient `json:"ingredients"`
	}
	raw := `{"meal_name":"Power bowl","ingredients":[{"name":"Rijst","macros":{"calories":200}}]}`
	result, err := ExtractJSON[meal](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Power bowl", result.MealName)
	require.Len(t, result.Ingredients, 1)
	assert.Equal(t, 200.0, result.Ingredients[0].Macros.Calories)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"food":"Wrap {kip}","calories":350,"protein":25}`
	result, err := ExtractJSON[testMacros](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Wrap {kip}", result.Food)
}

func TestExtractJSON_CommentsAndLeadingDecimals(t *testing.T) {
	raw := "{\n  \"food\": \"Appel\", // schatting\n  \"calories\": 52,\n  \"protein\": .3\n}"
	result, err := ExtractJSON[testMacros](raw, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, result.Protein, 1e-9)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	raw := "Sorry, ik kan deze foto niet beoordelen."
	_, err := ExtractJSON[testMacros](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, raw, pe.Raw)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	raw := `{"food":"Pasta", broken}`
	_, err := ExtractJSON[testMacros](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidationFailure(t *testing.T) {
	raw := `{"food":"Pasta","calories":-5,"protein":10}`
	validator := func(m testMacros) error {
		if m.Calories < 0 {
			return errors.New("calories must not be negative")
		}
		return nil
	}
	_, err := ExtractJSON(raw, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestExtractJSON_MultipleFences(t *testing.T) {
	raw := "Tekst\n```\n{\"food\":\"Ei\",\"calories\":78,\"protein\":6}\n```\nMeer tekst"
	result, err := ExtractJSON[testMacros](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ei", result.Food)
}
