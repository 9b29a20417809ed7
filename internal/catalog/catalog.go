// Package catalog holds the built-in data a fresh store is seeded with.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/alexanderramin/courtside/internal/domain"
	"gopkg.in/yaml.v3"
)

// SeedVersion is bumped whenever the seed contents change in a way existing
// stores should pick up.
const SeedVersion = 1

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the full set of seed records.
type Catalog struct {
	Recipes   []domain.Recipe         `yaml:"recipes"`
	Exercises []domain.Exercise       `yaml:"exercises"`
	Foods     []domain.FoodSuggestion `yaml:"foods"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return &c, nil
}

// MustLoad is Load for callers that treat a broken embedded catalog as a
// programming error.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultSettings are written only when the key is absent.
func DefaultSettings() map[string]any {
	return map[string]any{
		domain.SettingHabits:       domain.Habits{},
		domain.SettingShoppingList: []string{},
		domain.SettingUserStats:    domain.NewUserStats(),
		domain.SettingCalorieGoal:  domain.DefaultGoals().Calories,
		domain.SettingProteinGoal:  domain.DefaultGoals().Protein,
		domain.SettingCarbsGoal:    domain.DefaultGoals().Carbs,
		domain.SettingFatGoal:      domain.DefaultGoals().Fat,
	}
}

// StandardPantry is the fixed list of staples always shown under the
// shopping list.
var StandardPantry = []string{
	"Volkoren Pasta & Rijst",
	"Havermout & Wraps",
	"Noten & Pindakaas",
	"Diepvriesfruit & Groente",
}
