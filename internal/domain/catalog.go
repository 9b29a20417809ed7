package domain

type Recipe struct {
	ID           int64    `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Tags         []string `json:"tags" yaml:"tags"`
	Time         string   `json:"time" yaml:"time"`
	Ingredients  []string `json:"ingredients" yaml:"ingredients"`
	Instructions string   `json:"instructions" yaml:"instructions"`
}

// Exercise is one station of the home strength circuit.
type Exercise struct {
	ID    int64  `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Reps  string `json:"reps" yaml:"reps"`
	Desc  string `json:"desc" yaml:"desc"`
}

// FoodSuggestion is an autocomplete dictionary entry with per-portion macros.
type FoodSuggestion struct {
	Name     string  `json:"name" yaml:"name"`
	Quantity string  `json:"quantity" yaml:"quantity"`
	Calories float64 `json:"calories" yaml:"calories"`
	Protein  float64 `json:"protein" yaml:"protein"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
	Fat      float64 `json:"fat" yaml:"fat"`
}

// Habits are the daily checkboxes on the home screen.
type Habits struct {
	Water   bool `json:"water"`
	Fruit   bool `json:"fruit"`
	Veggies bool `json:"veggies"`
	Protein bool `json:"protein"`
	// Rewarded maps a habit to the last day its check earned XP.
	Rewarded map[string]string `json:"rewarded,omitempty"`
}

// ClaimReward records that name earned XP on day. It reports false when
// the habit was already rewarded that day.
func (h *Habits) ClaimReward(name, day string) bool {
	if h.Rewarded[name] == day {
		return false
	}
	if h.Rewarded == nil {
		h.Rewarded = map[string]string{}
	}
	h.Rewarded[name] = day
	return true
}

// Toggle flips the named habit and reports its new state.
// Unknown names return ok=false.
func (h *Habits) Toggle(name string) (checked bool, ok bool) {
	switch name {
	case "water":
		h.Water = !h.Water
		return h.Water, true
	case "fruit":
		h.Fruit = !h.Fruit
		return h.Fruit, true
	case "veggies":
		h.Veggies = !h.Veggies
		return h.Veggies, true
	case "protein":
		h.Protein = !h.Protein
		return h.Protein, true
	default:
		return false, false
	}
}

// HabitNames lists the habit keys in display order.
var HabitNames = []string{"water", "fruit", "veggies", "protein"}
