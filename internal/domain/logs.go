package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Calorie log origins, stored in CalorieLog.Type.
const (
	LogTypeAI         = "ai"
	LogTypeManual     = "manual"
	LogTypeSuggestion = "suggestion"
)

// CalorieLog is one food intake entry.
type CalorieLog struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
	Food      string    `json:"food"`
	Quantity  string    `json:"quantity"`
	Type      string    `json:"type,omitempty"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	Image     string    `json:"image,omitempty"`
}

// Macros returns the macro totals of this single entry.
func (l *CalorieLog) Macros() Macros {
	return Macros{Calories: l.Calories, Protein: l.Protein, Carbs: l.Carbs, Fat: l.Fat}
}

func (l *CalorieLog) Validate() error {
	if strings.TrimSpace(l.Food) == "" {
		return errors.New("food is required")
	}
	if l.Calories < 0 || l.Protein < 0 || l.Carbs < 0 || l.Fat < 0 {
		return fmt.Errorf("macros must be non-negative (%s)", l.Food)
	}
	if _, err := ParseDateKey(l.Date); err != nil {
		return fmt.Errorf("invalid date %q", l.Date)
	}
	return nil
}

// TrainingLog is one completed workout with a self-rating.
type TrainingLog struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Timestamp   time.Time `json:"timestamp"`
	Type        string    `json:"type"`
	Rating      int       `json:"rating"`
	DurationMin int       `json:"duration"`
	Notes       string    `json:"notes,omitempty"`
}

func (l *TrainingLog) Validate() error {
	if l.Rating < 1 || l.Rating > 10 {
		return fmt.Errorf("rating must be between 1 and 10, got %d", l.Rating)
	}
	if l.DurationMin <= 0 {
		return fmt.Errorf("duration must be positive, got %d", l.DurationMin)
	}
	if strings.TrimSpace(l.Type) == "" {
		return errors.New("training type is required")
	}
	if _, err := ParseDateKey(l.Date); err != nil {
		return fmt.Errorf("invalid date %q", l.Date)
	}
	return nil
}

// Macros is a calorie + macronutrient tuple, in kcal and grams.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add returns the element-wise sum of m and o.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fat:      m.Fat + o.Fat,
	}
}

// Remaining returns goal minus consumed, floored at zero per field.
func (m Macros) Remaining(consumed Macros) Macros {
	return Macros{
		Calories: floorZero(m.Calories - consumed.Calories),
		Protein:  floorZero(m.Protein - consumed.Protein),
		Carbs:    floorZero(m.Carbs - consumed.Carbs),
		Fat:      floorZero(m.Fat - consumed.Fat),
	}
}

// Get returns the value of a single metric.
func (m Macros) Get(metric Metric) float64 {
	switch metric {
	case MetricProtein:
		return m.Protein
	case MetricCarbs:
		return m.Carbs
	case MetricFat:
		return m.Fat
	default:
		return m.Calories
	}
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// SumMacros totals the macros of the given logs.
func SumMacros(logs []*CalorieLog) Macros {
	var total Macros
	for _, l := range logs {
		total = total.Add(l.Macros())
	}
	return total
}
