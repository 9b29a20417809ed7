package intelligence

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/courtside/internal/domain"
)

// ScheduleDay is the flattened view of one resolved day that prompts see.
type ScheduleDay struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Details string `json:"details,omitempty"`
}

// ScheduleFromDays converts resolved days into prompt context.
func ScheduleFromDays(days []domain.ResolvedDay) []ScheduleDay {
	out := make([]ScheduleDay, 0, len(days))
	for _, d := range days {
		out = append(out, ScheduleDay{
			Date:    d.Date,
			Weekday: d.Weekday.String(),
			Type:    string(d.Type),
			Title:   d.Title,
			Details: d.Details,
		})
	}
	return out
}

// BodyStats carries height and weight as prompt strings. Missing values
// become "Unknown" so the model knows they were not provided.
type BodyStats struct {
	Height string `json:"height"`
	Weight string `json:"weight"`
}

// StatsFromProfile formats a profile's body stats for prompts.
func StatsFromProfile(p domain.UserProfile) BodyStats {
	return BodyStats{Height: formatStat(p.HeightCm), Weight: formatStat(p.WeightKg)}
}

func formatStat(v float64) string {
	if v <= 0 {
		return "Unknown"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// logLine is a calorie log without the photo, which would only inflate
// the prompt.
type logLine struct {
	Date     string  `json:"date"`
	Food     string  `json:"food"`
	Quantity string  `json:"quantity,omitempty"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func compactLogs(logs []*domain.CalorieLog) []logLine {
	out := make([]logLine, 0, len(logs))
	for _, l := range logs {
		out = append(out, logLine{
			Date:     l.Date,
			Food:     l.Food,
			Quantity: l.Quantity,
			Calories: l.Calories,
			Protein:  l.Protein,
			Carbs:    l.Carbs,
			Fat:      l.Fat,
		})
	}
	return out
}

// nutritionLines renders logs as "<qty> <food> (<kcal>kcal, P:..g, C:..g, F:..g)".
func nutritionLines(logs []*domain.CalorieLog) []string {
	out := make([]string, 0, len(logs))
	for _, l := range logs {
		out = append(out, fmt.Sprintf("%s %s (%gkcal, P:%gg, C:%gg, F:%gg)",
			l.Quantity, l.Food, l.Calories, l.Protein, l.Carbs, l.Fat))
	}
	return out
}
