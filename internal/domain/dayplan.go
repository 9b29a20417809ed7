package domain

import "time"

// DayPlan is the activity descriptor for a single calendar day.
type DayPlan struct {
	Type    ActivityType `json:"type" yaml:"type"`
	Title   string       `json:"title" yaml:"title"`
	Details string       `json:"details" yaml:"details"`
	Icon    Icon         `json:"icon" yaml:"icon"`
}

// OverrideEntry is a date-specific plan that supersedes the weekday default.
type OverrideEntry struct {
	Date string `json:"date"`
	DayPlan
}

// NutritionPlan is meal guidance for one day. Snack is optional.
type NutritionPlan struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snack     string `json:"snack,omitempty"`
	FamilyTip string `json:"familyTip"`
}

// HasSnack reports whether the plan carries snack guidance.
func (n NutritionPlan) HasSnack() bool {
	return n.Snack != ""
}

// ResolvedDay is a DayPlan merged with its nutrition guidance.
type ResolvedDay struct {
	Date       string        `json:"date"`
	Weekday    time.Weekday  `json:"weekday"`
	Overridden bool          `json:"overridden"`
	DayPlan
	Nutrition NutritionPlan `json:"nutrition"`
}
