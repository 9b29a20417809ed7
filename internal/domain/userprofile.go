package domain

// UserProfile holds the body stats and daily targets used by the tracker and
// the AI prompts. Zero height/weight means "not entered yet".
type UserProfile struct {
	HeightCm float64 `json:"height"`
	WeightKg float64 `json:"weight"`
	Goals    Macros  `json:"goals"`
}

// DefaultGoals mirrors the tracker defaults used before any goal is saved.
func DefaultGoals() Macros {
	return Macros{Calories: 2500, Protein: 150, Carbs: 300, Fat: 80}
}

// HasBodyStats reports whether height and weight are both set.
func (p UserProfile) HasBodyStats() bool {
	return p.HeightCm > 0 && p.WeightKg > 0
}

// UserStats is the persisted gamification record.
type UserStats struct {
	XP          int    `json:"xp"`
	Level       int    `json:"level"`
	Streak      int    `json:"streak"`
	LastLogDate string `json:"lastLogDate,omitempty"`
}

// NewUserStats returns the initial stats record.
func NewUserStats() UserStats {
	return UserStats{Level: 1}
}
