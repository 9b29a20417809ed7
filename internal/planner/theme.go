package planner

import "github.com/alexanderramin/courtside/internal/domain"

// Theme is the display label and accent colour for an activity type.
type Theme struct {
	Label string
	Color string
}

// ThemeFor maps an activity type to its display theme. Unknown types use the
// rest theme.
func ThemeFor(t domain.ActivityType) Theme {
	switch t {
	case domain.ActivityMatch:
		return Theme{Label: "Wedstrijd", Color: "#f87171"}
	case domain.ActivityTraining:
		return Theme{Label: "Training", Color: "#60a5fa"}
	case domain.ActivitySleep:
		return Theme{Label: "Slaap", Color: "#a78bfa"}
	case domain.ActivityStrength:
		return Theme{Label: "Kracht", Color: "#fb923c"}
	case domain.ActivityPower:
		return Theme{Label: "Power", Color: "#fbbf24"}
	default:
		return Theme{Label: "Rust", Color: "#94a3b8"}
	}
}

// IconGlyph returns a terminal-friendly glyph for an icon name.
func IconGlyph(icon domain.Icon) string {
	switch icon {
	case domain.IconTrophy:
		return "🏆"
	case domain.IconVolleyball:
		return "🏐"
	case domain.IconMoon:
		return "🌙"
	case domain.IconDumbbell:
		return "🏋"
	case domain.IconZap:
		return "⚡"
	case domain.IconCoffee:
		return "☕"
	default:
		return "ℹ"
	}
}
