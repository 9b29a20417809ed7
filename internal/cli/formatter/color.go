package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/planner"
	"github.com/charmbracelet/lipgloss"
)

// Palette shared with the activity themes in planner.
var (
	ColorGreen  = lipgloss.Color("#34d399")
	ColorYellow = lipgloss.Color("#fbbf24")
	ColorRed    = lipgloss.Color("#f87171")
	ColorBlue   = lipgloss.Color("#60a5fa")
	ColorPurple = lipgloss.Color("#a78bfa")
	ColorDim    = lipgloss.Color("#94a3b8")
	ColorFg     = lipgloss.Color("#f1f5f9")
	ColorHeader = lipgloss.Color("#fb923c")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ActivityStyle colors text with the theme accent of an activity type.
func ActivityStyle(t domain.ActivityType) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(planner.ThemeFor(t).Color))
}

// ActivityBadge renders an activity as "● Label" in its theme color.
func ActivityBadge(t domain.ActivityType) string {
	return ActivityStyle(t).Render("● " + planner.ThemeFor(t).Label)
}

// Header renders an uppercased title over a dim rule of the same width.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
