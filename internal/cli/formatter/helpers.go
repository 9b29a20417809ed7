package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

var dutchWeekdays = [...]string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"}

// Weekday returns the Dutch weekday name.
func Weekday(d time.Weekday) string {
	return dutchWeekdays[d]
}

// DayLabel renders "donderdag 26-02" for a date key, or the key itself when
// it does not parse.
func DayLabel(date string) string {
	t, err := domain.ParseDateKey(date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %s", Weekday(t.Weekday()), t.Format("02-01"))
}

// Kcal formats a calorie count without decimals.
func Kcal(v float64) string {
	return fmt.Sprintf("%.0f kcal", v)
}

// Grams formats a macro amount in whole grams.
func Grams(v float64) string {
	return fmt.Sprintf("%.0fg", v)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into a short human form.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h, m := min/60, min%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// Stars renders a 1-5 rating.
func Stars(rating int) string {
	rating = max(0, min(rating, 5))
	return StyleYellow.Render(strings.Repeat("★", rating)) + Dim(strings.Repeat("☆", 5-rating))
}
