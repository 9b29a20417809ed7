package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a goal bar like [████░░░░] 45%. Unlike a task bar,
// the color flags overshoot: green up to 100%, yellow to 115%, red beyond.
// The percentage text is not clamped.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if width < 2 {
		width = 2
	}

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct > 1.15:
		style = StyleRed
	case pct > 1:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// Ratio is value/goal, zero when there is no goal.
func Ratio(value, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return value / goal
}
