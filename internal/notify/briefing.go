package notify

import (
	"fmt"
	"html"
	"strings"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/planner"
)

// FormatBriefing renders the morning message for one day in Telegram HTML.
func FormatBriefing(day domain.ResolvedDay, goals domain.Macros, shopping []string) string {
	var b strings.Builder
	esc := html.EscapeString

	fmt.Fprintf(&b, "%s <b>%s</b> · %s\n", planner.IconGlyph(day.Icon), esc(day.Title), esc(planner.ThemeFor(day.Type).Label))
	if day.Overridden {
		b.WriteString("<i>Aangepast schema</i>\n")
	}
	if day.Details != "" {
		b.WriteString(esc(day.Details) + "\n")
	}

	n := day.Nutrition
	b.WriteString("\n<b>Voeding</b>\n")
	fmt.Fprintf(&b, "Ontbijt: %s\n", esc(n.Breakfast))
	fmt.Fprintf(&b, "Lunch: %s\n", esc(n.Lunch))
	fmt.Fprintf(&b, "Diner: %s\n", esc(n.Dinner))
	if n.HasSnack() {
		fmt.Fprintf(&b, "Snack: %s\n", esc(n.Snack))
	}
	if n.FamilyTip != "" {
		fmt.Fprintf(&b, "Tip: %s\n", esc(n.FamilyTip))
	}

	fmt.Fprintf(&b, "\nDoel: %.0f kcal · %.0fg eiwit · %.0fg koolh · %.0fg vet\n",
		goals.Calories, goals.Protein, goals.Carbs, goals.Fat)

	if len(shopping) > 0 {
		escaped := make([]string, len(shopping))
		for i, it := range shopping {
			escaped[i] = esc(it)
		}
		fmt.Fprintf(&b, "\n🛒 %s\n", strings.Join(escaped, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}
