package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/planner"
)

// FormatDay renders one resolved day as a titled box with its meals.
func FormatDay(day domain.ResolvedDay) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s  %s\n", planner.IconGlyph(day.Icon), Bold(day.Title), ActivityBadge(day.Type))
	if day.Overridden {
		b.WriteString(StylePurple.Render("aangepast schema") + "\n")
	}
	if day.Details != "" {
		b.WriteString(Dim(day.Details) + "\n")
	}

	n := day.Nutrition
	b.WriteString("\n")
	rows := [][2]string{{"Ontbijt", n.Breakfast}, {"Lunch", n.Lunch}, {"Diner", n.Dinner}}
	if n.HasSnack() {
		rows = append(rows, [2]string{"Snack", n.Snack})
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", StyleBlue.Render(fmt.Sprintf("%-8s", r[0])), r[1])
	}
	if n.FamilyTip != "" {
		fmt.Fprintf(&b, "\n%s %s", StyleYellow.Render("Tip"), n.FamilyTip)
	}

	return RenderBox(DayLabel(day.Date), strings.TrimRight(b.String(), "\n"))
}

// FormatWeek renders days as a table, marking today.
func FormatWeek(days []domain.ResolvedDay, today string) string {
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		label := DayLabel(d.Date)
		if d.Date == today {
			label = StyleHeader.Render(label + " ◀")
		}
		title := d.Title
		if d.Overridden {
			title += StylePurple.Render(" *")
		}
		rows = append(rows, []string{label, ActivityBadge(d.Type), title, Dim(d.Nutrition.Dinner)})
	}
	return RenderTable([]string{"DAG", "TYPE", "ACTIVITEIT", "DINER"}, rows)
}

// FormatOverrides lists stored overrides in date order.
func FormatOverrides(entries []domain.OverrideEntry) string {
	if len(entries) == 0 {
		return Dim("Geen aanpassingen op het schema.")
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Date, ActivityBadge(e.Type), e.Title, Dim(e.Details)})
	}
	return RenderTable([]string{"DATUM", "TYPE", "TITEL", "DETAILS"}, rows)
}
