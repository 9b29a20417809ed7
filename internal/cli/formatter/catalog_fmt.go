package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/courtside/internal/domain"
)

func FormatRecipeList(recipes []*domain.Recipe) string {
	if len(recipes) == 0 {
		return Dim("Geen recepten.")
	}
	rows := make([][]string, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, []string{fmt.Sprint(r.ID), Bold(r.Title), r.Time, StylePurple.Render(strings.Join(r.Tags, ", "))})
	}
	return RenderTable([]string{"ID", "RECEPT", "TIJD", "TAGS"}, rows)
}

func FormatRecipe(r *domain.Recipe) string {
	var b strings.Builder
	if r.Time != "" || len(r.Tags) > 0 {
		fmt.Fprintf(&b, "%s  %s\n\n", Dim(r.Time), StylePurple.Render(strings.Join(r.Tags, " · ")))
	}
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "%s %s\n", StyleBlue.Render("•"), ing)
	}
	if r.Instructions != "" {
		fmt.Fprintf(&b, "\n%s", r.Instructions)
	}
	return RenderBox(r.Title, strings.TrimRight(b.String(), "\n"))
}

// FormatCircuit renders the strength circuit as numbered stations.
func FormatCircuit(exercises []*domain.Exercise) string {
	if len(exercises) == 0 {
		return Dim("Geen oefeningen.")
	}
	var b strings.Builder
	for i, e := range exercises {
		fmt.Fprintf(&b, "%s %s %s\n", StyleHeader.Render(fmt.Sprintf("%d.", i+1)), Bold(e.Title), StyleYellow.Render(e.Reps))
		if e.Desc != "" {
			fmt.Fprintf(&b, "   %s\n", Dim(e.Desc))
		}
	}
	return RenderBox("Krachtcircuit", strings.TrimRight(b.String(), "\n"))
}

// FormatShoppingList renders a numbered list.
func FormatShoppingList(items []string) string {
	if len(items) == 0 {
		return Dim("Boodschappenlijst is leeg.")
	}
	var b strings.Builder
	for i, it := range items {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%2d.", i+1)), it)
	}
	return strings.TrimRight(b.String(), "\n")
}
