package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/gamification"
	"github.com/alexanderramin/courtside/internal/intelligence"
	"github.com/alexanderramin/courtside/internal/service"
)

const macroBarWidth = 16

// FormatDaySummary renders the logs of a day followed by goal bars and advice.
func FormatDaySummary(sum *service.DaySummary) string {
	var b strings.Builder
	b.WriteString(Header("Voeding " + DayLabel(sum.Date)))
	b.WriteString("\n")

	if len(sum.Logs) == 0 {
		b.WriteString(Dim("Nog niets gelogd.") + "\n")
	} else {
		rows := make([][]string, 0, len(sum.Logs))
		for _, l := range sum.Logs {
			rows = append(rows, []string{
				TruncID(l.ID),
				l.Timestamp.Format("15:04"),
				l.Food,
				Dim(l.Quantity),
				Kcal(l.Calories),
				fmt.Sprintf("E %s  K %s  V %s", Grams(l.Protein), Grams(l.Carbs), Grams(l.Fat)),
			})
		}
		b.WriteString(RenderTable([]string{"ID", "TIJD", "VOEDING", "PORTIE", "KCAL", "MACRO'S"}, rows))
	}

	b.WriteString("\n")
	b.WriteString(FormatMacroBars(sum.Totals, sum.Goals))
	fmt.Fprintf(&b, "\n%s %s\n", Dim("Nog over:"), formatMacros(sum.Remaining))

	for _, tip := range sum.Advice {
		fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render("!"), tip)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatMacroBars renders one progress bar per macro against its goal.
func FormatMacroBars(totals, goals domain.Macros) string {
	lines := []struct {
		name        string
		value, goal float64
		unit        func(float64) string
	}{
		{"Calorieën", totals.Calories, goals.Calories, Kcal},
		{"Eiwit", totals.Protein, goals.Protein, Grams},
		{"Koolh.", totals.Carbs, goals.Carbs, Grams},
		{"Vet", totals.Fat, goals.Fat, Grams},
	}
	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "%-10s %s %s\n", l.name,
			RenderProgress(Ratio(l.value, l.goal), macroBarWidth),
			Dim(fmt.Sprintf("%s / %s", l.unit(l.value), l.unit(l.goal))))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatMacros(m domain.Macros) string {
	return fmt.Sprintf("%s · %s eiwit · %s koolh · %s vet", Kcal(m.Calories), Grams(m.Protein), Grams(m.Carbs), Grams(m.Fat))
}

// FormatLogged confirms a saved entry and its XP.
func FormatLogged(log *domain.CalorieLog, award gamification.Award) string {
	return fmt.Sprintf("%s %s (%s) %s\n%s",
		StyleGreen.Render("✔"), Bold(log.Food), log.Quantity, formatMacros(log.Macros()), FormatAward(award))
}

// FormatAward renders the XP line after a write.
func FormatAward(a gamification.Award) string {
	line := Dim(fmt.Sprintf("XP %d · level %d · streak %d", a.Stats.XP, a.Level.Level, a.Stats.Streak))
	if a.LeveledUp {
		line += "  " + StyleYellow.Render(fmt.Sprintf("Level up! %d → %d", a.PreviousLevel, a.Level.Level))
	}
	return line
}

// FormatMatches renders search results; history entries are marked.
func FormatMatches(matches []service.FoodMatch) string {
	if len(matches) == 0 {
		return Dim("Geen resultaten.")
	}
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		src := Dim("lijst")
		if m.FromHistory {
			src = StyleBlue.Render("eerder")
		}
		rows = append(rows, []string{m.Name, Dim(m.Quantity), Kcal(m.Macros.Calories),
			fmt.Sprintf("E %s  K %s  V %s", Grams(m.Macros.Protein), Grams(m.Macros.Carbs), Grams(m.Macros.Fat)), src})
	}
	return RenderTable([]string{"VOEDING", "PORTIE", "KCAL", "MACRO'S", "BRON"}, rows)
}

// FormatMealPlan renders a meal suggestion with the pantry it drew from.
func FormatMealPlan(plan *service.MealPlan) string {
	var b strings.Builder
	meal := plan.Suggestion
	fmt.Fprintf(&b, "%s  %s\n", Bold(meal.MealName), Dim(fmt.Sprintf("match %.0f%%", float64(meal.MatchScore))))
	fmt.Fprintf(&b, "%s %s\n\n", Dim("Nog over vandaag:"), formatMacros(plan.Remaining))

	rows := make([][]string, 0, len(meal.Ingredients))
	for _, ing := range meal.Ingredients {
		src := StyleYellow.Render("winkel")
		if ing.Source == domain.SourcePantry {
			src = StyleGreen.Render("voorraad")
		}
		rows = append(rows, []string{ing.Name, fmt.Sprintf("%g %s", ing.Amount, ing.Unit), Kcal(ing.Macros.Calories), src})
	}
	b.WriteString(RenderTable([]string{"INGREDIËNT", "HOEVEELHEID", "KCAL", "BRON"}, rows))
	fmt.Fprintf(&b, "\n%s %s", Dim("Totaal:"), formatMacros(meal.Totals()))
	return RenderBox("Maaltijdvoorstel", b.String())
}

// StoreItems lists the ingredients a meal needs from the shop.
func StoreItems(meal *intelligence.MealSuggestion) []string {
	var items []string
	for _, ing := range meal.Ingredients {
		if ing.Source != domain.SourcePantry {
			items = append(items, ing.Name)
		}
	}
	return items
}
