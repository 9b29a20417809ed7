package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/gamification"
	"github.com/alexanderramin/courtside/internal/intelligence"
	"github.com/alexanderramin/courtside/internal/service"
)

const levelBarWidth = 20

// FormatStats renders XP, level progress and the streak.
func FormatStats(stats domain.UserStats, level gamification.LevelInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d    %s %d XP\n", Bold("Level"), level.Level, Bold("Totaal"), stats.XP)

	filled := min(int(level.Progress/100*levelBarWidth), levelBarWidth)
	bar := StylePurple.Render(strings.Repeat(filledBlock, filled)) + Dim(strings.Repeat(emptyBlock, levelBarWidth-filled))
	fmt.Fprintf(&b, "[%s] %s\n", bar, Dim(fmt.Sprintf("%d / %d XP", stats.XP, level.NextThreshold)))

	streak := fmt.Sprintf("%d dag(en)", stats.Streak)
	if stats.Streak >= 3 {
		streak = StyleHeader.Render("🔥 " + streak)
	}
	fmt.Fprintf(&b, "%s %s", Bold("Streak"), streak)
	if stats.LastLogDate != "" {
		fmt.Fprintf(&b, "  %s", Dim("laatst gelogd "+stats.LastLogDate))
	}
	return RenderBox("Voortgang", b.String())
}

// FormatHabits renders the four daily habits as a checklist.
func FormatHabits(h domain.Habits) string {
	checked := map[string]bool{"water": h.Water, "fruit": h.Fruit, "veggies": h.Veggies, "protein": h.Protein}
	labels := map[string]string{"water": "2L water", "fruit": "2x fruit", "veggies": "groente", "protein": "eiwit"}

	var b strings.Builder
	for _, name := range domain.HabitNames {
		mark := Dim("○")
		if checked[name] {
			mark = StyleGreen.Render("✔")
		}
		fmt.Fprintf(&b, "%s %-8s %s\n", mark, name, Dim(labels[name]))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatProfile renders body stats and goals.
func FormatProfile(p domain.UserProfile, hasKey bool) string {
	var b strings.Builder
	body := Dim("onbekend")
	if p.HasBodyStats() {
		body = fmt.Sprintf("%g cm · %g kg", p.HeightCm, p.WeightKg)
	}
	fmt.Fprintf(&b, "%-10s %s\n", "Lichaam", body)
	fmt.Fprintf(&b, "%-10s %s\n", "Doelen", formatMacros(p.Goals))
	key := StyleRed.Render("niet ingesteld")
	if hasKey {
		key = StyleGreen.Render("ingesteld")
	}
	fmt.Fprintf(&b, "%-10s %s", "API-sleutel", key)
	return b.String()
}

// FormatBullets renders coach feedback or tips as a bullet list.
func FormatBullets(title string, bullets []string) string {
	var b strings.Builder
	b.WriteString(Header(title) + "\n")
	for _, line := range bullets {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", StyleBlue.Render("•"), line)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatProgress renders an AI progress analysis.
func FormatProgress(p *intelligence.ProgressAnalysis) string {
	out := p.Summary
	if len(p.Tips) > 0 {
		out += "\n\n" + FormatBullets("Tips", p.Tips)
	}
	return RenderBox("Analyse", out)
}

const sparkLevels = "▁▂▃▄▅▆▇█"

// FormatSeries renders a metric over a timeframe as a sparkline plus totals.
func FormatSeries(s *service.Series) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", Header(fmt.Sprintf("%s · %s", s.Metric, s.Timeframe)))

	levels := []rune(sparkLevels)
	var spark strings.Builder
	for _, p := range s.Points {
		if !p.HasData || s.Max <= 0 {
			spark.WriteString(Dim("·"))
			continue
		}
		idx := int(math.Round(p.Value / s.Max * float64(len(levels)-1)))
		ch := string(levels[max(0, min(idx, len(levels)-1))])
		if s.Goal > 0 && p.Value > s.Goal*1.15 {
			spark.WriteString(StyleRed.Render(ch))
		} else {
			spark.WriteString(StyleGreen.Render(ch))
		}
	}
	b.WriteString(spark.String() + "\n")
	if len(s.Points) > 0 {
		fmt.Fprintf(&b, "%s\n", Dim(fmt.Sprintf("%s … %s", s.Points[0].Date, s.Points[len(s.Points)-1].Date)))
	}

	fmt.Fprintf(&b, "Gemiddeld %.0f · doel %.0f · totaal %.0f · %d dag(en) met data",
		s.Average, s.Goal, s.Total, s.DaysWithData)
	return b.String()
}

// FormatTrainingResult renders a saved workout with its fuel analysis.
func FormatTrainingResult(res *service.TrainingResult) string {
	var b strings.Builder
	l := res.Log
	fmt.Fprintf(&b, "%s %s  %s  %s\n", StyleGreen.Render("✔"), Bold(l.Type), Stars(l.Rating), FormatMinutes(l.DurationMin))
	b.WriteString(FormatAward(res.Award) + "\n\n")

	title := fmt.Sprintf("Fuel score %.0f", float64(res.Fuel.Score))
	if res.Fallback {
		title = "Fuel analyse"
	}
	body := res.Fuel.Insight
	if res.Fuel.Recommendation != "" {
		body += "\n\n" + StyleYellow.Render("→ ") + res.Fuel.Recommendation
	}
	b.WriteString(RenderBox(title, body))
	return b.String()
}

// FormatTrainingLogs lists workouts newest first as given.
func FormatTrainingLogs(logs []*domain.TrainingLog) string {
	if len(logs) == 0 {
		return Dim("Geen trainingen in deze periode.")
	}
	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []string{TruncID(l.ID), l.Date, l.Type, Stars(l.Rating), FormatMinutes(l.DurationMin), Dim(l.Notes)})
	}
	return RenderTable([]string{"ID", "DATUM", "TYPE", "GEVOEL", "DUUR", "NOTITIE"}, rows)
}
