package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/planner"
)

const icsLineLimit = 75

// Calendar options. Stamp is written as DTSTAMP on every event.
type Calendar struct {
	Name        string
	Stamp       time.Time
	IncludeRest bool
}

// WriteCalendar writes one all-day event per resolved day. Rest days are
// skipped unless IncludeRest is set.
func WriteCalendar(w io.Writer, cal Calendar, days []domain.ResolvedDay) error {
	var sb strings.Builder
	line := func(format string, args ...any) {
		sb.WriteString(fold(fmt.Sprintf(format, args...)))
		sb.WriteString("\r\n")
	}

	name := cal.Name
	if name == "" {
		name = "Courtside"
	}
	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:-//Courtside//Volleyball Planner//NL")
	line("CALSCALE:GREGORIAN")
	line("METHOD:PUBLISH")
	line("X-WR-CALNAME:%s", escapeICS(name))

	stamp := cal.Stamp.UTC().Format("20060102T150405Z")
	for _, d := range days {
		if d.Type == domain.ActivityRest && !cal.IncludeRest && !d.Overridden {
			continue
		}
		start, err := domain.ParseDateKey(d.Date)
		if err != nil {
			return fmt.Errorf("calendar day %q: %w", d.Date, err)
		}
		line("BEGIN:VEVENT")
		line("UID:%s@courtside", d.Date)
		line("DTSTAMP:%s", stamp)
		line("DTSTART;VALUE=DATE:%s", start.Format("20060102"))
		line("DTEND;VALUE=DATE:%s", start.AddDate(0, 0, 1).Format("20060102"))
		line("SUMMARY:%s", escapeICS(d.Title))
		line("CATEGORIES:%s", escapeICS(planner.ThemeFor(d.Type).Label))
		line("DESCRIPTION:%s", escapeICS(description(d)))
		line("TRANSP:TRANSPARENT")
		line("END:VEVENT")
	}
	line("END:VCALENDAR")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}

func description(d domain.ResolvedDay) string {
	var parts []string
	if d.Details != "" {
		parts = append(parts, d.Details)
	}
	n := d.Nutrition
	parts = append(parts,
		"Ontbijt: "+n.Breakfast,
		"Lunch: "+n.Lunch,
		"Diner: "+n.Dinner,
	)
	if n.HasSnack() {
		parts = append(parts, "Snack: "+n.Snack)
	}
	if n.FamilyTip != "" {
		parts = append(parts, "Tip: "+n.FamilyTip)
	}
	return strings.Join(parts, "\n")
}

func escapeICS(s string) string {
	r := strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\r\n", `\n`, "\n", `\n`)
	return r.Replace(s)
}

// fold splits content lines longer than 75 octets, never inside a UTF-8
// sequence. Continuation lines start with a single space.
func fold(s string) string {
	if len(s) <= icsLineLimit {
		return s
	}
	var sb strings.Builder
	limit := icsLineLimit
	width := 0
	for _, r := range s {
		n := len(string(r))
		if width+n > limit {
			sb.WriteString("\r\n ")
			width = 0
			limit = icsLineLimit - 1
		}
		sb.WriteRune(r)
		width += n
	}
	return sb.String()
}
