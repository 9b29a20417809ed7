package schedule

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/alexanderramin/courtside/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrDuplicateDate is returned when a document lists the same date twice.
var ErrDuplicateDate = errors.New("duplicate override date")

// Table maps ISO dates to the plan that replaces the weekday routine.
type Table map[string]domain.DayPlan

// Load parses a YAML mapping of "YYYY-MM-DD" keys to day plans.
func Load(r io.Reader) (Table, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, nil
		}
		return nil, fmt.Errorf("parsing override table: %w", err)
	}
	if len(doc.Content) == 0 {
		return Table{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("override table: expected a mapping at line %d", root.Line)
	}

	table := make(Table, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		date := key.Value
		if _, err := domain.ParseDateKey(date); err != nil {
			return nil, fmt.Errorf("override table line %d: %w", key.Line, err)
		}
		if _, exists := table[date]; exists {
			return nil, fmt.Errorf("override table line %d: %w: %s", key.Line, ErrDuplicateDate, date)
		}
		var plan domain.DayPlan
		if err := val.Decode(&plan); err != nil {
			return nil, fmt.Errorf("override table %s: %w", date, err)
		}
		table[date] = plan
	}
	return table, nil
}

// LoadFile reads a table from a YAML file on disk.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Default returns a fresh copy of the built-in season table.
func Default() Table {
	t, err := Load(bytes.NewReader(defaultYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded override table: %v", err))
	}
	return t
}

// Entries returns the table as override entries sorted by date.
func (t Table) Entries() []domain.OverrideEntry {
	out := make([]domain.OverrideEntry, 0, len(t))
	for date, plan := range t {
		out = append(out, domain.OverrideEntry{Date: date, DayPlan: plan})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// FromEntries builds a table from stored entries. Later entries win.
func FromEntries(entries []domain.OverrideEntry) Table {
	t := make(Table, len(entries))
	for _, e := range entries {
		t[e.Date] = e.DayPlan
	}
	return t
}

// Lookup returns the override for date, if any.
func (t Table) Lookup(date string) (domain.DayPlan, bool) {
	p, ok := t[date]
	return p, ok
}
