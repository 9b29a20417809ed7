// Package export renders logs and plans into files other tools can open.
package export

import (
	"fmt"
	"io"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	SheetFood     = "Voeding"
	SheetTraining = "Training"
	SheetTotals   = "Dagtotalen"
)

type column struct {
	title string
	width float64
}

var (
	foodColumns = []column{
		{"Datum", 12}, {"Tijd", 8}, {"Voedsel", 32}, {"Hoeveelheid", 16}, {"Bron", 10},
		{"Kcal", 8}, {"Eiwit (g)", 10}, {"Koolh. (g)", 10}, {"Vet (g)", 8},
	}
	trainingColumns = []column{
		{"Datum", 12}, {"Tijd", 8}, {"Type", 18}, {"Rating", 8}, {"Duur (min)", 11}, {"Notities", 40},
	}
	totalsColumns = []column{
		{"Datum", 12}, {"Kcal", 8}, {"Eiwit (g)", 10}, {"Koolh. (g)", 10}, {"Vet (g)", 8},
	}
)

// Workbook is the data of one export.
type Workbook struct {
	Food     []*domain.CalorieLog
	Training []*domain.TrainingLog
}

// WriteWorkbook writes food logs, workouts and per-day totals as three
// sheets of an .xlsx file.
func WriteWorkbook(w io.Writer, data Workbook) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2E75B6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetFood); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if err := writeHeader(f, SheetFood, foodColumns, header); err != nil {
		return err
	}
	for i, l := range data.Food {
		row := []any{l.Date, clockTime(l), l.Food, l.Quantity, l.Type, l.Calories, l.Protein, l.Carbs, l.Fat}
		if err := setRow(f, SheetFood, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(SheetTraining); err != nil {
		return fmt.Errorf("creating sheet %s: %w", SheetTraining, err)
	}
	if err := writeHeader(f, SheetTraining, trainingColumns, header); err != nil {
		return err
	}
	for i, l := range data.Training {
		row := []any{l.Date, l.Timestamp.Format("15:04"), l.Type, l.Rating, l.DurationMin, l.Notes}
		if err := setRow(f, SheetTraining, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(SheetTotals); err != nil {
		return fmt.Errorf("creating sheet %s: %w", SheetTotals, err)
	}
	if err := writeHeader(f, SheetTotals, totalsColumns, header); err != nil {
		return err
	}
	for i, d := range dailyTotals(data.Food) {
		row := []any{d.date, d.totals.Calories, d.totals.Protein, d.totals.Carbs, d.totals.Fat}
		if err := setRow(f, SheetTotals, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, cols []column, style int) error {
	for i, c := range cols {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, c.width); err != nil {
			return fmt.Errorf("sizing %s!%s: %w", sheet, name, err)
		}
		if err := f.SetCellValue(sheet, name+"1", c.title); err != nil {
			return fmt.Errorf("writing %s header: %w", sheet, err)
		}
	}
	last, _ := excelize.ColumnNumberToName(len(cols))
	if err := f.SetCellStyle(sheet, "A1", last+"1", style); err != nil {
		return fmt.Errorf("styling %s header: %w", sheet, err)
	}
	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	return nil
}

func clockTime(l *domain.CalorieLog) string {
	if l.Timestamp.IsZero() {
		return ""
	}
	return l.Timestamp.Format("15:04")
}

type dayTotal struct {
	date   string
	totals domain.Macros
}

// dailyTotals groups logs by date in first-seen order; logs arrive sorted
// by timestamp so that is chronological.
func dailyTotals(logs []*domain.CalorieLog) []dayTotal {
	var out []dayTotal
	index := map[string]int{}
	for _, l := range logs {
		i, ok := index[l.Date]
		if !ok {
			i = len(out)
			index[l.Date] = i
			out = append(out, dayTotal{date: l.Date})
		}
		out[i].totals = out[i].totals.Add(l.Macros())
	}
	return out
}
