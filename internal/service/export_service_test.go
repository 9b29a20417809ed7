package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/export"
	"github.com/alexanderramin/courtside/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExport_WorkbookRange(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewExportService(r.calories, r.training, r.plan(), testClock())

	require.NoError(t, r.calories.Put(ctx, testutil.NewTestCalorieLog("Binnen", testutil.WithLogDate("2026-02-25"))))
	require.NoError(t, r.calories.Put(ctx, testutil.NewTestCalorieLog("Buiten", testutil.WithLogDate("2026-02-10"))))
	require.NoError(t, r.training.Put(ctx, testutil.NewTestTrainingLog("Training", testutil.WithTrainingDate("2026-02-24"))))

	var buf bytes.Buffer
	require.NoError(t, svc.WriteWorkbook(ctx, &buf, "2026-02-20", ""))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.SheetFood)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Binnen", rows[1][2])

	rows, err = f.GetRows(export.SheetTraining)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestExport_WorkbookInvertedRange(t *testing.T) {
	r := setupRepos(t)
	svc := NewExportService(r.calories, r.training, r.plan(), testClock())

	err := svc.WriteWorkbook(context.Background(), &bytes.Buffer{}, "2026-03-01", "2026-02-01")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestExport_CalendarDefaultsToFourWeeks(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	overrides := NewOverrideService(r.overrides)
	svc := NewExportService(r.calories, r.training, NewPlanService(overrides, testClock()), testClock())

	require.NoError(t, overrides.Set(ctx, domain.OverrideEntry{
		Date:    "2026-03-21",
		DayPlan: domain.DayPlan{Type: domain.ActivityMatch, Title: "Wedstrijd Thuis"},
	}))
	require.NoError(t, overrides.Set(ctx, domain.OverrideEntry{
		Date:    "2026-03-26",
		DayPlan: domain.DayPlan{Type: domain.ActivityMatch, Title: "Te laat"},
	}))

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCalendar(ctx, &buf, "", ""))
	out := buf.String()

	assert.Contains(t, out, "UID:2026-02-26@courtside")
	assert.Contains(t, out, "UID:2026-03-21@courtside")
	assert.NotContains(t, out, "UID:2026-03-26@courtside")
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
}
