package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/export"
	"github.com/alexanderramin/courtside/internal/repository"
)

// calendarDefaultDays is the span exported when no end date is given.
const calendarDefaultDays = 28

type exportService struct {
	calories repository.CalorieLogRepo
	training repository.TrainingLogRepo
	plan     PlanService
	clock    Clock
	observer UseCaseObserver
}

func NewExportService(
	calories repository.CalorieLogRepo,
	training repository.TrainingLogRepo,
	plan PlanService,
	clock Clock,
	observers ...UseCaseObserver,
) ExportService {
	return &exportService{
		calories: calories,
		training: training,
		plan:     plan,
		clock:    clock,
		observer: combineObservers(observers),
	}
}

// WriteWorkbook exports every log when both bounds are empty; otherwise an
// empty bound means today.
func (s *exportService) WriteWorkbook(ctx context.Context, w io.Writer, from, to string) (err error) {
	fields := map[string]any{"from": from, "to": to}
	defer finish(ctx, s.observer, "export-xlsx", time.Now(), fields, &err)

	var data export.Workbook
	if from == "" && to == "" {
		if data.Food, err = s.calories.GetAll(ctx); err != nil {
			return err
		}
		if data.Training, err = s.training.GetAll(ctx); err != nil {
			return err
		}
	} else {
		start, end, err := s.bounds(from, to)
		if err != nil {
			return err
		}
		if data.Food, err = s.calories.ListRange(ctx, start, end); err != nil {
			return err
		}
		if data.Training, err = s.training.ListRange(ctx, start, end); err != nil {
			return err
		}
	}
	fields["food_rows"] = len(data.Food)
	fields["training_rows"] = len(data.Training)
	return export.WriteWorkbook(w, data)
}

// WriteCalendar exports the resolved plan. An empty from means today and an
// empty to means four weeks after from.
func (s *exportService) WriteCalendar(ctx context.Context, w io.Writer, from, to string) (err error) {
	fields := map[string]any{"from": from, "to": to}
	defer finish(ctx, s.observer, "export-ics", time.Now(), fields, &err)

	start, err := s.clock.Parse(from)
	if err != nil {
		return err
	}
	if to == "" {
		to = domain.DateKey(start.AddDate(0, 0, calendarDefaultDays-1))
	}
	days, err := s.plan.Range(ctx, domain.DateKey(start), to)
	if err != nil {
		return err
	}
	fields["days"] = len(days)
	return export.WriteCalendar(w, export.Calendar{Name: "Volleybal planning", Stamp: s.clock.Now()}, days)
}

func (s *exportService) bounds(from, to string) (string, string, error) {
	start, err := s.clock.Parse(from)
	if err != nil {
		return "", "", err
	}
	end, err := s.clock.Parse(to)
	if err != nil {
		return "", "", err
	}
	if end.Before(start) {
		return "", "", invalidf("range %s..%s is inverted", domain.DateKey(start), domain.DateKey(end))
	}
	return domain.DateKey(start), domain.DateKey(end), nil
}
