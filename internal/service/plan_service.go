package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/planner"
	"github.com/alexanderramin/courtside/internal/repository"
	"github.com/alexanderramin/courtside/internal/schedule"
)

type overrideService struct {
	overrides repository.OverrideRepo
	observer  UseCaseObserver
}

func NewOverrideService(overrides repository.OverrideRepo, observers ...UseCaseObserver) OverrideService {
	return &overrideService{overrides: overrides, observer: combineObservers(observers)}
}

// Set does not reject unknown activity types; the resolver maps them to
// rest. Surfaces validate the type before calling.
func (s *overrideService) Set(ctx context.Context, entry domain.OverrideEntry) (err error) {
	defer finish(ctx, s.observer, "override-set", time.Now(), map[string]any{"date": entry.Date}, &err)

	if _, perr := domain.ParseDateKey(entry.Date); perr != nil {
		return invalid(perr)
	}
	return s.overrides.Put(ctx, &entry)
}

func (s *overrideService) Delete(ctx context.Context, date string) (err error) {
	defer finish(ctx, s.observer, "override-delete", time.Now(), map[string]any{"date": date}, &err)
	return s.overrides.Delete(ctx, date)
}

func (s *overrideService) List(ctx context.Context) ([]domain.OverrideEntry, error) {
	entries, err := s.overrides.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.OverrideEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, *e)
	}
	return out, nil
}

func (s *overrideService) Table(ctx context.Context) (schedule.Table, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading override table: %w", err)
	}
	return schedule.FromEntries(entries), nil
}

type planService struct {
	overrides OverrideService
	clock     Clock
}

func NewPlanService(overrides OverrideService, clock Clock) PlanService {
	return &planService{overrides: overrides, clock: clock}
}

func (s *planService) Today(ctx context.Context) (domain.ResolvedDay, error) {
	return s.Day(ctx, "")
}

func (s *planService) Day(ctx context.Context, date string) (domain.ResolvedDay, error) {
	t, err := s.clock.Parse(date)
	if err != nil {
		return domain.ResolvedDay{}, err
	}
	table, err := s.overrides.Table(ctx)
	if err != nil {
		return domain.ResolvedDay{}, err
	}
	return planner.Resolve(t, table), nil
}

func (s *planService) Week(ctx context.Context, date string) ([]domain.ResolvedDay, error) {
	t, err := s.clock.Parse(date)
	if err != nil {
		return nil, err
	}
	table, err := s.overrides.Table(ctx)
	if err != nil {
		return nil, err
	}
	return planner.WeekOf(t, table), nil
}

func (s *planService) Upcoming(ctx context.Context, days int) ([]domain.ResolvedDay, error) {
	if days <= 0 {
		return nil, nil
	}
	from, err := s.clock.Parse("")
	if err != nil {
		return nil, err
	}
	table, err := s.overrides.Table(ctx)
	if err != nil {
		return nil, err
	}
	return planner.Range(from, from.AddDate(0, 0, days-1), table), nil
}

func (s *planService) Range(ctx context.Context, from, to string) ([]domain.ResolvedDay, error) {
	start, err := s.clock.Parse(from)
	if err != nil {
		return nil, err
	}
	end, err := s.clock.Parse(to)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, invalidf("range %s..%s is inverted", domain.DateKey(start), domain.DateKey(end))
	}
	table, err := s.overrides.Table(ctx)
	if err != nil {
		return nil, err
	}
	return planner.Range(start, end, table), nil
}
