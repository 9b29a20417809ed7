package service

import (
	"context"
	"math"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/intelligence"
	"github.com/alexanderramin/courtside/internal/repository"
)

// progressWindowDays is the history the AI progress review looks at.
const progressWindowDays = 30

type insightsService struct {
	logs     repository.CalorieLogRepo
	settings repository.SettingsRepo
	coach    intelligence.CoachService
	clock    Clock
	observer UseCaseObserver
}

func NewInsightsService(
	logs repository.CalorieLogRepo,
	settings repository.SettingsRepo,
	coach intelligence.CoachService,
	clock Clock,
	observers ...UseCaseObserver,
) InsightsService {
	return &insightsService{
		logs:     logs,
		settings: settings,
		coach:    coach,
		clock:    clock,
		observer: combineObservers(observers),
	}
}

func (s *insightsService) Series(ctx context.Context, timeframe domain.Timeframe, metric domain.Metric, end string) (*Series, error) {
	if timeframe == "" {
		timeframe = domain.TimeframeWeek
	}
	if timeframe != domain.TimeframeWeek && timeframe != domain.TimeframeMonth {
		return nil, invalidf("timeframe must be week or month, got %q", timeframe)
	}
	if metric == "" {
		metric = domain.MetricCalories
	}
	if !domain.ValidMetrics[string(metric)] {
		return nil, invalidf("unknown metric %q", metric)
	}

	endT, err := s.clock.Parse(end)
	if err != nil {
		return nil, err
	}
	startT := endT.AddDate(0, 0, -(timeframe.Days() - 1))
	logs, err := s.logs.ListRange(ctx, domain.DateKey(startT), domain.DateKey(endT))
	if err != nil {
		return nil, err
	}
	goals, err := readGoals(ctx, s.settings)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]domain.Macros)
	for _, l := range logs {
		byDate[l.Date] = byDate[l.Date].Add(l.Macros())
	}

	out := &Series{Timeframe: timeframe, Metric: metric, Goal: goals.Get(metric)}
	for d := startT; !d.After(endT); d = d.AddDate(0, 0, 1) {
		key := domain.DateKey(d)
		v := byDate[key].Get(metric)
		out.Points = append(out.Points, SeriesPoint{Date: key, Value: v, HasData: v > 0})
		out.Total += v
		if v > out.Max {
			out.Max = v
		}
		if v > 0 {
			out.DaysWithData++
		}
	}
	if out.DaysWithData > 0 {
		out.Average = math.Round(out.Total / float64(out.DaysWithData))
	}
	return out, nil
}

func (s *insightsService) Analyze(ctx context.Context) (res *intelligence.ProgressAnalysis, err error) {
	fields := map[string]any{}
	defer finish(ctx, s.observer, "progress-analyze", time.Now(), fields, &err)

	end, err := s.clock.Parse("")
	if err != nil {
		return nil, err
	}
	start := end.AddDate(0, 0, -(progressWindowDays - 1))
	logs, err := s.logs.ListRange(ctx, domain.DateKey(start), domain.DateKey(end))
	if err != nil {
		return nil, err
	}
	fields["log_count"] = len(logs)
	goals, err := readGoals(ctx, s.settings)
	if err != nil {
		return nil, err
	}
	return s.coach.Progress(ctx, logs, goals)
}
