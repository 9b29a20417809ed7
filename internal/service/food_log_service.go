package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/gamification"
	"github.com/alexanderramin/courtside/internal/intelligence"
	"github.com/alexanderramin/courtside/internal/planner"
	"github.com/alexanderramin/courtside/internal/repository"
	"github.com/google/uuid"
)

type foodLogService struct {
	logs     repository.CalorieLogRepo
	settings repository.SettingsRepo
	food     intelligence.FoodService
	tracker  *gamification.Tracker
	clock    Clock
	observer UseCaseObserver
}

func NewFoodLogService(
	logs repository.CalorieLogRepo,
	settings repository.SettingsRepo,
	food intelligence.FoodService,
	tracker *gamification.Tracker,
	clock Clock,
	observers ...UseCaseObserver,
) FoodLogService {
	return &foodLogService{
		logs:     logs,
		settings: settings,
		food:     food,
		tracker:  tracker,
		clock:    clock,
		observer: combineObservers(observers),
	}
}

func (s *foodLogService) Analyze(ctx context.Context, text, image string) (res *FoodLogResult, err error) {
	fields := map[string]any{"has_image": image != "", "has_text": strings.TrimSpace(text) != ""}
	defer finish(ctx, s.observer, "food-analyze", time.Now(), fields, &err)

	analysis, err := s.food.AnalyzeFood(ctx, text, image)
	if err != nil {
		if errors.Is(err, intelligence.ErrNothingToAnalyze) {
			return nil, invalid(err)
		}
		return nil, err
	}

	log := &domain.CalorieLog{
		Food:     analysis.Food,
		Quantity: analysis.Quantity,
		Type:     domain.LogTypeAI,
		Calories: analysis.Calories,
		Protein:  analysis.Protein,
		Carbs:    analysis.Carbs,
		Fat:      analysis.Fat,
		Image:    image,
	}
	return s.save(ctx, log)
}

func (s *foodLogService) AddManual(ctx context.Context, log *domain.CalorieLog) (res *FoodLogResult, err error) {
	defer finish(ctx, s.observer, "food-add", time.Now(), map[string]any{"food": log.Food}, &err)

	if log.Type == "" {
		log.Type = domain.LogTypeManual
	}
	return s.save(ctx, log)
}

// save fills in id, date and timestamp, stores the log and awards XP.
func (s *foodLogService) save(ctx context.Context, log *domain.CalorieLog) (*FoodLogResult, error) {
	s.stamp(log)
	if err := log.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.logs.Put(ctx, log); err != nil {
		return nil, fmt.Errorf("saving calorie log: %w", err)
	}
	award, err := s.tracker.Record(ctx, gamification.XPFoodLog)
	if err != nil {
		return nil, fmt.Errorf("log saved, awarding xp: %w", err)
	}
	return &FoodLogResult{Log: log, Award: award}, nil
}

func (s *foodLogService) stamp(log *domain.CalorieLog) {
	now := s.clock.Now()
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = now
	}
	if log.Date == "" {
		log.Date = domain.DateKey(log.Timestamp.In(s.clock.Location()))
	}
	log.Food = strings.TrimSpace(log.Food)
	log.Quantity = strings.TrimSpace(log.Quantity)
}

func (s *foodLogService) Get(ctx context.Context, id string) (*domain.CalorieLog, error) {
	return s.logs.GetByID(ctx, id)
}

// Update replaces an existing log; the original timestamp and type are
// kept when the caller leaves them empty.
func (s *foodLogService) Update(ctx context.Context, log *domain.CalorieLog) (err error) {
	defer finish(ctx, s.observer, "food-update", time.Now(), map[string]any{"id": log.ID}, &err)

	existing, err := s.logs.GetByID(ctx, log.ID)
	if err != nil {
		return err
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = existing.Timestamp
	}
	if log.Date == "" {
		log.Date = existing.Date
	}
	if log.Type == "" {
		log.Type = existing.Type
	}
	if err := log.Validate(); err != nil {
		return invalid(err)
	}
	return s.logs.Put(ctx, log)
}

func (s *foodLogService) Delete(ctx context.Context, id string) (err error) {
	defer finish(ctx, s.observer, "food-delete", time.Now(), map[string]any{"id": id}, &err)
	return s.logs.Delete(ctx, id)
}

func (s *foodLogService) ListDay(ctx context.Context, date string) ([]*domain.CalorieLog, error) {
	key, err := s.dateKey(date)
	if err != nil {
		return nil, err
	}
	return s.logs.ListRange(ctx, key, key)
}

func (s *foodLogService) DayTotals(ctx context.Context, date string) (domain.Macros, error) {
	logs, err := s.ListDay(ctx, date)
	if err != nil {
		return domain.Macros{}, err
	}
	return domain.SumMacros(logs), nil
}

func (s *foodLogService) Advice(ctx context.Context, date string) ([]string, error) {
	sum, err := s.Summary(ctx, date)
	if err != nil {
		return nil, err
	}
	return sum.Advice, nil
}

func (s *foodLogService) Summary(ctx context.Context, date string) (*DaySummary, error) {
	key, err := s.dateKey(date)
	if err != nil {
		return nil, err
	}
	logs, err := s.logs.ListRange(ctx, key, key)
	if err != nil {
		return nil, err
	}
	goals, err := readGoals(ctx, s.settings)
	if err != nil {
		return nil, err
	}
	totals := domain.SumMacros(logs)
	return &DaySummary{
		Date:      key,
		Logs:      logs,
		Totals:    totals,
		Goals:     goals,
		Remaining: goals.Remaining(totals),
		Advice:    planner.DailyAdvice(totals, goals),
	}, nil
}

func (s *foodLogService) dateKey(date string) (string, error) {
	t, err := s.clock.Parse(date)
	if err != nil {
		return "", err
	}
	return domain.DateKey(t), nil
}
