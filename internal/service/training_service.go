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
	"github.com/alexanderramin/courtside/internal/llm"
	"github.com/alexanderramin/courtside/internal/repository"
	"github.com/google/uuid"
)

// fuelWindow is how far back nutrition counts toward a workout.
const fuelWindow = 24 * time.Hour

// Canned fuel results shown when the analysis cannot run.
var (
	FuelNoKey = intelligence.FuelInsight{
		Score:          0,
		Insight:        "Geen AI key, maar workout is gelogd!",
		Recommendation: "Stel je API key in voor analyses.",
	}
	FuelFailed = intelligence.FuelInsight{
		Score:          0,
		Insight:        "Er ging iets mis met de analyse.",
		Recommendation: "Probeer het later nog eens.",
	}
)

type trainingService struct {
	logs     repository.TrainingLogRepo
	calories repository.CalorieLogRepo
	coach    intelligence.CoachService
	tracker  *gamification.Tracker
	clock    Clock
	observer UseCaseObserver
}

func NewTrainingService(
	logs repository.TrainingLogRepo,
	calories repository.CalorieLogRepo,
	coach intelligence.CoachService,
	tracker *gamification.Tracker,
	clock Clock,
	observers ...UseCaseObserver,
) TrainingService {
	return &trainingService{
		logs:     logs,
		calories: calories,
		coach:    coach,
		tracker:  tracker,
		clock:    clock,
		observer: combineObservers(observers),
	}
}

func (s *trainingService) Log(ctx context.Context, log *domain.TrainingLog) (res *TrainingResult, err error) {
	fields := map[string]any{"type": log.Type, "rating": log.Rating}
	defer finish(ctx, s.observer, "training-log", time.Now(), fields, &err)

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
	log.Type = strings.TrimSpace(log.Type)
	if err := log.Validate(); err != nil {
		return nil, invalid(err)
	}

	if err := s.logs.Put(ctx, log); err != nil {
		return nil, fmt.Errorf("saving training log: %w", err)
	}
	award, err := s.tracker.Record(ctx, gamification.XPTrainingLog)
	if err != nil {
		return nil, fmt.Errorf("training saved, awarding xp: %w", err)
	}

	res = &TrainingResult{Log: log, Award: award}
	s.analyzeFuel(ctx, res, now)
	fields["fuel_fallback"] = res.Fallback
	return res, nil
}

// analyzeFuel fills res.Fuel, falling back to a canned message on any
// failure. The workout is already saved at this point.
func (s *trainingService) analyzeFuel(ctx context.Context, res *TrainingResult, now time.Time) {
	recent, err := s.calories.ListSince(ctx, now.Add(-fuelWindow))
	if err == nil {
		var insight *intelligence.FuelInsight
		insight, err = s.coach.Fuel(ctx, res.Log, recent)
		if err == nil {
			res.Fuel = *insight
			return
		}
	}

	res.Fallback = true
	res.FuelErr = err
	var ce *llm.ConfigError
	if errors.As(err, &ce) {
		res.Fuel = FuelNoKey
		return
	}
	res.Fuel = FuelFailed
}

func (s *trainingService) List(ctx context.Context, from, to string) ([]*domain.TrainingLog, error) {
	if from == "" && to == "" {
		return s.logs.GetAll(ctx)
	}
	fromT, err := s.clock.Parse(from)
	if err != nil {
		return nil, err
	}
	toT, err := s.clock.Parse(to)
	if err != nil {
		return nil, err
	}
	return s.logs.ListRange(ctx, domain.DateKey(fromT), domain.DateKey(toT))
}

func (s *trainingService) Delete(ctx context.Context, id string) (err error) {
	defer finish(ctx, s.observer, "training-delete", time.Now(), map[string]any{"id": id}, &err)
	return s.logs.Delete(ctx, id)
}
