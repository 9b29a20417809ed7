package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/llm"
)

// CoachService produces coaching text and targets from logged history.
type CoachService interface {
	// Feedback reviews recent logs against body stats and the coming week.
	Feedback(ctx context.Context, logs []*domain.CalorieLog, stats BodyStats, schedule []ScheduleDay) (*CoachFeedback, error)

	// Goals proposes daily calorie and macro targets.
	Goals(ctx context.Context, stats BodyStats, schedule []ScheduleDay) (*domain.Macros, error)

	// Progress reviews a month of logs against the current goals.
	Progress(ctx context.Context, logs []*domain.CalorieLog, goals domain.Macros) (*ProgressAnalysis, error)

	// Fuel relates one workout rating to the nutrition before it.
	Fuel(ctx context.Context, training *domain.TrainingLog, nutrition []*domain.CalorieLog) (*FuelInsight, error)
}

type coachService struct {
	client llm.LLMClient
}

// NewCoachService creates a CoachService backed by an LLM client.
func NewCoachService(client llm.LLMClient) CoachService {
	return &coachService{client: client}
}

func (s *coachService) Feedback(ctx context.Context, logs []*domain.CalorieLog, stats BodyStats, schedule []ScheduleDay) (*CoachFeedback, error) {
	scheduleJSON, err := indentJSON(schedule)
	if err != nil {
		return nil, err
	}
	logsJSON, err := indentJSON(compactLogs(logs))
	if err != nil {
		return nil, err
	}

	fb, err := generate(ctx, s.client, llm.GenerateRequest{
		Task:       llm.TaskCoach,
		UserPrompt: fmt.Sprintf(coachPrompt, stats.Height, stats.Weight, scheduleJSON, logsJSON),
	}, validateCoachFeedback)
	if err != nil {
		return nil, err
	}
	fb.Feedback = nonEmpty(fb.Feedback)
	return &fb, nil
}

func (s *coachService) Goals(ctx context.Context, stats BodyStats, schedule []ScheduleDay) (*domain.Macros, error) {
	scheduleJSON, err := indentJSON(schedule)
	if err != nil {
		return nil, err
	}

	goals, err := generate(ctx, s.client, llm.GenerateRequest{
		Task:       llm.TaskGoals,
		UserPrompt: fmt.Sprintf(goalsPrompt, stats.Height, stats.Weight, scheduleJSON),
	}, validateGoals)
	if err != nil {
		return nil, err
	}
	return &goals, nil
}

func (s *coachService) Progress(ctx context.Context, logs []*domain.CalorieLog, goals domain.Macros) (*ProgressAnalysis, error) {
	logsJSON, err := indentJSON(compactLogs(logs))
	if err != nil {
		return nil, err
	}

	p, err := generate(ctx, s.client, llm.GenerateRequest{
		Task: llm.TaskProgress,
		UserPrompt: fmt.Sprintf(progressPrompt,
			goals.Calories, goals.Protein, goals.Carbs, goals.Fat, logsJSON),
	}, validateProgress)
	if err != nil {
		return nil, err
	}
	p.Tips = nonEmpty(p.Tips)
	return &p, nil
}

func (s *coachService) Fuel(ctx context.Context, training *domain.TrainingLog, nutrition []*domain.CalorieLog) (*FuelInsight, error) {
	linesJSON, err := indentJSON(nutritionLines(nutrition))
	if err != nil {
		return nil, err
	}
	notes := strings.TrimSpace(training.Notes)
	if notes == "" {
		notes = "None"
	}

	f, err := generate(ctx, s.client, llm.GenerateRequest{
		Task: llm.TaskFuel,
		UserPrompt: fmt.Sprintf(fuelPrompt,
			training.Type, training.DurationMin, training.Rating, notes, linesJSON),
	}, validateFuel)
	if err != nil {
		return nil, err
	}
	f.Score = f.Score.clamp()
	return &f, nil
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
