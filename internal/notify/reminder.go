package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/courtside/internal/service"
	"github.com/robfig/cron/v3"
)

// DefaultSchedule sends the briefing at 07:00 local time.
const DefaultSchedule = "0 7 * * *"

const sendTimeout = 30 * time.Second

// Reminder sends the morning briefing on a cron schedule.
type Reminder struct {
	plan    service.PlanService
	profile service.ProfileService
	sender  Sender
	logger  *slog.Logger
	loc     *time.Location
	cron    *cron.Cron
}

// NewReminder parses cronSpec (standard five-field cron) in loc. An empty cronSpec
// uses DefaultSchedule.
func NewReminder(cronSpec string, loc *time.Location, plan service.PlanService, profile service.ProfileService, sender Sender, logger *slog.Logger) (*Reminder, error) {
	if cronSpec == "" {
		cronSpec = DefaultSchedule
	}
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Reminder{
		plan:    plan,
		profile: profile,
		sender:  sender,
		logger:  logger,
		loc:     loc,
		cron:    cron.New(cron.WithLocation(loc)),
	}
	if _, err := r.cron.AddFunc(cronSpec, r.tick); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", cronSpec, err)
	}
	return r, nil
}

// Run starts the schedule and blocks until ctx is done. A running send is
// allowed to finish.
func (r *Reminder) Run(ctx context.Context) error {
	r.cron.Start()
	r.logger.InfoContext(ctx, "reminder_started", "next", r.Next())
	<-ctx.Done()
	<-r.cron.Stop().Done()
	return nil
}

// Next is the next scheduled send.
func (r *Reminder) Next() time.Time {
	entries := r.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	if next := entries[0].Next; !next.IsZero() {
		return next
	}
	return entries[0].Schedule.Next(time.Now().In(r.loc))
}

// SendNow builds today's briefing and sends it.
func (r *Reminder) SendNow(ctx context.Context) error {
	day, err := r.plan.Today(ctx)
	if err != nil {
		return fmt.Errorf("resolving today: %w", err)
	}
	goals, err := r.profile.Goals(ctx)
	if err != nil {
		return fmt.Errorf("reading goals: %w", err)
	}
	shopping, err := r.profile.ShoppingList(ctx)
	if err != nil {
		return fmt.Errorf("reading shopping list: %w", err)
	}
	return r.sender.Send(ctx, FormatBriefing(day, goals, shopping))
}

func (r *Reminder) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	start := time.Now()
	if err := r.SendNow(ctx); err != nil {
		r.logger.ErrorContext(ctx, "reminder_failed", "error", err.Error())
		return
	}
	r.logger.InfoContext(ctx, "reminder_sent", "duration_ms", time.Since(start).Milliseconds())
}
