package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/courtside/internal/catalog"
	"github.com/alexanderramin/courtside/internal/cli"
	"github.com/alexanderramin/courtside/internal/db"
	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/gamification"
	"github.com/alexanderramin/courtside/internal/httpapi"
	"github.com/alexanderramin/courtside/internal/intelligence"
	"github.com/alexanderramin/courtside/internal/llm"
	"github.com/alexanderramin/courtside/internal/notify"
	"github.com/alexanderramin/courtside/internal/repository"
	"github.com/alexanderramin/courtside/internal/schedule"
	"github.com/alexanderramin/courtside/internal/service"
)

// Options are the hooks tests and main can swap.
type Options struct {
	// Now defaults to time.Now.
	Now func() time.Time
	// LogOutput receives structured logs; nil discards them.
	LogOutput io.Writer
	// Sender replaces the Telegram sender when set.
	Sender notify.Sender
}

// Runtime is a wired application. Close releases the database.
type Runtime struct {
	CLI    *cli.App
	Logger *slog.Logger
	db     *sql.DB
}

func (r *Runtime) Close() error {
	return r.db.Close()
}

// Build opens the database, loads the built-in data when its version is new
// and wires every service behind the CLI, HTTP API and reminder.
func Build(ctx context.Context, cfg Config, opts Options) (*Runtime, error) {
	logger := slog.New(slog.DiscardHandler)
	if opts.LogOutput != nil {
		logger = slog.New(slog.NewTextHandler(opts.LogOutput, &slog.HandlerOptions{Level: cfg.LogLevel}))
	}
	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(logger))
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	var overrideTable schedule.Table
	if cfg.SchedulePath != "" {
		t, err := schedule.LoadFile(cfg.SchedulePath)
		if err != nil {
			return nil, fmt.Errorf("loading schedule %s: %w", cfg.SchedulePath, err)
		}
		overrideTable = t
	}
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	rt := &Runtime{Logger: logger, db: database}

	// Wire repositories
	calories := repository.NewSQLiteCalorieLogRepo(database)
	training := repository.NewSQLiteTrainingLogRepo(database)
	settings := repository.NewSQLiteSettingsRepo(database)
	suggestions := repository.NewSQLiteFoodSuggestionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the AI gateway
	var llmObserver llm.Observer = llm.NoopObserver{}
	if cfg.LLM.LogCalls {
		llmObserver = llm.NewLogObserver(logger)
	}
	keys := llm.NewSettingsKeySource(settings, domain.SettingAPIKey, cfg.LLM.APIKey)
	client := llm.NewChatClient(cfg.LLM, keys, llmObserver)
	food := intelligence.NewFoodService(client)
	coach := intelligence.NewCoachService(client)

	// Wire services
	clock := service.NewClock(opts.Now, loc)
	tracker := gamification.NewTracker(settings, opts.Now, loc)
	overrides := service.NewOverrideService(repository.NewSQLiteOverrideRepo(database), observers...)
	plan := service.NewPlanService(overrides, clock)
	foodLogs := service.NewFoodLogService(calories, settings, food, tracker, clock, observers...)
	profile := service.NewProfileService(settings, calories, plan, tracker, coach, keys, observers...)
	seed := service.NewSeedService(uow, cat, overrideTable, observers...)

	api := &httpapi.Deps{
		Plan:      plan,
		Overrides: overrides,
		Food:      foodLogs,
		Training:  service.NewTrainingService(training, calories, coach, tracker, clock, observers...),
		Insights:  service.NewInsightsService(calories, settings, coach, clock, observers...),
		Meals:     service.NewMealService(calories, suggestions, foodLogs, food, tracker, clock, observers...),
		Profile:   profile,
		Settings:  service.NewSettingsService(settings, observers...),
		Catalog: service.NewCatalogService(
			repository.NewSQLiteRecipeRepo(database), repository.NewSQLiteExerciseRepo(database), uow, observers...),
		Search: service.NewFoodSearch(calories, suggestions),
		Export: service.NewExportService(calories, training, plan, clock, observers...),
		Logger: logger,
	}

	applied, err := seed.Seed(ctx)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("seeding built-in data: %w", err)
	}
	if applied {
		logger.InfoContext(ctx, "seed_applied", "version", catalog.SeedVersion)
	}

	rt.CLI = &cli.App{
		Plan:      api.Plan,
		Overrides: api.Overrides,
		Food:      api.Food,
		Training:  api.Training,
		Insights:  api.Insights,
		Meals:     api.Meals,
		Profile:   api.Profile,
		Settings:  api.Settings,
		Catalog:   api.Catalog,
		Search:    api.Search,
		Export:    api.Export,
		Seed:      seed,
		Server:    api,
		Addr:      cfg.Addr,
		Logger:    logger,
	}

	sender := opts.Sender
	if sender == nil && cfg.TelegramEnabled() {
		tg, err := notify.NewTelegramSender(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			database.Close()
			return nil, err
		}
		sender = tg
	}
	if sender != nil {
		reminder, err := notify.NewReminder(cfg.RemindCron, loc, plan, profile, sender, logger)
		if err != nil {
			database.Close()
			return nil, err
		}
		rt.CLI.Reminder = reminder
	}

	return rt, nil
}
