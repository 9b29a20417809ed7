package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/courtside/internal/service"
	"github.com/spf13/cobra"
)

// Server is the HTTP surface started by `serve`.
type Server interface {
	ListenAndServe(ctx context.Context, addr string) error
}

// Reminder is the scheduled briefing started next to the server.
type Reminder interface {
	Run(ctx context.Context) error
	SendNow(ctx context.Context) error
	Next() time.Time
}

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plan      service.PlanService
	Overrides service.OverrideService
	Food      service.FoodLogService
	Training  service.TrainingService
	Insights  service.InsightsService
	Meals     service.MealService
	Profile   service.ProfileService
	Settings  service.SettingsService
	Catalog   service.CatalogService
	Search    service.FoodSearch
	Export    service.ExportService
	Seed      service.SeedService

	Server Server
	// Reminder is nil when no Telegram bot is configured.
	Reminder Reminder
	Addr     string

	// IsInteractive reports whether stdin is a terminal. Forms and spinners
	// only run when it returns true.
	IsInteractive func() bool
	Logger        *slog.Logger
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

// NewRootCmd creates the top-level "courtside" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "courtside",
		Short:         "Volleyball training schedule, nutrition tracker and AI coach",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToday(cmd, app)
		},
	}

	root.AddCommand(
		newTodayCmd(app),
		newDayCmd(app),
		newWeekCmd(app),
		newOverrideCmd(app),
		newFoodCmd(app),
		newTrainCmd(app),
		newStatsCmd(app),
		newHabitsCmd(app),
		newShopCmd(app),
		newProfileCmd(app),
		newGoalsCmd(app),
		newCoachCmd(app),
		newInsightsCmd(app),
		newSuggestCmd(app),
		newSettingsCmd(app),
		newRecipesCmd(app),
		newCircuitCmd(app),
		newExportCmd(app),
		newSeedCmd(app),
		newServeCmd(app),
		newRemindCmd(app),
	)

	return root
}
