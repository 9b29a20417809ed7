package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/courtside/internal/cli/formatter"
	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's plan, meals and nutrition progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToday(cmd, app)
		},
	}
}

func runToday(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	day, err := app.Plan.Today(ctx)
	if err != nil {
		return err
	}
	sum, err := app.Food.Summary(ctx, day.Date)
	if err != nil {
		return err
	}
	habits, err := app.Profile.Habits(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.FormatDay(day))
	fmt.Fprintln(out)
	fmt.Fprintln(out, formatter.FormatMacroBars(sum.Totals, sum.Goals))
	fmt.Fprintln(out)
	fmt.Fprintln(out, formatter.FormatHabits(habits))
	return nil
}

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day DATE",
		Short: "Show the plan for one date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.Plan.Day(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDay(day))
			return nil
		},
	}
}

func newWeekCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "week [DATE]",
		Short: "Show Monday to Sunday of the week containing DATE (default this week)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			date := ""
			if len(args) == 1 {
				date = args[0]
			}
			days, err := app.Plan.Week(ctx, date)
			if err != nil {
				return err
			}
			today, err := app.Plan.Today(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeek(days, today.Date))
			return nil
		},
	}
}

func newOverrideCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "override",
		Aliases: []string{"ov"},
		Short:   "Replace the routine for specific dates",
	}
	cmd.AddCommand(
		newOverrideSetCmd(app),
		newOverrideRemoveCmd(app),
		newOverrideListCmd(app),
	)
	return cmd
}

func newOverrideSetCmd(app *App) *cobra.Command {
	var typ, title, details, icon string

	cmd := &cobra.Command{
		Use:   "set DATE",
		Short: "Set the plan for DATE, replacing any earlier override",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, ok := domain.ParseActivityType(typ)
			if !ok {
				return fmt.Errorf("unknown type %q (want one of %s)", typ, activityTypeNames())
			}
			if icon == "" {
				icon = string(defaultIcon(at))
			}
			if !domain.ValidIcons[icon] {
				return fmt.Errorf("unknown icon %q", icon)
			}
			entry := domain.OverrideEntry{
				Date: args[0],
				DayPlan: domain.DayPlan{
					Type:    at,
					Title:   title,
					Details: details,
					Icon:    domain.Icon(icon),
				},
			}
			if err := app.Overrides.Set(cmd.Context(), entry); err != nil {
				return err
			}
			day, err := app.Plan.Day(cmd.Context(), entry.Date)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDay(day))
			return nil
		},
	}

	cmd.Flags().StringVar(&typ, "type", "", "Activity type ("+activityTypeNames()+")")
	cmd.Flags().StringVar(&title, "title", "", "Title, e.g. \"Uitwedstrijd Dynamo\"")
	cmd.Flags().StringVar(&details, "details", "", "Free text details")
	cmd.Flags().StringVar(&icon, "icon", "", "Icon name (default depends on type)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newOverrideRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm DATE",
		Aliases: []string{"remove"},
		Short:   "Remove the override for DATE so the routine applies again",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Overrides.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Override for %s removed.\n", args[0])
			return nil
		},
	}
}

func newOverrideListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all overrides",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Overrides.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatOverrides(entries))
			return nil
		},
	}
}

func activityTypeNames() string {
	names := make([]string, 0, len(domain.ActivityTypes))
	for _, t := range domain.ActivityTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func defaultIcon(t domain.ActivityType) domain.Icon {
	switch t {
	case domain.ActivityMatch:
		return domain.IconTrophy
	case domain.ActivityTraining:
		return domain.IconVolleyball
	case domain.ActivitySleep:
		return domain.IconMoon
	case domain.ActivityStrength:
		return domain.IconDumbbell
	case domain.ActivityPower:
		return domain.IconZap
	default:
		return domain.IconCoffee
	}
}
