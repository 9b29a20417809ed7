package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/courtside/internal/cli/formatter"
	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show XP, level and logging streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, level, err := app.Profile.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStats(stats, level))
			return nil
		},
	}
}

func newHabitsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habits",
		Short: "Show today's habit checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := app.Profile.Habits(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHabits(h))
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:       "toggle NAME",
		Short:     "Check or uncheck a habit (" + strings.Join(domain.HabitNames, ", ") + ")",
		Args:      cobra.ExactArgs(1),
		ValidArgs: domain.HabitNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Profile.ToggleHabit(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatHabits(res.Habits))
			if res.Award != nil {
				fmt.Fprintln(out, formatter.FormatAward(*res.Award))
			}
			return nil
		},
	})
	return cmd
}

func newShopCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shop",
		Aliases: []string{"shopping"},
		Short:   "Manage the shopping list",
	}

	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the shopping list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Profile.ShoppingList(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatShoppingList(items))
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add ITEM...",
		Short: "Add items; duplicates are ignored",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Profile.AddShoppingItems(cmd.Context(), args...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatShoppingList(items))
			return nil
		},
	}

	rm := &cobra.Command{
		Use:     "rm ITEM",
		Aliases: []string{"remove"},
		Short:   "Remove one item",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Profile.RemoveShoppingItem(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatShoppingList(items))
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the shopping list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Profile.ClearShoppingList(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Shopping list cleared.")
			return nil
		},
	}

	cmd.AddCommand(list, add, rm, clearCmd)
	return cmd
}

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show body stats, goals and whether an API key is set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Profile.Profile(ctx)
			if err != nil {
				return err
			}
			hasKey, err := app.Profile.HasAPIKey(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p, hasKey))
			return nil
		},
	}

	var height, weight float64
	body := &cobra.Command{
		Use:   "body",
		Short: "Set height (cm) and weight (kg)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Profile.SetBodyStats(cmd.Context(), height, weight); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %g cm, %g kg.\n", height, weight)
			return nil
		},
	}
	body.Flags().Float64Var(&height, "height", 0, "Height in cm")
	body.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	_ = body.MarkFlagRequired("height")
	_ = body.MarkFlagRequired("weight")

	cmd.AddCommand(body)
	return cmd
}

func newGoalsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Show or change the daily calorie and macro targets",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the current targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.Profile.Goals(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatGoals(g))
			return nil
		},
	}

	var kcal, protein, carbs, fat float64
	set := &cobra.Command{
		Use:   "set",
		Short: "Change targets; flags you leave out keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := app.Profile.Goals(ctx)
			if err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("kcal") {
				g.Calories = kcal
			}
			if f.Changed("protein") {
				g.Protein = protein
			}
			if f.Changed("carbs") {
				g.Carbs = carbs
			}
			if f.Changed("fat") {
				g.Fat = fat
			}
			if err := app.Profile.SetGoals(ctx, g); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatGoals(g))
			return nil
		},
	}
	set.Flags().Float64Var(&kcal, "kcal", 0, "Calories per day")
	set.Flags().Float64Var(&protein, "protein", 0, "Protein (g) per day")
	set.Flags().Float64Var(&carbs, "carbs", 0, "Carbohydrates (g) per day")
	set.Flags().Float64Var(&fat, "fat", 0, "Fat (g) per day")

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Let the AI derive targets from body stats and the coming week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := spin(cmd, app, "Doelen berekenen...")
			g, err := app.Profile.GenerateGoals(cmd.Context())
			stop()
			if err != nil {
				return aiHint(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatGoals(*g))
			return nil
		},
	}

	cmd.AddCommand(show, set, generate)
	return cmd
}

func formatGoals(g domain.Macros) string {
	return fmt.Sprintf("%s %s · %s eiwit · %s koolh · %s vet",
		formatter.Bold("Doel"), formatter.Kcal(g.Calories), formatter.Grams(g.Protein), formatter.Grams(g.Carbs), formatter.Grams(g.Fat))
}

func newCoachCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "coach",
		Short: "Get feedback on recent meals against the coming week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := spin(cmd, app, "Coach denkt na...")
			fb, err := app.Profile.CoachFeedback(cmd.Context())
			stop()
			if err != nil {
				return aiHint(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBullets("Coach", fb.Feedback))
			return nil
		},
	}
}

func newInsightsCmd(app *App) *cobra.Command {
	var timeframe, metric, end string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Chart a macro over the last week or month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Insights.Series(cmd.Context(), domain.Timeframe(timeframe), domain.Metric(metric), end)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSeries(s))
			return nil
		},
	}
	cmd.Flags().StringVar(&timeframe, "timeframe", "week", "week or month")
	cmd.Flags().StringVar(&metric, "metric", "calories", "calories, protein, carbs or fat")
	cmd.Flags().StringVar(&end, "end", "", "Last day of the window (default today)")

	cmd.AddCommand(&cobra.Command{
		Use:   "analyze",
		Short: "Let the AI review the last 30 days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := spin(cmd, app, "Voortgang analyseren...")
			res, err := app.Insights.Analyze(cmd.Context())
			stop()
			if err != nil {
				return aiHint(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProgress(res))
			return nil
		},
	})
	return cmd
}
