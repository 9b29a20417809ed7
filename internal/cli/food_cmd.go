package cli

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/alexanderramin/courtside/internal/cli/formatter"
	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/repository"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newFoodCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Log and review what you eat",
	}
	cmd.AddCommand(
		newFoodAnalyzeCmd(app),
		newFoodAddCmd(app),
		newFoodListCmd(app),
		newFoodEditCmd(app),
		newFoodRemoveCmd(app),
		newFoodSearchCmd(app),
	)
	return cmd
}

func newFoodAnalyzeCmd(app *App) *cobra.Command {
	var imagePath string

	cmd := &cobra.Command{
		Use:   "analyze [DESCRIPTION...]",
		Short: "Estimate and log a meal from a description and/or a photo",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			image := ""
			if imagePath != "" {
				var err error
				if image, err = imageDataURL(imagePath); err != nil {
					return err
				}
			}
			if text == "" && image == "" {
				return fmt.Errorf("describe the meal or pass --image")
			}

			stop := spin(cmd, app, "Maaltijd analyseren...")
			res, err := app.Food.Analyze(cmd.Context(), text, image)
			stop()
			if err != nil {
				return aiHint(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLogged(res.Log, res.Award))
			return nil
		},
	}
	cmd.Flags().StringVar(&imagePath, "image", "", "Path to a photo of the meal")
	return cmd
}

// imageDataURL reads a photo and encodes it the way the vision endpoint
// expects.
func imageDataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%s is not an image (%s)", path, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

type macroFlags struct {
	food, quantity, date      string
	kcal, protein, carbs, fat float64
}

func (m *macroFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&m.food, "food", "", "Food name")
	fs.StringVar(&m.quantity, "qty", "", "Portion, e.g. \"250 g\"")
	fs.StringVar(&m.date, "date", "", "Date (YYYY-MM-DD, default today)")
	fs.Float64Var(&m.kcal, "kcal", 0, "Calories")
	fs.Float64Var(&m.protein, "protein", 0, "Protein (g)")
	fs.Float64Var(&m.carbs, "carbs", 0, "Carbohydrates (g)")
	fs.Float64Var(&m.fat, "fat", 0, "Fat (g)")
}

// apply copies the flags the user actually passed onto log.
func (m *macroFlags) apply(fs *pflag.FlagSet, log *domain.CalorieLog) {
	if fs.Changed("food") {
		log.Food = m.food
	}
	if fs.Changed("qty") {
		log.Quantity = m.quantity
	}
	if fs.Changed("date") {
		log.Date = m.date
	}
	if fs.Changed("kcal") {
		log.Calories = m.kcal
	}
	if fs.Changed("protein") {
		log.Protein = m.protein
	}
	if fs.Changed("carbs") {
		log.Carbs = m.carbs
	}
	if fs.Changed("fat") {
		log.Fat = m.fat
	}
}

func newFoodAddCmd(app *App) *cobra.Command {
	var m macroFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a food entry with known macros",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := &domain.CalorieLog{
				Date:     m.date,
				Food:     m.food,
				Quantity: m.quantity,
				Calories: m.kcal,
				Protein:  m.protein,
				Carbs:    m.carbs,
				Fat:      m.fat,
			}
			res, err := app.Food.AddManual(cmd.Context(), log)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLogged(res.Log, res.Award))
			return nil
		},
	}
	m.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("food")
	return cmd
}

func newFoodListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list [DATE]",
		Aliases: []string{"ls"},
		Short:   "Show the entries, totals and advice for a day",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := ""
			if len(args) == 1 {
				date = args[0]
			}
			sum, err := app.Food.Summary(cmd.Context(), date)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDaySummary(sum))
			return nil
		},
	}
}

func newFoodEditCmd(app *App) *cobra.Command {
	var m macroFlags
	var lookupDate string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change an entry; only the flags you pass are updated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveLogID(ctx, app, args[0], lookupDate)
			if err != nil {
				return err
			}
			log, err := app.Food.Get(ctx, id)
			if err != nil {
				return err
			}

			m.apply(cmd.Flags(), log)
			if err := app.Food.Update(ctx, log); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s %s\n", formatter.TruncID(log.ID), log.Food, formatter.Kcal(log.Calories))
			return nil
		},
	}
	m.register(cmd.Flags())
	cmd.Flags().StringVar(&lookupDate, "on", "", "Day to search when ID is a prefix (default today)")
	return cmd
}

func newFoodRemoveCmd(app *App) *cobra.Command {
	var lookupDate string

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete an entry (full ID or the prefix shown by food list)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveLogID(ctx, app, args[0], lookupDate)
			if err != nil {
				return err
			}
			if err := app.Food.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", formatter.TruncID(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&lookupDate, "on", "", "Day to search when ID is a prefix (default today)")
	return cmd
}

// resolveLogID accepts a full calorie log ID or a unique prefix of an entry
// logged on date.
func resolveLogID(ctx context.Context, app *App, input, date string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("entry ID is required")
	}
	if _, err := app.Food.Get(ctx, input); err == nil {
		return input, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	logs, err := app.Food.ListDay(ctx, date)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, l := range logs {
		if strings.HasPrefix(l.ID, input) {
			matches = append(matches, l.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("entry %q: %w", input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("entry ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newFoodSearchCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Find foods from your history and the built-in list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := app.Search.Search(cmd.Context(), strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMatches(matches))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of results")
	return cmd
}

func newSuggestCmd(app *App) *cobra.Command {
	var date string
	var accept, shop bool

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Let the AI compose a meal that fills the rest of today's macros",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			stop := spin(cmd, app, "Maaltijd samenstellen...")
			plan, err := app.Meals.Suggest(ctx, date)
			stop()
			if err != nil {
				return aiHint(err)
			}
			fmt.Fprintln(out, formatter.FormatMealPlan(plan))

			if shop {
				if items := formatter.StoreItems(plan.Suggestion); len(items) > 0 {
					list, err := app.Profile.AddShoppingItems(ctx, items...)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "Added %d item(s) to the shopping list (%d total).\n", len(items), len(list))
				}
			}
			if accept {
				res, err := app.Meals.Accept(ctx, plan.Suggestion)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Logged %d ingredient(s).\n%s\n", len(res.Logs), formatter.FormatAward(res.Award))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day whose remaining macros to fill (default today)")
	cmd.Flags().BoolVar(&accept, "accept", false, "Log every ingredient right away")
	cmd.Flags().BoolVar(&shop, "shop", false, "Add the store ingredients to the shopping list")
	return cmd
}
