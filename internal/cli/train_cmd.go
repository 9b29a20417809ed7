package cli

import (
	"fmt"

	"github.com/alexanderramin/courtside/internal/cli/formatter"
	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/spf13/cobra"
)

func newTrainCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "train",
		Aliases: []string{"training"},
		Short:   "Log workouts and get a fuel analysis",
	}
	cmd.AddCommand(
		newTrainLogCmd(app),
		newTrainListCmd(app),
		newTrainRemoveCmd(app),
	)
	return cmd
}

func newTrainLogCmd(app *App) *cobra.Command {
	var typ, date, notes string
	var rating, duration int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a workout; the coach then rates how well you fuelled it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := &domain.TrainingLog{
				Date:        date,
				Type:        typ,
				Rating:      rating,
				DurationMin: duration,
				Notes:       notes,
			}
			stop := spin(cmd, app, "Fuel analyse...")
			res, err := app.Training.Log(cmd.Context(), log)
			stop()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTrainingResult(res))
			if res.FuelErr != nil {
				app.logger().WarnContext(cmd.Context(), "fuel_analysis_failed", "error", res.FuelErr.Error())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&typ, "type", "Training", "Workout type, e.g. Training, Wedstrijd, Kracht")
	cmd.Flags().IntVar(&rating, "rating", 3, "How it felt, 1-5")
	cmd.Flags().IntVar(&duration, "duration", 90, "Duration in minutes")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	return cmd
}

func newTrainListCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List workouts, all or within --from/--to",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := app.Training.List(cmd.Context(), from, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTrainingLogs(logs))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "First date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last date (YYYY-MM-DD)")
	return cmd
}

func newTrainRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a workout",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Training.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", formatter.TruncID(args[0]))
			return nil
		},
	}
}
