package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var errNoReminder = errors.New("no Telegram bot configured (set COURTSIDE_TELEGRAM_TOKEN and COURTSIDE_TELEGRAM_CHAT_ID)")

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the built-in recipes, circuit, food list and schedule changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applied, err := app.Seed.Seed(cmd.Context())
			if err != nil {
				return err
			}
			if applied {
				fmt.Fprintln(cmd.OutOrStdout(), "Built-in data loaded.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Built-in data is already up to date.")
			}
			return nil
		},
	}
}

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and, when configured, the daily Telegram briefing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Server == nil {
				return errors.New("no HTTP server configured")
			}
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				return app.Server.ListenAndServe(ctx, addr)
			})
			if app.Reminder != nil {
				g.Go(func() error {
					return app.Reminder.Run(ctx)
				})
			} else {
				app.logger().InfoContext(ctx, "reminder_disabled")
			}
			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", app.Addr, "Listen address")
	return cmd
}

func newRemindCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Send today's briefing to Telegram now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Reminder == nil {
				return errNoReminder
			}
			if err := app.Reminder.SendNow(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Briefing sent. Next scheduled: %s\n", app.Reminder.Next().Format("2006-01-02 15:04"))
			return nil
		},
	}
}
