package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"config"},
		Short:   "Read and write stored settings",
	}
	cmd.AddCommand(
		newSettingsListCmd(app),
		newSettingsGetCmd(app),
		newSettingsSetCmd(app),
		newSettingsRemoveCmd(app),
		newSettingsInitCmd(app),
	)
	return cmd
}

func newSettingsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored setting keys",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := app.Settings.Keys(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(keys) == 0 {
				fmt.Fprintln(out, "No settings stored.")
				return nil
			}
			for _, k := range keys {
				fmt.Fprintln(out, k)
			}
			return nil
		},
	}
}

func newSettingsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print one setting as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			v, ok, err := app.Settings.Get(cmd.Context(), key)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				return fmt.Errorf("setting %q is not set", key)
			}
			if key == domain.SettingAPIKey {
				fmt.Fprintln(out, maskKey(fmt.Sprint(v)))
				return nil
			}
			data, err := json.Marshal(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		},
	}
}

// maskKey keeps the last four characters of a secret.
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", 8) + key[len(key)-4:]
}

func newSettingsSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Store a setting; VALUE is parsed as JSON, otherwise stored as text",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := parseSettingValue(strings.Join(args[1:], " "))
			if err := app.Settings.Set(cmd.Context(), key, value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s.\n", key)
			return nil
		},
	}
}

func parseSettingValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v
	}
	return s
}

func newSettingsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm KEY",
		Aliases: []string{"remove"},
		Short:   "Delete a setting",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", args[0])
			return nil
		},
	}
}

// setupInput is what the init form collects. Blank fields are left alone.
type setupInput struct {
	APIKey   string
	Height   string
	Weight   string
	Calories string
	Protein  string
	Carbs    string
	Fat      string
	Generate bool
}

func newSettingsInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Fill in the API key, body stats and goals in a form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("settings init needs a terminal; use `courtside settings set` instead")
			}
			ctx := cmd.Context()
			in, err := loadSetupInput(ctx, app)
			if err != nil {
				return err
			}
			if err := setupForm(&in).RunWithContext(ctx); err != nil {
				return err
			}
			return applySetup(cmd, app, in)
		},
	}
}

func loadSetupInput(ctx context.Context, app *App) (setupInput, error) {
	p, err := app.Profile.Profile(ctx)
	if err != nil {
		return setupInput{}, err
	}
	in := setupInput{
		Calories: formatNumber(p.Goals.Calories),
		Protein:  formatNumber(p.Goals.Protein),
		Carbs:    formatNumber(p.Goals.Carbs),
		Fat:      formatNumber(p.Goals.Fat),
	}
	if p.HeightCm > 0 {
		in.Height = formatNumber(p.HeightCm)
	}
	if p.WeightKg > 0 {
		in.Weight = formatNumber(p.WeightKg)
	}
	return in, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func setupForm(in *setupInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("OpenAI API key").
				Description("Leave blank to keep the current key").
				EchoMode(huh.EchoModePassword).
				Value(&in.APIKey),
		),
		huh.NewGroup(
			numberInput("Lengte (cm)", "185", &in.Height),
			numberInput("Gewicht (kg)", "78", &in.Weight),
		),
		huh.NewGroup(
			numberInput("Calorieën per dag", "2800", &in.Calories),
			numberInput("Eiwit (g)", "160", &in.Protein),
			numberInput("Koolhydraten (g)", "350", &in.Carbs),
			numberInput("Vet (g)", "80", &in.Fat),
			huh.NewConfirm().
				Title("Doelen door de AI laten berekenen?").
				Value(&in.Generate),
		),
	).WithTheme(courtsideHuhTheme()).WithShowHelp(false)
}

// applySetup saves the filled-in fields of in.
func applySetup(cmd *cobra.Command, app *App, in setupInput) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if key := strings.TrimSpace(in.APIKey); key != "" {
		if err := app.Profile.SetAPIKey(ctx, key); err != nil {
			return err
		}
		fmt.Fprintln(out, "API key saved.")
	}

	if strings.TrimSpace(in.Height) != "" && strings.TrimSpace(in.Weight) != "" {
		h, err := parseNumber(in.Height)
		if err != nil {
			return fmt.Errorf("height: %w", err)
		}
		w, err := parseNumber(in.Weight)
		if err != nil {
			return fmt.Errorf("weight: %w", err)
		}
		if err := app.Profile.SetBodyStats(ctx, h, w); err != nil {
			return err
		}
	}

	goals, err := app.Profile.Goals(ctx)
	if err != nil {
		return err
	}
	for _, f := range []struct {
		raw string
		dst *float64
	}{
		{in.Calories, &goals.Calories},
		{in.Protein, &goals.Protein},
		{in.Carbs, &goals.Carbs},
		{in.Fat, &goals.Fat},
	} {
		if strings.TrimSpace(f.raw) == "" {
			continue
		}
		v, err := parseNumber(f.raw)
		if err != nil {
			return fmt.Errorf("goal %q: %w", f.raw, err)
		}
		*f.dst = v
	}
	if err := app.Profile.SetGoals(ctx, goals); err != nil {
		return err
	}

	if in.Generate {
		stop := spin(cmd, app, "Doelen berekenen...")
		g, err := app.Profile.GenerateGoals(ctx)
		stop()
		if err != nil {
			return aiHint(err)
		}
		goals = *g
	}
	fmt.Fprintln(out, formatGoals(goals))
	return nil
}
