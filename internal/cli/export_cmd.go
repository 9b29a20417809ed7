package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export logs to Excel or the plan to a calendar file",
	}
	cmd.AddCommand(
		newExportFileCmd("xlsx", "courtside.xlsx",
			"Write food and training logs to a workbook (no bounds means everything)",
			func(ctx context.Context, w io.Writer, from, to string) error {
				return app.Export.WriteWorkbook(ctx, w, from, to)
			}),
		newExportFileCmd("ics", "courtside.ics",
			"Write the plan to an iCalendar file (default four weeks from today)",
			func(ctx context.Context, w io.Writer, from, to string) error {
				return app.Export.WriteCalendar(ctx, w, from, to)
			}),
	)
	return cmd
}

type exportFunc func(ctx context.Context, w io.Writer, from, to string) error

func newExportFileCmd(use, defaultOut, short string, write exportFunc) *cobra.Command {
	var from, to, out string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Render fully before touching the target so a failed export
			// never leaves a truncated file behind.
			var buf bytes.Buffer
			if err := write(cmd.Context(), &buf, from, to); err != nil {
				return err
			}
			if out == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes).\n", out, buf.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "First date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&out, "out", "o", defaultOut, "Output file, - for stdout")
	return cmd
}
