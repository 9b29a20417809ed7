package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/courtside/internal/cli/formatter"
	"github.com/alexanderramin/courtside/internal/llm"
	"github.com/spf13/cobra"
)

// spin shows a spinner on stderr while an AI call runs, only in a terminal.
func spin(cmd *cobra.Command, app *App, message string) func() {
	if !app.interactive() {
		return func() {}
	}
	return formatter.StartSpinner(cmd.ErrOrStderr(), message)
}

// aiHint adds the next step to configuration errors from the AI gateway.
func aiHint(err error) error {
	var cfg *llm.ConfigError
	if !errors.As(err, &cfg) {
		return err
	}
	switch {
	case errors.Is(err, llm.ErrMissingAPIKey):
		return fmt.Errorf("%w\nset a key with `courtside settings init` or `courtside settings set %s <key>`", err, cfg.Setting)
	case errors.Is(err, llm.ErrDisabled):
		return fmt.Errorf("%w\nunset COURTSIDE_AI_ENABLED to turn AI features back on", err)
	default:
		return err
	}
}
