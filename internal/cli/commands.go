package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scrollpage/internal/config"
	"scrollpage/internal/terminal"
	"scrollpage/internal/ui"
)

// showKeys is swapped in tests
var showKeys = ui.ShowKeysInPager

var errUnexpectedInput = errors.New("takes no input")

func showKeyReference(cmd *cobra.Command, app *App, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("--keys %w", errUnexpectedInput)
	}
	reference := ui.NewHelpRenderer(nil).RenderKeyReference()
	if !terminal.IsTerminal(app.Stdout) {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), reference)
		return err
	}
	return showKeys(reference)
}

func writeDefaultConfig(cmd *cobra.Command, f *flags, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("--init-config %w", errUnexpectedInput)
	}
	path := f.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	if _, err := os.Stat(path); err == nil && !f.force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	if err := config.NewConfigServiceAt(path).Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
