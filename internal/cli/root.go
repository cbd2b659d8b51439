// Package cli builds the scrollpage, more and scroll commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"scrollpage/internal/config"
	"scrollpage/internal/content"
	"scrollpage/internal/ui/input/types"
)

// ErrNoInput means neither stdin nor an argument supplied content
var ErrNoInput = content.ErrNoInput

// Version is set via ldflags at build time
var Version = "dev"

// App holds the process streams a command works with
type App struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr io.Writer
}

// Options pick the flavour of command being built
type Options struct {
	Name string
	// Mode is fixed for the more and scroll binaries; Flexible adds --mode,
	// --keys and --init-config.
	Mode     types.Mode
	Flexible bool
}

type flags struct {
	mode       string
	backend    string
	configPath string
	logFile    string
	keys       bool
	initConfig bool
	force      bool
}

// NewRootCommand creates the command for one binary
func NewRootCommand(app *App, opts Options) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   opts.Name + " [input]",
		Short: "Page through text in the terminal",
		Long: fmt.Sprintf(`%s pages through text that is piped in, read from a file, or given
as the argument itself.

  more    prints a page at a time below the prompt (Enter: next page,
          Down: next line, q/Esc: quit)
  scroll  shows a full-screen viewport with a scrollbar (arrows, PgUp/PgDn,
          Home/End, q/Esc: quit)`, opts.Name),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Every positional argument is input, so these are flags
			switch {
			case f.keys:
				return showKeyReference(cmd, app, args)
			case f.initConfig:
				return writeDefaultConfig(cmd, f, args)
			}

			mode := opts.Mode
			if opts.Flexible {
				m, err := parseMode(f.mode)
				if err != nil {
					return err
				}
				mode = m
			}
			return run(cmd.Context(), app, f, mode, args)
		},
	}

	if opts.Flexible {
		cmd.Flags().StringVarP(&f.mode, "mode", "m", types.ModeScroller.String(), "pager mode: more or scroll")
	}
	cmd.Flags().StringVarP(&f.backend, "backend", "b", "", "scroller backend: tea, tcell or ansi (default from config)")
	cmd.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&f.logFile, "log-file", "", "write debug logs to this file")

	if opts.Flexible {
		cmd.Flags().BoolVar(&f.keys, "keys", false, "show the key reference and exit")
		cmd.Flags().BoolVar(&f.initConfig, "init-config", false, "write the default config file and exit")
		cmd.Flags().BoolVarP(&f.force, "force", "f", false, "with --init-config, overwrite an existing file")
		cmd.MarkFlagsMutuallyExclusive("keys", "init-config")
	}
	return cmd
}

// Main runs a binary and returns its exit code
func Main(app *App, opts Options, args []string) int {
	cmd := NewRootCommand(app, opts)
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(app.Stdout)
	cmd.SetErr(app.Stderr)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, ErrNoInput) {
			fmt.Fprintf(app.Stderr, "Usage: %s [input] (input can be a filename or text, or pipe input)\n", opts.Name)
			return 1
		}
		fmt.Fprintf(app.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseMode(s string) (types.Mode, error) {
	switch s {
	case types.ModePager.String():
		return types.ModePager, nil
	case types.ModeScroller.String():
		return types.ModeScroller, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want %q or %q)", s, types.ModePager, types.ModeScroller)
}

func loadConfig(f *flags) (*config.Config, error) {
	svc := config.NewConfigService()
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = svc.LoadFromPath(f.configPath)
	} else {
		cfg, err = svc.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if f.backend != "" {
		if !config.ValidBackend(f.backend) {
			return nil, fmt.Errorf("unknown backend %q", f.backend)
		}
		cfg.Scroller.Backend = f.backend
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	return cfg, nil
}
