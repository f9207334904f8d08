package main

import (
	"context"

	"github.com/spf13/cobra"

	"smart-routine/config"
	"smart-routine/internal/app"
	"smart-routine/pkg/log"
)

type rootOptions struct {
	json    bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "smartroutine",
		Short: "SmartRoutine CLI",
		Long: `SmartRoutine keeps your tasks, calendar and mood in one place.
Talk to it in plain English:
  smartroutine say "add task Study math at 6pm"
  smartroutine say "what are my tasks"
  smartroutine say "I feel great today"`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVar(&opts.json, "json", false, "output JSON")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	cmd.AddCommand(
		sayCmd(opts),
		tasksCmd(opts),
		doneCmd(opts),
		rmCmd(opts),
		eventsCmd(opts),
		moodsCmd(opts),
		suggestCmd(opts),
		historyCmd(opts),
	)
	return cmd
}

// withApp loads config, wires the application and runs fn.
func withApp(ctx context.Context, opts *rootOptions, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := "error"
	if opts.verbose {
		level = cfg.Logger.Level
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		Stderr:       true,
	})

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}
