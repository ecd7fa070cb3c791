package main

import (
	"github.com/spf13/cobra"

	"github.com/alem-hub/data-abstraction/config"
	"github.com/alem-hub/data-abstraction/pkg/logger"
)

// app carries the configuration once the root command has loaded it.
// The logger travels on the command context.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "barrier",
		Short:         "Data abstraction barrier examples and law checker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg

			opts := logger.DefaultOptions()
			opts.Output = cmd.ErrOrStderr()
			opts.Level = logger.ParseLevel(cfg.Observability.LogLevel)
			opts.Format = logger.Format(cfg.Observability.LogFormat)

			log := logger.New(opts).With(
				logger.String("app", cfg.App.Name),
				logger.String("env", string(cfg.App.Environment)),
			)
			cmd.SetContext(logger.WithContext(cmd.Context(), log))
			return nil
		},
	}

	cmd.AddCommand(newDemoCmd(a), newCheckCmd(a))
	return cmd
}
