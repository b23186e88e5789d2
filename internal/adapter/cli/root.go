package cli

import (
	"context"

	"gestao_capacidade/internal/config"
	"gestao_capacidade/internal/infrastructure/logger"

	"github.com/spf13/cobra"
)

type app struct {
	cfg config.Config
}

// NewRootCommand builds the command tree. Without a subcommand it serves
// the HTTP API.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "capacidade",
		Short:        "Capacity analysis (gestão de capacidade) service",
		Long:         "Compares estimated and realized hours against collaborator availability,\nnested by client, product, task type, task and collaborator.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.Init(logger.Options{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
				File:   cfg.LogFile,
				Output: cmd.ErrOrStderr(),
			})
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}

	root.AddCommand(
		newServeCommand(a),
		newAnalyzeCommand(a),
		newMigrateCommand(a),
		newImportCommand(a),
	)
	return root
}

// Execute runs the root command with a background context.
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}
