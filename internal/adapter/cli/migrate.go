package cli

import (
	"fmt"

	"gestao_capacidade/internal/adapter/persistence/sqlrepository"
	"gestao_capacidade/internal/config"
	"gestao_capacidade/internal/infrastructure/database"
	"gestao_capacidade/internal/infrastructure/logger"

	"github.com/spf13/cobra"
)

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the storage tables of the configured driver",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			switch a.cfg.StorageDriver {
			case config.DriverSQLite:
				db, err := database.OpenSQLite(a.cfg.SQLitePath)
				if err != nil {
					return err
				}
				defer database.CloseSQLite(db) //nolint:errcheck
				if err := sqlrepository.AutoMigrate(db); err != nil {
					return fmt.Errorf("migrate sqlite: %w", err)
				}
			case config.DriverDynamoDB:
				ddb, err := database.ConnectDynamoDB(ctx, a.cfg)
				if err != nil {
					return err
				}
				if err := database.EnsureDynamoTables(ctx, ddb, a.cfg.Tables); err != nil {
					return err
				}
			}
			logger.L().WithField("driver", a.cfg.StorageDriver).Info("[cli][migrate] done")
			return nil
		},
	}
}
