package cli

import (
	"fmt"
	"os"

	"gestao_capacidade/internal/infrastructure/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newImportCommand(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load collaborators, time records, estimates, vigências, holidays and display names from a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read dataset: %w", err)
			}
			ds, err := parseDataset(raw)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			st, err := a.openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := st.close(); err != nil {
					logger.L().WithError(err).Warn("[cli][import] closing storage")
				}
			}()

			if err := st.repos.Collaborators.Save(ctx, ds.collaborators()); err != nil {
				return fmt.Errorf("save collaborators: %w", err)
			}
			if err := st.repos.TimeRecords.Save(ctx, ds.timeRecords()); err != nil {
				return fmt.Errorf("save time records: %w", err)
			}
			if err := st.repos.Estimates.Save(ctx, ds.estimates()); err != nil {
				return fmt.Errorf("save estimates: %w", err)
			}
			if err := st.repos.Vigencias.Save(ctx, ds.vigencias()); err != nil {
				return fmt.Errorf("save vigencias: %w", err)
			}
			if err := st.repos.Holidays.Save(ctx, ds.holidays()); err != nil {
				return fmt.Errorf("save holidays: %w", err)
			}
			if st.repos.Catalog != nil {
				if err := st.repos.Catalog.Save(ctx, ds.catalog()); err != nil {
					return fmt.Errorf("save catalog: %w", err)
				}
			}

			logger.L().WithFields(logrus.Fields{
				"membros":         len(ds.Membros),
				"registros_tempo": len(ds.RegistrosTempo),
				"regras":          len(ds.Regras),
				"vigencias":       len(ds.Vigencias),
				"feriados":        len(ds.Feriados),
				"catalogo":        len(ds.Catalogo),
			}).Info("[cli][import] dataset loaded")
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "dataset JSON file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
