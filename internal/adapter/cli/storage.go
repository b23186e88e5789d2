package cli

import (
	"context"
	"fmt"

	"gestao_capacidade/internal/adapter/persistence/repository"
	"gestao_capacidade/internal/adapter/persistence/sqlrepository"
	"gestao_capacidade/internal/config"
	"gestao_capacidade/internal/infrastructure/database"
	"gestao_capacidade/internal/infrastructure/holidays"
	"gestao_capacidade/internal/usecase"
)

type storage struct {
	repos usecase.Repositories
	close func() error
}

// openStorage wires the repositories of the configured driver. Holidays are
// always served through the national-calendar merge.
func (a *app) openStorage(ctx context.Context) (storage, error) {
	switch a.cfg.StorageDriver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(a.cfg.SQLitePath)
		if err != nil {
			return storage{}, err
		}
		return storage{
			repos: usecase.Repositories{
				Collaborators: sqlrepository.NewCollaboratorRepository(db),
				TimeRecords:   sqlrepository.NewTimeRecordRepository(db),
				Estimates:     sqlrepository.NewEstimateRepository(db),
				Vigencias:     sqlrepository.NewVigenciaRepository(db),
				Holidays:      holidays.NewRepository(sqlrepository.NewHolidayRepository(db), a.cfg.NationalHolidays),
				Catalog:       sqlrepository.NewCatalogRepository(db),
			},
			close: func() error { return database.CloseSQLite(db) },
		}, nil

	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, a.cfg)
		if err != nil {
			return storage{}, err
		}
		t := a.cfg.Tables
		return storage{
			repos: usecase.Repositories{
				Collaborators: repository.NewCollaboratorDynamoRepository(ddb, t.Collaborators),
				TimeRecords:   repository.NewTimeRecordDynamoRepository(ddb, t.TimeRecords),
				Estimates:     repository.NewEstimateDynamoRepository(ddb, t.Estimates),
				Vigencias:     repository.NewVigenciaDynamoRepository(ddb, t.Vigencias),
				Holidays:      holidays.NewRepository(repository.NewHolidayDynamoRepository(ddb, t.Holidays), a.cfg.NationalHolidays),
				Catalog:       repository.NewCatalogDynamoRepository(ddb, t.Catalog),
			},
			close: func() error { return nil },
		}, nil

	default:
		return storage{}, fmt.Errorf("unsupported storage driver %q", a.cfg.StorageDriver)
	}
}

func (a *app) newUseCase(repos usecase.Repositories) *usecase.CapacityAnalysisUseCase {
	return usecase.NewCapacityAnalysisUseCase(repos, usecase.WithFetchConcurrency(a.cfg.FetchConcurrency))
}
