package sqlrepository

import (
	"context"
	"testing"
	"time"

	"gestao_capacidade/internal/domain/entities"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

func at(y int, m time.Month, d, h int) *time.Time {
	t := time.Date(y, m, d, h, 0, 0, 0, time.UTC)
	return &t
}

func TestCollaboratorRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCollaboratorRepository(newTestDB(t))

	require.NoError(t, repo.Save(ctx, []entities.Collaborator{
		{ID: "2", UserID: "102", Name: "Bruno"},
		{ID: "1", UserID: "101", Name: "Ana"},
	}))
	require.NoError(t, repo.Save(ctx, []entities.Collaborator{{ID: "1", UserID: "101", Name: "Ana Paula"}}))

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ana Paula", all[0].Name)

	some, err := repo.List(ctx, []string{"2", "9"})
	require.NoError(t, err)
	assert.Equal(t, []entities.Collaborator{{ID: "2", UserID: "102", Name: "Bruno"}}, some)
}

func TestTimeRecordRepository_ListByPeriod(t *testing.T) {
	ctx := context.Background()
	repo := NewTimeRecordRepository(newTestDB(t))

	require.NoError(t, repo.Save(ctx, []entities.TimeRecord{
		{ID: "before", CollaboratorID: "101", StartedAt: at(2023, 12, 30, 9), EndedAt: at(2023, 12, 30, 10)},
		{ID: "spanning", CollaboratorID: "101", StartedAt: at(2023, 12, 31, 22), EndedAt: at(2024, 1, 1, 2)},
		{ID: "inside", CollaboratorID: "102", ClientID: "10,20", StartedAt: at(2024, 1, 3, 9), EndedAt: at(2024, 1, 3, 11)},
		{ID: "open", CollaboratorID: "101", StartedAt: at(2024, 1, 7, 9)},
		{ID: "last-day", CollaboratorID: "101", StartedAt: at(2024, 1, 7, 23), RealizedMs: 600_000},
		{ID: "after", CollaboratorID: "101", StartedAt: at(2024, 1, 8, 0)},
	}))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	got, err := repo.ListByPeriod(ctx, start, end, nil)
	require.NoError(t, err)
	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"inside", "last-day", "open", "spanning"}, ids)
	assert.Equal(t, "10,20", got[0].ClientID)
	assert.Nil(t, got[2].EndedAt)

	only, err := repo.ListByPeriod(ctx, start, end, []string{"102"})
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, "inside", only[0].ID)
}

func TestTimeRecordRepository_SaveAssignsIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewTimeRecordRepository(newTestDB(t))

	require.NoError(t, repo.Save(ctx, []entities.TimeRecord{
		{CollaboratorID: "101", StartedAt: at(2024, 1, 2, 9)},
		{CollaboratorID: "101", StartedAt: at(2024, 1, 2, 10)},
	}))
	got, err := repo.ListByPeriod(ctx, *at(2024, 1, 1, 0), *at(2024, 1, 31, 0), nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestEstimateRepository_ListByPeriod(t *testing.T) {
	ctx := context.Background()
	repo := NewEstimateRepository(newTestDB(t))

	require.NoError(t, repo.Save(ctx, []entities.EstimateRecord{
		{ID: "a", ResponsibleID: "1", StartDate: at(2024, 1, 1, 0), EndDate: at(2024, 1, 5, 0), EstimatedPerDay: 1},
		{ID: "b", ResponsibleID: "2", EstimatedPerDay: 2},
		{ID: "c", ResponsibleID: "1", StartDate: at(2024, 2, 1, 0), EstimatedPerDay: 3},
		{ID: "d", ResponsibleID: "1", EndDate: at(2023, 12, 31, 0), EstimatedPerDay: 4},
	}))

	got, err := repo.ListByPeriod(ctx, *at(2024, 1, 5, 0), *at(2024, 1, 31, 0), nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Nil(t, got[1].StartDate)

	mine, err := repo.ListByPeriod(ctx, *at(2024, 1, 1, 0), *at(2024, 1, 31, 0), []string{"2"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 2.0, mine[0].EstimatedPerDay)
}

func TestVigenciaRepository_ListByCollaborator(t *testing.T) {
	ctx := context.Background()
	repo := NewVigenciaRepository(newTestDB(t))
	hours := 6.0

	require.NoError(t, repo.Save(ctx, []entities.Vigencia{
		{CollaboratorID: "1", EffectiveFrom: *at(2023, 6, 1, 0), HourlyCost: "20,00"},
		{CollaboratorID: "1", EffectiveFrom: *at(2023, 1, 1, 0), HourlyCost: "14,15", ContractedHoursPerDay: &hours},
		{CollaboratorID: "1", EffectiveFrom: *at(2024, 3, 1, 0), HourlyCost: "30,00"},
		{CollaboratorID: "2", EffectiveFrom: *at(2023, 1, 1, 0), HourlyCost: "10"},
	}))

	got, err := repo.ListByCollaborator(ctx, "1", *at(2024, 1, 31, 0))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "20,00", got[0].HourlyCost)
	assert.Equal(t, "14,15", got[1].HourlyCost)
	require.NotNil(t, got[1].ContractedHoursPerDay)
	assert.Equal(t, 6.0, *got[1].ContractedHoursPerDay)
}

func TestHolidayRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewHolidayRepository(newTestDB(t))

	require.NoError(t, repo.Save(ctx, []entities.Holiday{
		{Date: *at(2024, 1, 25, 0), Name: "Aniversário de São Paulo"},
		{Date: *at(2024, 7, 9, 0), Name: "Revolução Constitucionalista"},
		{Date: *at(2024, 1, 1, 0), Name: "Ano Novo"},
	}))

	got, err := repo.ListByRange(ctx, *at(2024, 1, 1, 0), *at(2024, 1, 31, 0))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ano Novo", got[0].Name)
	assert.Equal(t, *at(2024, 1, 25, 0), got[1].Date)
}

func TestCatalogRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(newTestDB(t))

	require.NoError(t, repo.Save(ctx, []entities.CatalogEntry{
		{Kind: entities.CatalogCliente, ID: "10", Name: "Acme"},
		{Kind: entities.CatalogCliente, ID: "20", Name: "Globex"},
		{Kind: entities.CatalogTarefa, ID: "10", Name: "Revisão"},
	}))
	require.NoError(t, repo.Save(ctx, []entities.CatalogEntry{{Kind: entities.CatalogCliente, ID: "10", Name: "Acme Ltda"}}))

	clients, err := repo.ListNames(ctx, entities.CatalogCliente, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"10": "Acme Ltda", "20": "Globex"}, clients)

	tasks, err := repo.ListNames(ctx, entities.CatalogTarefa, []string{"10", "99"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"10": "Revisão"}, tasks)
}
