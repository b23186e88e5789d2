package sqlrepository

import (
	"context"
	"time"

	"gestao_capacidade/internal/domain/entities"
	"gestao_capacidade/internal/usecase/interfaces"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const batchSize = 100

func upsert[T any](ctx context.Context, db *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(rows, batchSize).Error
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CollaboratorRepository reads the collaborator directory through gorm.
type CollaboratorRepository struct{ db *gorm.DB }

var _ interfaces.ICollaboratorRepository = (*CollaboratorRepository)(nil)

func NewCollaboratorRepository(db *gorm.DB) *CollaboratorRepository {
	return &CollaboratorRepository{db: db}
}

func (r *CollaboratorRepository) List(ctx context.Context, ids []string) ([]entities.Collaborator, error) {
	q := r.db.WithContext(ctx).Order("id")
	if len(ids) > 0 {
		q = q.Where("id IN ?", ids)
	}
	var rows []collaboratorModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Collaborator, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.Collaborator{ID: m.ID, UserID: m.UserID, Name: m.Name})
	}
	return out, nil
}

func (r *CollaboratorRepository) Save(ctx context.Context, collaborators []entities.Collaborator) error {
	rows := make([]collaboratorModel, 0, len(collaborators))
	for _, c := range collaborators {
		rows = append(rows, collaboratorModel{ID: c.ID, UserID: c.UserID, Name: c.Name})
	}
	return upsert(ctx, r.db, rows)
}

// TimeRecordRepository persists realized work through gorm.
type TimeRecordRepository struct{ db *gorm.DB }

var _ interfaces.ITimeRecordRepository = (*TimeRecordRepository)(nil)

func NewTimeRecordRepository(db *gorm.DB) *TimeRecordRepository {
	return &TimeRecordRepository{db: db}
}

func (r *TimeRecordRepository) ListByPeriod(ctx context.Context, start, end time.Time, userIDs []string) ([]entities.TimeRecord, error) {
	q := r.db.WithContext(ctx).
		Where("data_inicio <= ?", endOfDay(end)).
		Where("(data_fim IS NULL OR data_fim >= ?)", startOfDay(start)).
		Order("id")
	if len(userIDs) > 0 {
		q = q.Where("usuario_id IN ?", userIDs)
	}
	var rows []timeRecordModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.TimeRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *TimeRecordRepository) Save(ctx context.Context, records []entities.TimeRecord) error {
	rows := make([]timeRecordModel, 0, len(records))
	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		rows = append(rows, toTimeRecordModel(rec))
	}
	return upsert(ctx, r.db, rows)
}

// EstimateRepository persists estimate rules through gorm.
type EstimateRepository struct{ db *gorm.DB }

var _ interfaces.IEstimateRepository = (*EstimateRepository)(nil)

func NewEstimateRepository(db *gorm.DB) *EstimateRepository {
	return &EstimateRepository{db: db}
}

func (r *EstimateRepository) ListByPeriod(ctx context.Context, start, end time.Time, responsibleIDs []string) ([]entities.EstimateRecord, error) {
	q := r.db.WithContext(ctx).
		Where("(data_inicio IS NULL OR data_inicio <= ?)", endOfDay(end)).
		Where("(data_fim IS NULL OR data_fim >= ?)", startOfDay(start)).
		Order("id")
	if len(responsibleIDs) > 0 {
		q = q.Where("responsavel_id IN ?", responsibleIDs)
	}
	var rows []estimateModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.EstimateRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *EstimateRepository) Save(ctx context.Context, estimates []entities.EstimateRecord) error {
	rows := make([]estimateModel, 0, len(estimates))
	for _, e := range estimates {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		rows = append(rows, toEstimateModel(e))
	}
	return upsert(ctx, r.db, rows)
}

// VigenciaRepository persists employment terms through gorm.
type VigenciaRepository struct{ db *gorm.DB }

var _ interfaces.IVigenciaRepository = (*VigenciaRepository)(nil)

func NewVigenciaRepository(db *gorm.DB) *VigenciaRepository {
	return &VigenciaRepository{db: db}
}

func (r *VigenciaRepository) ListByCollaborator(ctx context.Context, collaboratorID string, asOf time.Time) ([]entities.Vigencia, error) {
	var rows []vigenciaModel
	err := r.db.WithContext(ctx).
		Where("membro_id = ? AND dt_vigencia <= ?", collaboratorID, endOfDay(asOf)).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Vigencia, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

// Save appends; vigências are history and never overwritten.
func (r *VigenciaRepository) Save(ctx context.Context, vigencias []entities.Vigencia) error {
	if len(vigencias) == 0 {
		return nil
	}
	rows := make([]vigenciaModel, 0, len(vigencias))
	for _, v := range vigencias {
		rows = append(rows, vigenciaModel{
			CollaboratorID:        v.CollaboratorID,
			EffectiveFrom:         v.EffectiveFrom.UTC(),
			HourlyCost:            v.HourlyCost,
			ContractedHoursPerDay: v.ContractedHoursPerDay,
			ContractTypeID:        v.ContractTypeID,
		})
	}
	return r.db.WithContext(ctx).CreateInBatches(rows, batchSize).Error
}

// HolidayRepository persists the stored holiday calendar through gorm.
type HolidayRepository struct{ db *gorm.DB }

var _ interfaces.IHolidayRepository = (*HolidayRepository)(nil)

func NewHolidayRepository(db *gorm.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

func (r *HolidayRepository) ListByRange(ctx context.Context, start, end time.Time) ([]entities.Holiday, error) {
	var rows []holidayModel
	err := r.db.WithContext(ctx).
		Where("data BETWEEN ? AND ?", startOfDay(start), endOfDay(end)).
		Order("data").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Holiday, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.Holiday{Date: m.Date.UTC(), Name: m.Name})
	}
	return out, nil
}

func (r *HolidayRepository) Save(ctx context.Context, holidays []entities.Holiday) error {
	rows := make([]holidayModel, 0, len(holidays))
	for _, h := range holidays {
		rows = append(rows, holidayModel{Date: startOfDay(h.Date), Name: h.Name})
	}
	return upsert(ctx, r.db, rows)
}

// CatalogRepository keeps the display names of registry identifiers.
type CatalogRepository struct{ db *gorm.DB }

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListNames(ctx context.Context, kind string, ids []string) (map[string]string, error) {
	q := r.db.WithContext(ctx).Where("tipo = ?", kind)
	if len(ids) > 0 {
		q = q.Where("id IN ?", ids)
	}
	var rows []catalogModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, m := range rows {
		out[m.ID] = m.Name
	}
	return out, nil
}

func (r *CatalogRepository) Save(ctx context.Context, entries []entities.CatalogEntry) error {
	rows := make([]catalogModel, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, catalogModel{Kind: e.Kind, ID: e.ID, Name: e.Name})
	}
	return upsert(ctx, r.db, rows)
}
