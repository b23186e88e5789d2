package sqlrepository

import (
	"time"

	"gestao_capacidade/internal/domain/entities"

	"gorm.io/gorm"
)

type collaboratorModel struct {
	ID     string `gorm:"primaryKey;column:id"`
	UserID string `gorm:"column:usuario_id;index"`
	Name   string `gorm:"column:nome"`
}

func (collaboratorModel) TableName() string { return "membro" }

type timeRecordModel struct {
	ID             string     `gorm:"primaryKey;column:id"`
	UserID         string     `gorm:"column:usuario_id;index"`
	ClientID       string     `gorm:"column:cliente_id"`
	ProductID      string     `gorm:"column:produto_id"`
	TaskTypeID     string     `gorm:"column:tipo_tarefa_id"`
	TaskID         string     `gorm:"column:tarefa_id"`
	StartedAt      *time.Time `gorm:"column:data_inicio;index"`
	EndedAt        *time.Time `gorm:"column:data_fim"`
	TempoRealizado float64    `gorm:"column:tempo_realizado"`
}

func (timeRecordModel) TableName() string { return "registro_tempo" }

type estimateModel struct {
	ID               string     `gorm:"primaryKey;column:id"`
	ResponsibleID    string     `gorm:"column:responsavel_id;index"`
	ClientID         string     `gorm:"column:cliente_id"`
	ProductID        string     `gorm:"column:produto_id"`
	TaskTypeID       string     `gorm:"column:tipo_tarefa_id"`
	TaskID           string     `gorm:"column:tarefa_id"`
	StartDate        *time.Time `gorm:"column:data_inicio"`
	EndDate          *time.Time `gorm:"column:data_fim"`
	TempoEstimadoDia float64    `gorm:"column:tempo_estimado_dia"`
}

func (estimateModel) TableName() string { return "tempo_estimado_regra" }

// vigenciaModel keeps an autoincrement id so ListByCollaborator can return
// rows in insertion order.
type vigenciaModel struct {
	ID                    uint      `gorm:"primaryKey;autoIncrement"`
	CollaboratorID        string    `gorm:"column:membro_id;index:idx_vigencia_membro_dt"`
	EffectiveFrom         time.Time `gorm:"column:dt_vigencia;index:idx_vigencia_membro_dt"`
	HourlyCost            string    `gorm:"column:custo_hora"`
	ContractedHoursPerDay *float64  `gorm:"column:horascontratadasdia"`
	ContractTypeID        string    `gorm:"column:tipocontratoid"`
}

func (vigenciaModel) TableName() string { return "custo_membro_vigencia" }

type holidayModel struct {
	Date time.Time `gorm:"primaryKey;column:data"`
	Name string    `gorm:"column:nome"`
}

func (holidayModel) TableName() string { return "feriado" }

type catalogModel struct {
	Kind string `gorm:"primaryKey;column:tipo"`
	ID   string `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:nome"`
}

func (catalogModel) TableName() string { return "catalogo" }

// AutoMigrate creates or updates every table the repositories read.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&collaboratorModel{},
		&timeRecordModel{},
		&estimateModel{},
		&vigenciaModel{},
		&holidayModel{},
		&catalogModel{},
	)
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func toTimeRecordModel(r entities.TimeRecord) timeRecordModel {
	return timeRecordModel{
		ID:             r.ID,
		UserID:         r.CollaboratorID,
		ClientID:       r.ClientID,
		ProductID:      r.ProductID,
		TaskTypeID:     r.TaskTypeID,
		TaskID:         r.TaskID,
		StartedAt:      utc(r.StartedAt),
		EndedAt:        utc(r.EndedAt),
		TempoRealizado: r.RealizedMs,
	}
}

func (m timeRecordModel) toEntity() entities.TimeRecord {
	return entities.TimeRecord{
		ID:             m.ID,
		CollaboratorID: m.UserID,
		ClientID:       m.ClientID,
		ProductID:      m.ProductID,
		TaskTypeID:     m.TaskTypeID,
		TaskID:         m.TaskID,
		StartedAt:      utc(m.StartedAt),
		EndedAt:        utc(m.EndedAt),
		RealizedMs:     m.TempoRealizado,
	}
}

func toEstimateModel(e entities.EstimateRecord) estimateModel {
	return estimateModel{
		ID:               e.ID,
		ResponsibleID:    e.ResponsibleID,
		ClientID:         e.ClientID,
		ProductID:        e.ProductID,
		TaskTypeID:       e.TaskTypeID,
		TaskID:           e.TaskID,
		StartDate:        utc(e.StartDate),
		EndDate:          utc(e.EndDate),
		TempoEstimadoDia: e.EstimatedPerDay,
	}
}

func (m estimateModel) toEntity() entities.EstimateRecord {
	return entities.EstimateRecord{
		ID:              m.ID,
		ResponsibleID:   m.ResponsibleID,
		ClientID:        m.ClientID,
		ProductID:       m.ProductID,
		TaskTypeID:      m.TaskTypeID,
		TaskID:          m.TaskID,
		StartDate:       utc(m.StartDate),
		EndDate:         utc(m.EndDate),
		EstimatedPerDay: m.TempoEstimadoDia,
	}
}

func (m vigenciaModel) toEntity() entities.Vigencia {
	return entities.Vigencia{
		CollaboratorID:        m.CollaboratorID,
		EffectiveFrom:         m.EffectiveFrom.UTC(),
		HourlyCost:            m.HourlyCost,
		ContractedHoursPerDay: m.ContractedHoursPerDay,
		ContractTypeID:        m.ContractTypeID,
	}
}
