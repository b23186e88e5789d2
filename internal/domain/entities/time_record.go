package entities

import "time"

// TimeRecord is a realized work entry (registro de tempo).
//
// ClientID may hold several clients joined by commas ("10,20"); the record then
// counts fully for each of them. RealizedMs is optional: when zero, the
// duration is derived from StartedAt/EndedAt.
type TimeRecord struct {
	ID             string     `json:"id"`
	CollaboratorID string     `json:"usuario_id"`
	ClientID       string     `json:"cliente_id"`
	ProductID      string     `json:"produto_id"`
	TaskTypeID     string     `json:"tipo_tarefa_id"`
	TaskID         string     `json:"tarefa_id"`
	StartedAt      *time.Time `json:"data_inicio,omitempty"`
	EndedAt        *time.Time `json:"data_fim,omitempty"`
	RealizedMs     float64    `json:"tempo_realizado"`
}
