package entities

import "time"

// EstimateRecord is a planning rule (regra de tempo estimado): the responsible
// collaborator is expected to spend EstimatedPerDay on the task every day of
// [StartDate, EndDate].
//
// EstimatedPerDay follows the legacy encoding: values in (0, 1000) are hours,
// anything else is milliseconds.
type EstimateRecord struct {
	ID              string     `json:"id"`
	ResponsibleID   string     `json:"responsavel_id"`
	ClientID        string     `json:"cliente_id"`
	ProductID       string     `json:"produto_id"`
	TaskTypeID      string     `json:"tipo_tarefa_id"`
	TaskID          string     `json:"tarefa_id"`
	StartDate       *time.Time `json:"data_inicio,omitempty"`
	EndDate         *time.Time `json:"data_fim,omitempty"`
	EstimatedPerDay float64    `json:"tempo_estimado_dia"`
}
