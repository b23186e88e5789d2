package response

import (
	"time"

	"gestao_capacidade/internal/domain/capacity"
	"gestao_capacidade/internal/domain/entities"
)

type EstimateRuleResponse struct {
	ID                 string  `json:"id"`
	ResponsavelID      string  `json:"responsavel_id"`
	ClienteID          string  `json:"cliente_id"`
	ProdutoID          string  `json:"produto_id"`
	TipoTarefaID       string  `json:"tipo_tarefa_id,omitempty"`
	TarefaID           string  `json:"tarefa_id"`
	DataInicio         *string `json:"data_inicio"`
	DataFim            *string `json:"data_fim"`
	TempoEstimadoDia   float64 `json:"tempo_estimado_dia"`
	TempoEstimadoDiaMs int64   `json:"tempo_estimado_dia_ms"`
}

type EstimateRulesResponse struct {
	Success bool                   `json:"success"`
	Count   int                    `json:"count"`
	Data    []EstimateRuleResponse `json:"data"`
}

func FromEstimateRule(e entities.EstimateRecord) EstimateRuleResponse {
	return EstimateRuleResponse{
		ID:                 e.ID,
		ResponsavelID:      e.ResponsibleID,
		ClienteID:          e.ClientID,
		ProdutoID:          e.ProductID,
		TipoTarefaID:       e.TaskTypeID,
		TarefaID:           e.TaskID,
		DataInicio:         optionalDate(e.StartDate),
		DataFim:            optionalDate(e.EndDate),
		TempoEstimadoDia:   e.EstimatedPerDay,
		TempoEstimadoDiaMs: capacity.EstimatedPerDayMs(e.EstimatedPerDay),
	}
}

func FromEstimateRules(rules []entities.EstimateRecord) EstimateRulesResponse {
	data := make([]EstimateRuleResponse, 0, len(rules))
	for _, r := range rules {
		data = append(data, FromEstimateRule(r))
	}
	return EstimateRulesResponse{Success: true, Count: len(data), Data: data}
}

func optionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := capacity.FormatDate(*t)
	return &s
}
