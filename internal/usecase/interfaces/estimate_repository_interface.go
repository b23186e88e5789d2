package interfaces

import (
	"context"
	"time"

	"gestao_capacidade/internal/domain/entities"
)

// IEstimateRepository abstracts persistence for estimate rules
// (tempo_estimado_regra).
//
// ListByPeriod returns the rules whose [data_inicio, data_fim] range overlaps
// [start, end]. A rule without data_fim is open-ended. responsibleIDs narrows
// the result to those responsáveis; empty means every responsável.

type IEstimateRepository interface {
	ListByPeriod(ctx context.Context, start, end time.Time, responsibleIDs []string) ([]entities.EstimateRecord, error)
	Save(ctx context.Context, estimates []entities.EstimateRecord) error
}
