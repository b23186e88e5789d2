package interfaces

import (
	"context"
	"time"

	"gestao_capacidade/internal/domain/entities"
)

// IVigenciaRepository abstracts persistence for effective-dated employment
// terms (custo_membro_vigencia).

type IVigenciaRepository interface {
	// ListByCollaborator returns the collaborator's vigências effective on or
	// before asOf, in storage order.
	ListByCollaborator(ctx context.Context, collaboratorID string, asOf time.Time) ([]entities.Vigencia, error)
	Save(ctx context.Context, vigencias []entities.Vigencia) error
}
