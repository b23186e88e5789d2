package interfaces

import (
	"context"

	"gestao_capacidade/internal/domain/entities"
)

// ICollaboratorRepository abstracts the collaborator directory (membro).
// List with no ids returns every collaborator.

type ICollaboratorRepository interface {
	List(ctx context.Context, ids []string) ([]entities.Collaborator, error)
	Save(ctx context.Context, collaborators []entities.Collaborator) error
}
