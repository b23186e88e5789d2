package interfaces

import (
	"context"

	"gestao_capacidade/internal/domain/entities"
)

// ICatalogRepository resolves registry identifiers to display names.
// ListNames with no ids returns every name of kind.
type ICatalogRepository interface {
	ListNames(ctx context.Context, kind string, ids []string) (map[string]string, error)
	Save(ctx context.Context, entries []entities.CatalogEntry) error
}
