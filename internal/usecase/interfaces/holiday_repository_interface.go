package interfaces

import (
	"context"
	"time"

	"gestao_capacidade/internal/domain/entities"
)

// IHolidayRepository abstracts the holiday calendar (feriado).

type IHolidayRepository interface {
	ListByRange(ctx context.Context, start, end time.Time) ([]entities.Holiday, error)
	Save(ctx context.Context, holidays []entities.Holiday) error
}
