package interfaces

import (
	"context"
	"time"

	"gestao_capacidade/internal/domain/entities"
)

// ITimeRecordRepository abstracts persistence for realized work
// (registro_tempo).
//
// ListByPeriod returns the records that overlap [start, end]: started on or
// before the end of the period and either still open or ended on or after its
// start. userIDs narrows the result to those accounts; empty means all.

type ITimeRecordRepository interface {
	ListByPeriod(ctx context.Context, start, end time.Time, userIDs []string) ([]entities.TimeRecord, error)
	Save(ctx context.Context, records []entities.TimeRecord) error
}
