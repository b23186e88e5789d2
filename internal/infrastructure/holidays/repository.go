package holidays

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gestao_capacidade/internal/domain/entities"
	"gestao_capacidade/internal/infrastructure/logger"
	"gestao_capacidade/internal/usecase/interfaces"
)

// Repository merges the national calendar with the stored feriado table.
// Stored entries win when both name the same date.
type Repository struct {
	store    interfaces.IHolidayRepository
	national bool
}

var _ interfaces.IHolidayRepository = (*Repository)(nil)

func NewRepository(store interfaces.IHolidayRepository, national bool) *Repository {
	return &Repository{store: store, national: national}
}

func (r *Repository) ListByRange(ctx context.Context, start, end time.Time) ([]entities.Holiday, error) {
	stored, err := r.store.ListByRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("list stored holidays: %w", err)
	}
	if !r.national {
		return stored, nil
	}

	byDate := make(map[string]entities.Holiday, len(stored))
	for _, h := range NationalBetween(start, end) {
		byDate[h.Date.Format(time.DateOnly)] = h
	}
	for _, h := range stored {
		byDate[day(h.Date).Format(time.DateOnly)] = h
	}

	out := make([]entities.Holiday, 0, len(byDate))
	for _, h := range byDate {
		out = append(out, h)
	}
	sortByDate(out)

	logger.WithContext(ctx).WithField("stored", len(stored)).WithField("total", len(out)).
		Debug("[holidays][repository] merged national calendar")
	return out, nil
}

// Save writes only to the underlying store; the national calendar is computed.
func (r *Repository) Save(ctx context.Context, holidays []entities.Holiday) error {
	return r.store.Save(ctx, holidays)
}

func sortByDate(hs []entities.Holiday) {
	sort.SliceStable(hs, func(i, j int) bool { return hs[i].Date.Before(hs[j].Date) })
}
