package capacity

import (
	"math"
	"time"

	"gestao_capacidade/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Availability is the contracted capacity of a collaborator over a period.
type Availability struct {
	Ms            int64
	WorkingDays   int
	VigenciaFound bool
	Vigencia      entities.Vigencia
	HourlyCost    decimal.Decimal
}

type availabilityKey struct {
	collaboratorID string
	start, end     string
	options        string
}

// AvailabilityCalculator computes contracted hours per collaborator and
// memoizes the result for each (collaborator, period, options) triple.
//
// A calculator belongs to a single analysis; it is not safe for concurrent use
// and must not be shared between requests.
type AvailabilityCalculator struct {
	calendar  *Calendar
	vigencias VigenciaIndex
	options   CalendarOptions
	cache     map[availabilityKey]Availability
}

func NewAvailabilityCalculator(calendar *Calendar, vigencias VigenciaIndex, options CalendarOptions) *AvailabilityCalculator {
	return &AvailabilityCalculator{
		calendar:  calendar,
		vigencias: vigencias,
		options:   options,
		cache:     make(map[availabilityKey]Availability),
	}
}

// AvailableMs returns working days × contracted hours per day, in ms, using
// the vigência in effect at end. It is zero when no vigência applies or the
// vigência has no contracted hours.
func (a *AvailabilityCalculator) AvailableMs(collaboratorID string, start, end time.Time) int64 {
	return a.Compute(collaboratorID, start, end).Ms
}

// Compute returns the full availability breakdown for collaboratorID.
func (a *AvailabilityCalculator) Compute(collaboratorID string, start, end time.Time) Availability {
	id := NormalizeID(collaboratorID)
	key := availabilityKey{
		collaboratorID: id,
		start:          FormatDate(start),
		end:            FormatDate(end),
		options:        a.options.key(),
	}
	if cached, ok := a.cache[key]; ok {
		return cached
	}

	var out Availability
	v, found := a.vigencias.Resolve(id, end)
	if found {
		out.VigenciaFound = true
		out.Vigencia = v
		out.HourlyCost = ParseHourlyCost(v.HourlyCost)
		if v.ContractedHoursPerDay != nil && *v.ContractedHoursPerDay > 0 {
			out.WorkingDays = a.calendar.CountWorkingDays(start, end, a.options, id)
			perDay := math.Round(*v.ContractedHoursPerDay * float64(msPerHour))
			out.Ms = int64(out.WorkingDays) * int64(perDay)
		}
	}
	a.cache[key] = out
	return out
}

// HourlyCost returns the hourly cost of the vigência in effect at end, or zero.
func (a *AvailabilityCalculator) HourlyCost(collaboratorID string, start, end time.Time) decimal.Decimal {
	return a.Compute(collaboratorID, start, end).HourlyCost
}
