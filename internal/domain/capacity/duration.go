package capacity

import (
	"math"
	"time"

	"gestao_capacidade/internal/domain/entities"
)

// RealizedMs returns the realized duration of r in milliseconds.
//
// The stored value wins; values in (0, 1) are legacy hour fractions. Without a
// stored value the span StartedAt..EndedAt is used, with open records running
// until openUntil.
func RealizedMs(r entities.TimeRecord, openUntil time.Time) int64 {
	v := r.RealizedMs
	if v <= 0 && r.StartedAt != nil {
		end := openUntil
		if r.EndedAt != nil {
			end = *r.EndedAt
		}
		if span := end.Sub(*r.StartedAt); span > 0 {
			v = float64(span / time.Millisecond)
		}
	}
	if v > 0 && v < 1 {
		v = v * float64(msPerHour)
	}
	if v <= 0 {
		return 0
	}
	return int64(math.Round(v))
}

// EstimatedPerDayMs decodes tempo_estimado_dia: values in (0, 1000) are hours,
// anything else is already milliseconds.
func EstimatedPerDayMs(v float64) int64 {
	if v <= 0 {
		return 0
	}
	if v < 1000 {
		return int64(math.Round(v * float64(msPerHour)))
	}
	return int64(math.Round(v))
}

// EstimatedMs is the planned time of e inside [start, end]: the working days
// shared by the rule and the period times the daily estimate. Missing rule
// bounds default to the period bounds. Leave is not applied to estimates.
func EstimatedMs(e entities.EstimateRecord, start, end time.Time, calendar *Calendar, opts CalendarOptions) int64 {
	perDay := EstimatedPerDayMs(e.EstimatedPerDay)
	if perDay == 0 {
		return 0
	}
	from, to := Day(start), Day(end)
	if e.StartDate != nil && Day(*e.StartDate).After(from) {
		from = Day(*e.StartDate)
	}
	if e.EndDate != nil && Day(*e.EndDate).Before(to) {
		to = Day(*e.EndDate)
	}
	opts.IgnoreLeave = false
	days := calendar.CountWorkingDays(from, to, opts, "")
	return int64(days) * perDay
}
