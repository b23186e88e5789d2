package capacity

import (
	"strings"
	"time"

	"gestao_capacidade/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ResolveVigencia picks the vigência of collaboratorID in effect on asOf: the
// one with the latest EffectiveFrom not after asOf. Among equal dates the one
// appearing last in vigencias wins. The boolean is false when no vigência is
// in effect.
//
// Only the calendar date of asOf is considered.
func ResolveVigencia(collaboratorID string, asOf time.Time, vigencias []entities.Vigencia) (entities.Vigencia, bool) {
	id := NormalizeID(collaboratorID)
	asOf = Day(asOf)

	var (
		best  entities.Vigencia
		found bool
	)
	for _, v := range vigencias {
		if NormalizeID(v.CollaboratorID) != id {
			continue
		}
		from := Day(v.EffectiveFrom)
		if from.After(asOf) {
			continue
		}
		if !found || !from.Before(Day(best.EffectiveFrom)) {
			best = v
			found = true
		}
	}
	return best, found
}

// ParseHourlyCost converts a stored hourly cost to a decimal. A comma is read
// as the decimal separator; empty or malformed values are zero. Thousands
// separators are not supported, so "1.234,56" is malformed.
func ParseHourlyCost(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	s = strings.Replace(s, ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// VigenciaIndex groups vigências by normalized collaborator id, keeping input
// order inside each group so the tie-break of ResolveVigencia is preserved.
type VigenciaIndex map[string][]entities.Vigencia

func NewVigenciaIndex(vigencias []entities.Vigencia) VigenciaIndex {
	idx := make(VigenciaIndex)
	for _, v := range vigencias {
		id := NormalizeID(v.CollaboratorID)
		if id == "" {
			continue
		}
		idx[id] = append(idx[id], v)
	}
	return idx
}

// Resolve is ResolveVigencia restricted to the collaborator's own records.
func (idx VigenciaIndex) Resolve(collaboratorID string, asOf time.Time) (entities.Vigencia, bool) {
	return ResolveVigencia(collaboratorID, asOf, idx[NormalizeID(collaboratorID)])
}
