package capacity

import (
	"sort"

	"gestao_capacidade/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Summary is the flat total of one identifier of a dimension.
type Summary struct {
	Name string

	EstimatedMs int64
	RealizedMs  int64
	AvailableMs int64

	TotalHorasEstimadas   float64
	TotalHorasRealizadas  float64
	TotalHorasDisponiveis float64
	PercentualUtilizacao  *float64

	EstimatedCost decimal.Decimal
	RealizedCost  decimal.Decimal

	// Distinct collaborators that contributed records to this identifier.
	Collaborators []string
	// Only set on the colaborador rollup.
	VigenciaFound *bool
	Contract      *Contract
}

// Rollup totals every record per identifier of dimension, independently of
// any tree ordering. Availability of a colaborador entry is that collaborator's
// own; for other dimensions it is the sum over the distinct collaborators that
// logged or planned work under the identifier.
func (e *Engine) Rollup(records []entities.TimeRecord, estimates []entities.EstimateRecord, dimension Dimension, filters Filters) map[string]Summary {
	entries := e.classify(records, estimates, filters)

	type acc struct {
		Summary
		collaborators map[string]struct{}
	}
	byID := make(map[string]*acc)
	for _, en := range entries {
		for _, id := range en.key[dimension] {
			a, ok := byID[id]
			if !ok {
				a = &acc{collaborators: make(map[string]struct{})}
				byID[id] = a
			}
			a.EstimatedMs += en.estimatedMs
			a.RealizedMs += en.realizedMs
			a.EstimatedCost = a.EstimatedCost.Add(en.estimatedCost)
			a.RealizedCost = a.RealizedCost.Add(en.realizedCost)
			if en.collaborator != "" {
				a.collaborators[en.collaborator] = struct{}{}
			}
		}
	}

	out := make(map[string]Summary, len(byID))
	for id, a := range byID {
		s := a.Summary
		s.Name = e.names.Of(dimension, id)
		s.Collaborators = sortedKeys(a.collaborators)
		if dimension == DimensionColaborador {
			av := e.availability.Compute(id, e.start, e.end)
			s.AvailableMs = av.Ms
			found := av.VigenciaFound
			s.VigenciaFound = &found
			s.Contract = newContract(av, e.contractTypes, s.RealizedMs, s.RealizedCost)
		} else {
			for _, c := range s.Collaborators {
				s.AvailableMs += e.availability.AvailableMs(c, e.start, e.end)
			}
		}
		s.TotalHorasEstimadas = MsToHours(s.EstimatedMs)
		s.TotalHorasRealizadas = MsToHours(s.RealizedMs)
		s.TotalHorasDisponiveis = MsToHours(s.AvailableMs)
		s.PercentualUtilizacao = utilization(s.RealizedMs, s.AvailableMs)
		out[id] = s
	}
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
