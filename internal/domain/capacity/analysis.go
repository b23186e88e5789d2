package capacity

import (
	"time"

	"gestao_capacidade/internal/domain/entities"
)

// Input is the flat data an analysis runs on, already fetched from storage.
type Input struct {
	Collaborators []entities.Collaborator
	TimeRecords   []entities.TimeRecord
	Estimates     []entities.EstimateRecord
	Vigencias     []entities.Vigencia
	Holidays      []entities.Holiday
	Leave         LeavePolicy

	// Names of clients, products, task types and tasks. Collaborator names
	// come from the directory unless set here.
	Names Names
	// ContractTypes names contract types (tipo de contrato) by id.
	ContractTypes map[string]string
}

// Params are the validated request parameters.
type Params struct {
	Start    time.Time
	End      time.Time
	Ordering Ordering
	Filters  Filters
	Options  CalendarOptions
}

// Period describes the analysed range and its working-day count (without
// leave, which is per collaborator).
type Period struct {
	Start       time.Time
	End         time.Time
	WorkingDays int
	Options     CalendarOptions
}

// Result is a complete capacity analysis.
type Result struct {
	Period           Period
	Ordering         Ordering
	Tree             *Node
	Totals           Totals
	SummaryDimension Dimension
	Summary          map[string]Summary
}

// Analyze runs the whole engine: tree along p.Ordering, global totals, and the
// flat rollup of the root dimension. It is deterministic for a given input.
func Analyze(in Input, p Params) Result {
	calendar := NewCalendar(NewHolidaySet(in.Holidays), in.Leave)
	engine := NewEngine(p.Start, p.End, p.Options, calendar, NewClassifier(in.Collaborators), NewVigenciaIndex(in.Vigencias)).
		WithNames(in.names(), in.ContractTypes)

	agg := engine.Aggregate(in.TimeRecords, in.Estimates, p.Ordering, p.Filters)
	root := p.Ordering.Root()

	periodOpts := p.Options
	periodOpts.IgnoreLeave = false

	return Result{
		Period: Period{
			Start:       Day(p.Start),
			End:         Day(p.End),
			WorkingDays: calendar.CountWorkingDays(p.Start, p.End, periodOpts, ""),
			Options:     p.Options,
		},
		Ordering:         p.Ordering,
		Tree:             agg.Tree,
		Totals:           agg.Totals,
		SummaryDimension: root,
		Summary:          engine.Rollup(in.TimeRecords, in.Estimates, root, p.Filters),
	}
}

func (in Input) names() Names {
	out := make(Names, len(Dimensions))
	for id, name := range CollaboratorNames(in.Collaborators) {
		out.Set(DimensionColaborador, id, name)
	}
	for d, byID := range in.Names {
		for id, name := range byID {
			out.Set(d, id, name)
		}
	}
	return out
}
