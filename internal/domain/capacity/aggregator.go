package capacity

import (
	"time"

	"gestao_capacidade/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Node is a level of the report tree. Intermediate nodes only hold children;
// nodes at full ordering depth hold a Leaf and no children.
type Node struct {
	Children map[string]*Node
	Leaf     *Leaf
}

func newNode() *Node {
	return &Node{Children: make(map[string]*Node)}
}

func (n *Node) child(id string) *Node {
	c, ok := n.Children[id]
	if !ok {
		c = newNode()
		n.Children[id] = c
	}
	return c
}

// Walk calls fn for every leaf with the identifiers leading to it.
func (n *Node) Walk(fn func(path []string, leaf *Leaf)) {
	n.walk(nil, fn)
}

func (n *Node) walk(path []string, fn func([]string, *Leaf)) {
	if n.Leaf != nil {
		fn(path, n.Leaf)
		return
	}
	for id, c := range n.Children {
		next := make([]string, len(path), len(path)+1)
		copy(next, path)
		c.walk(append(next, id), fn)
	}
}

// Leaf carries the metrics of one full key path. Name is the display name of
// the last identifier of the path.
type Leaf struct {
	CollaboratorID string
	Name           string

	EstimatedMs int64
	RealizedMs  int64
	AvailableMs int64

	HorasEstimadas       float64
	HorasRealizadas      float64
	HorasDisponiveis     float64
	PercentualUtilizacao *float64
	DiferencaHoras       float64

	// Set only for leaves under a collaborator.
	VigenciaFound         *bool
	HourlyCost            *decimal.Decimal
	ContractedHoursPerDay *float64
	Contract              *Contract

	EstimatedCost decimal.Decimal
	RealizedCost  decimal.Decimal
}

// Totals are distinct identifier counts over every processed record.
type Totals struct {
	Tarefas       int
	Produtos      int
	Clientes      int
	Colaboradores int
}

// Aggregation is the output of Engine.Aggregate.
type Aggregation struct {
	Tree   *Node
	Totals Totals
}

// Engine folds classified records for one analysis period. It owns a
// request-scoped availability cache and must not be reused across requests.
type Engine struct {
	start, end   time.Time
	options      CalendarOptions
	calendar     *Calendar
	classifier   *Classifier
	availability *AvailabilityCalculator

	names         Names
	contractTypes map[string]string
}

func NewEngine(start, end time.Time, options CalendarOptions, calendar *Calendar, classifier *Classifier, vigencias VigenciaIndex) *Engine {
	return &Engine{
		start:        Day(start),
		end:          Day(end),
		options:      options,
		calendar:     calendar,
		classifier:   classifier,
		availability: NewAvailabilityCalculator(calendar, vigencias, options),
	}
}

// WithNames sets the display names used for leaves and summaries, and the
// names of contract types (tipo de contrato) by id.
func (e *Engine) WithNames(names Names, contractTypes map[string]string) *Engine {
	e.names = names
	e.contractTypes = contractTypes
	return e
}

// entry is a classified record with its contribution already computed.
type entry struct {
	key           PartialKey
	collaborator  string
	estimatedMs   int64
	realizedMs    int64
	estimatedCost decimal.Decimal
	realizedCost  decimal.Decimal
}

func (e *Engine) classify(records []entities.TimeRecord, estimates []entities.EstimateRecord, filters Filters) []entry {
	openUntil := EndOfDay(e.end)
	out := make([]entry, 0, len(records)+len(estimates))

	for _, r := range records {
		key, ok := filters.apply(e.classifier.ClassifyTimeRecord(r))
		if !ok {
			continue
		}
		en := entry{key: key, collaborator: key.First(DimensionColaborador)}
		en.realizedMs = RealizedMs(r, openUntil)
		en.realizedCost = e.cost(en.collaborator, en.realizedMs)
		out = append(out, en)
	}
	for _, est := range estimates {
		key, ok := filters.apply(e.classifier.ClassifyEstimate(est))
		if !ok {
			continue
		}
		en := entry{key: key, collaborator: key.First(DimensionColaborador)}
		en.estimatedMs = EstimatedMs(est, e.start, e.end, e.calendar, e.options)
		en.estimatedCost = e.cost(en.collaborator, en.estimatedMs)
		out = append(out, en)
	}
	return out
}

func (e *Engine) cost(collaboratorID string, ms int64) decimal.Decimal {
	if collaboratorID == "" || ms == 0 {
		return decimal.Zero
	}
	rate := e.availability.HourlyCost(collaboratorID, e.start, e.end)
	return rate.Mul(decimal.NewFromInt(ms)).Div(decimal.NewFromInt(msPerHour))
}

// Aggregate builds the report tree along ordering. Records lacking a value
// for one of the ordering dimensions are left out of the tree but still count
// in the totals.
func (e *Engine) Aggregate(records []entities.TimeRecord, estimates []entities.EstimateRecord, ordering Ordering, filters Filters) Aggregation {
	entries := e.classify(records, estimates, filters)

	root := newNode()
	for _, en := range entries {
		if !placeable(en.key, ordering) {
			continue
		}
		e.insert(root, ordering, 0, en, "", "")
	}
	root.Walk(func(_ []string, leaf *Leaf) { e.finalize(leaf) })

	return Aggregation{Tree: root, Totals: countTotals(entries)}
}

func placeable(k PartialKey, ordering Ordering) bool {
	for _, d := range ordering {
		if !k.Has(d) {
			return false
		}
	}
	return true
}

func (e *Engine) insert(n *Node, ordering Ordering, depth int, en entry, collaborator, id string) {
	if depth == len(ordering) {
		if n.Leaf == nil {
			n.Leaf = &Leaf{CollaboratorID: collaborator}
			if depth > 0 {
				n.Leaf.Name = e.names.Of(ordering[depth-1], id)
			}
			n.Children = nil
		}
		n.Leaf.EstimatedMs += en.estimatedMs
		n.Leaf.RealizedMs += en.realizedMs
		n.Leaf.EstimatedCost = n.Leaf.EstimatedCost.Add(en.estimatedCost)
		n.Leaf.RealizedCost = n.Leaf.RealizedCost.Add(en.realizedCost)
		return
	}
	d := ordering[depth]
	for _, id := range en.key[d] {
		c := collaborator
		if d == DimensionColaborador {
			c = id
		}
		e.insert(n.child(id), ordering, depth+1, en, c, id)
	}
}

func (e *Engine) finalize(l *Leaf) {
	if l.CollaboratorID != "" {
		av := e.availability.Compute(l.CollaboratorID, e.start, e.end)
		l.AvailableMs = av.Ms
		found := av.VigenciaFound
		l.VigenciaFound = &found
		if found {
			rate := av.HourlyCost
			l.HourlyCost = &rate
			l.ContractedHoursPerDay = av.Vigencia.ContractedHoursPerDay
		}
		l.Contract = newContract(av, e.contractTypes, l.RealizedMs, l.RealizedCost)
	}
	l.HorasEstimadas = MsToHours(l.EstimatedMs)
	l.HorasRealizadas = MsToHours(l.RealizedMs)
	l.HorasDisponiveis = MsToHours(l.AvailableMs)
	l.DiferencaHoras = l.HorasEstimadas - l.HorasRealizadas
	l.PercentualUtilizacao = utilization(l.RealizedMs, l.AvailableMs)
}

// utilization is realized / available × 100, or nil when there is no
// availability.
func utilization(realizedMs, availableMs int64) *float64 {
	if availableMs <= 0 {
		return nil
	}
	p := float64(realizedMs) / float64(availableMs) * 100
	return &p
}

func countTotals(entries []entry) Totals {
	sets := make(map[Dimension]map[string]struct{}, len(Dimensions))
	for _, d := range Dimensions {
		sets[d] = make(map[string]struct{})
	}
	for _, en := range entries {
		for d, ids := range en.key {
			for _, id := range ids {
				sets[d][id] = struct{}{}
			}
		}
	}
	return Totals{
		Tarefas:       len(sets[DimensionTarefa]),
		Produtos:      len(sets[DimensionProduto]),
		Clientes:      len(sets[DimensionCliente]),
		Colaboradores: len(sets[DimensionColaborador]),
	}
}
