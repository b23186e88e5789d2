package capacity

import (
	"errors"
	"fmt"
	"strings"
)

// Dimension is one of the classification axes a capacity report can be
// grouped by.
type Dimension string

const (
	DimensionColaborador Dimension = "colaborador"
	DimensionCliente     Dimension = "cliente"
	DimensionProduto     Dimension = "produto"
	DimensionTipoTarefa  Dimension = "tipo_tarefa"
	DimensionTarefa      Dimension = "tarefa"
)

// Dimensions lists every dimension in canonical order.
var Dimensions = []Dimension{
	DimensionColaborador,
	DimensionCliente,
	DimensionProduto,
	DimensionTipoTarefa,
	DimensionTarefa,
}

var (
	ErrEmptyOrdering      = errors.New("ordering must contain at least one dimension")
	ErrUnknownDimension   = errors.New("unknown dimension")
	ErrDuplicateDimension = errors.New("duplicate dimension")
)

var summaryKeys = map[Dimension]string{
	DimensionColaborador: "resumo_colaboradores",
	DimensionCliente:     "resumo_clientes",
	DimensionProduto:     "resumo_produtos",
	DimensionTipoTarefa:  "resumo_tipos_tarefa",
	DimensionTarefa:      "resumo_tarefas",
}

// ParseDimension accepts the wire name of a dimension.
func ParseDimension(name string) (Dimension, error) {
	d := Dimension(strings.TrimSpace(name))
	if _, ok := summaryKeys[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDimension, name)
	}
	return d, nil
}

// SummaryKey is the response field carrying the flat rollup for d.
func (d Dimension) SummaryKey() string {
	return summaryKeys[d]
}

func (d Dimension) String() string {
	return string(d)
}

// Ordering is the caller-chosen nesting of the report tree; the first element
// is the root level.
type Ordering []Dimension

// NewOrdering validates names and builds an Ordering. It rejects empty input,
// unknown names and repeated dimensions.
func NewOrdering(names []string) (Ordering, error) {
	if len(names) == 0 {
		return nil, ErrEmptyOrdering
	}
	seen := make(map[Dimension]struct{}, len(names))
	out := make(Ordering, 0, len(names))
	for _, n := range names {
		d, err := ParseDimension(n)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[d]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDimension, n)
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out, nil
}

// Root returns the first level of the tree.
func (o Ordering) Root() Dimension {
	if len(o) == 0 {
		return ""
	}
	return o[0]
}

// Contains reports whether d is one of the tree levels.
func (o Ordering) Contains(d Dimension) bool {
	for _, x := range o {
		if x == d {
			return true
		}
	}
	return false
}

func (o Ordering) Strings() []string {
	out := make([]string, len(o))
	for i, d := range o {
		out[i] = string(d)
	}
	return out
}
