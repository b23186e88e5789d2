package capacity

import "github.com/shopspring/decimal"

// Contract is the contracted side of a collaborator over the period, set
// against what was realized.
type Contract struct {
	TypeID   string
	TypeName string

	// Cost is the contracted hours priced at the hourly cost.
	Cost decimal.Decimal
	// BalanceMs is contracted minus realized; negative means overtime.
	BalanceMs    int64
	BalanceHours float64
	// CostBalance is Cost minus the realized cost.
	CostBalance decimal.Decimal
}

func newContract(av Availability, contractTypes map[string]string, realizedMs int64, realizedCost decimal.Decimal) *Contract {
	c := &Contract{
		Cost:      av.HourlyCost.Mul(decimal.NewFromInt(av.Ms)).Div(decimal.NewFromInt(msPerHour)),
		BalanceMs: av.Ms - realizedMs,
	}
	c.BalanceHours = MsToHours(c.BalanceMs)
	c.CostBalance = c.Cost.Sub(realizedCost)
	if av.VigenciaFound {
		if id := NormalizeID(av.Vigencia.ContractTypeID); id != "" {
			c.TypeID = id
			c.TypeName = contractTypes[id]
		}
	}
	return c
}
