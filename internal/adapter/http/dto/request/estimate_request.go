package request

import (
	"strings"

	"gestao_capacidade/internal/usecase"
)

// ID is a single identifier given as a JSON string or number.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	var list IDList
	if err := list.UnmarshalJSON(b); err != nil {
		return err
	}
	switch len(list) {
	case 0:
		*id = ""
	case 1:
		*id = ID(list[0])
	default:
		return ErrInvalidID
	}
	return nil
}

// EstimateRuleRequest is the body of POST /v1/tempo-estimado.
type EstimateRuleRequest struct {
	ClienteID        ID      `json:"cliente_id" validate:"required" swaggertype:"string" example:"10"`
	ProdutoIDs       IDList  `json:"produto_ids" validate:"required,min=1" swaggertype:"array,string"`
	TipoTarefaID     ID      `json:"tipo_tarefa_id,omitempty" swaggertype:"string"`
	TarefaIDs        IDList  `json:"tarefa_ids" validate:"required,min=1" swaggertype:"array,string"`
	ResponsavelID    ID      `json:"responsavel_id" validate:"required" swaggertype:"string" example:"1"`
	DataInicio       string  `json:"data_inicio" validate:"required,datetime=2006-01-02" example:"2024-01-01"`
	DataFim          string  `json:"data_fim" validate:"required,datetime=2006-01-02" example:"2024-01-31"`
	TempoEstimadoDia float64 `json:"tempo_estimado_dia" validate:"gt=0" example:"3600000"`
}

func (r EstimateRuleRequest) Validate() map[string][]string {
	return validateStruct(r)
}

func (r EstimateRuleRequest) ToCommand() usecase.CreateEstimateRulesCommand {
	return usecase.CreateEstimateRulesCommand{
		ClienteID:        string(r.ClienteID),
		ProdutoIDs:       r.ProdutoIDs,
		TipoTarefaID:     string(r.TipoTarefaID),
		TarefaIDs:        r.TarefaIDs,
		ResponsavelID:    string(r.ResponsavelID),
		DataInicio:       r.DataInicio,
		DataFim:          r.DataFim,
		TempoEstimadoDia: r.TempoEstimadoDia,
	}
}

// EstimateRuleQuery is the query string of GET /v1/tempo-estimado.
// responsavel_id may repeat or hold a comma-separated list.
type EstimateRuleQuery struct {
	DataInicio    string   `form:"data_inicio"`
	DataFim       string   `form:"data_fim"`
	ResponsavelID []string `form:"responsavel_id"`
}

func (q EstimateRuleQuery) ResponsavelIDs() []string {
	var out []string
	for _, v := range q.ResponsavelID {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				out = append(out, id)
			}
		}
	}
	return out
}
