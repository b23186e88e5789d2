package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"gestao_capacidade/internal/usecase"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidID = errors.New("id must be a string or a number")

// IDList accepts a single id or a list of ids, each given as a JSON string or
// number: 1, "1", [1, "2"].
type IDList []string

func (l *IDList) UnmarshalJSON(b []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*l = nil
	case []any:
		out := make(IDList, 0, len(v))
		for _, item := range v {
			id, err := idString(item)
			if err != nil {
				return err
			}
			out = append(out, id)
		}
		*l = out
	default:
		id, err := idString(v)
		if err != nil {
			return err
		}
		*l = IDList{id}
	}
	return nil
}

func idString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x), nil
	case json.Number:
		return x.String(), nil
	default:
		return "", fmt.Errorf("%w: %v", ErrInvalidID, v)
	}
}

// CapacityAnalysisRequest is the body of POST /v1/capacity-analysis.
type CapacityAnalysisRequest struct {
	DataInicio  string   `json:"data_inicio" validate:"required,datetime=2006-01-02" example:"2024-01-01"`
	DataFim     string   `json:"data_fim" validate:"required,datetime=2006-01-02" example:"2024-01-31"`
	OrdemNiveis []string `json:"ordem_niveis" validate:"required,min=1,unique,dive,oneof=colaborador cliente produto tipo_tarefa tarefa" example:"cliente,colaborador"`

	ColaboradorID IDList `json:"colaborador_id,omitempty" swaggertype:"array,string"`
	ClienteID     IDList `json:"cliente_id,omitempty" swaggertype:"array,string"`
	ProdutoID     IDList `json:"produto_id,omitempty" swaggertype:"array,string"`
	TipoTarefaID  IDList `json:"tipo_tarefa_id,omitempty" swaggertype:"array,string"`
	TarefaID      IDList `json:"tarefa_id,omitempty" swaggertype:"array,string"`

	IgnorarFinaisSemana bool `json:"ignorar_finais_semana"`
	IgnorarFeriados     bool `json:"ignorar_feriados"`
	IgnorarFolgas       bool `json:"ignorar_folgas"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the request shape and returns messages per json field, or
// nil when the request is well formed. Cross-field rules (date order) are
// checked by the use case.
func (r CapacityAnalysisRequest) Validate() map[string][]string {
	return validateStruct(r)
}

func validateStruct(v any) map[string][]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string][]string{"body": {err.Error()}}
	}

	details := make(map[string][]string)
	for _, fe := range verrs {
		field, _, _ := strings.Cut(fe.Field(), "[")
		details[field] = append(details[field], fieldMessage(fe))
	}
	return details
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "datetime":
		return "Formato esperado: YYYY-MM-DD"
	case "min":
		if fe.Field() == "ordem_niveis" {
			return "ordem_niveis deve conter ao menos um nível"
		}
		return "deve ser uma lista não vazia"
	case "gt":
		return "deve ser maior que zero"
	case "unique":
		return "níveis não podem se repetir"
	case "oneof":
		return fmt.Sprintf("nível inválido %q; valores possíveis: colaborador, cliente, produto, tipo_tarefa, tarefa", fe.Value())
	default:
		return fmt.Sprintf("falhou na regra %s", fe.Tag())
	}
}

func (r CapacityAnalysisRequest) ToCommand() usecase.CapacityAnalysisCommand {
	return usecase.CapacityAnalysisCommand{
		DataInicio:          r.DataInicio,
		DataFim:             r.DataFim,
		OrdemNiveis:         r.OrdemNiveis,
		ColaboradorIDs:      r.ColaboradorID,
		ClienteIDs:          r.ClienteID,
		ProdutoIDs:          r.ProdutoID,
		TipoTarefaIDs:       r.TipoTarefaID,
		TarefaIDs:           r.TarefaID,
		IgnorarFinaisSemana: r.IgnorarFinaisSemana,
		IgnorarFeriados:     r.IgnorarFeriados,
		IgnorarFolgas:       r.IgnorarFolgas,
	}
}
