package response

import (
	"encoding/json"
	"math"

	"gestao_capacidade/internal/domain/capacity"

	"github.com/shopspring/decimal"
)

type PeriodoResponse struct {
	DataInicio          string `json:"data_inicio" example:"2024-01-01"`
	DataFim             string `json:"data_fim" example:"2024-01-31"`
	QuantidadeDias      int    `json:"quantidade_dias" example:"22"`
	IgnorarFinaisSemana bool   `json:"ignorar_finais_semana"`
	IgnorarFeriados     bool   `json:"ignorar_feriados"`
	IgnorarFolgas       bool   `json:"ignorar_folgas"`
}

type ResumoResponse struct {
	TotalTarefas       int `json:"total_tarefas"`
	TotalProdutos      int `json:"total_produtos"`
	TotalClientes      int `json:"total_clientes"`
	TotalColaboradores int `json:"total_colaboradores"`
}

// LeafResponse carries the metrics of a full-depth node of data.
type LeafResponse struct {
	Nome string `json:"nome" example:"Ana"`

	HorasEstimadas       float64  `json:"horas_estimadas"`
	HorasRealizadas      float64  `json:"horas_realizadas"`
	HorasDisponiveis     float64  `json:"horas_disponiveis"`
	PercentualUtilizacao *float64 `json:"percentual_utilizacao"`
	DiferencaHoras       float64  `json:"diferenca_horas"`

	TotalEstimadoMs    int64 `json:"total_estimado_ms"`
	TotalRealizadoMs   int64 `json:"total_realizado_ms"`
	HorasDisponiveisMs int64 `json:"horas_disponiveis_ms"`

	CustoEstimado       float64  `json:"custo_estimado"`
	CustoRealizado      float64  `json:"custo_realizado"`
	CustoHora           *float64 `json:"custo_hora,omitempty"`
	HorasContratadasDia *float64 `json:"horas_contratadas_dia,omitempty"`
	VigenciaEncontrada  *bool    `json:"vigencia_encontrada,omitempty"`

	ContractResponse
}

// ContractResponse is the contracted side of a collaborator; it is only
// rendered where the entry belongs to one.
type ContractResponse struct {
	TipoContratoID   string   `json:"tipo_contrato_id,omitempty"`
	TipoContratoNome string   `json:"tipo_contrato_nome,omitempty"`
	CustoContratado  *float64 `json:"custo_contratado,omitempty"`
	DiferencaMs      *int64   `json:"diferenca_ms,omitempty"`
	DiferencaH       *float64 `json:"diferenca_h,omitempty"`
	CustoDiferenca   *float64 `json:"custo_diferenca,omitempty"`
}

// SummaryResponse is one entry of the resumo_<dimensão> map.
type SummaryResponse struct {
	Nome                  string   `json:"nome"`
	TotalHorasEstimadas   float64  `json:"total_horas_estimadas"`
	TotalHorasRealizadas  float64  `json:"total_horas_realizadas"`
	TotalHorasDisponiveis float64  `json:"total_horas_disponiveis"`
	PercentualUtilizacao  *float64 `json:"percentual_utilizacao"`
	CustoEstimado         float64  `json:"custo_estimado"`
	CustoRealizado        float64  `json:"custo_realizado"`
	Colaboradores         []string `json:"colaboradores,omitempty"`
	VigenciaEncontrada    *bool    `json:"vigencia_encontrada,omitempty"`

	ContractResponse
}

// CapacityAnalysisResponse renders a capacity.Result. The rollup is emitted
// under a key named after the root dimension (resumo_clientes, ...), so the
// type marshals itself.
type CapacityAnalysisResponse struct {
	Success    bool                       `json:"success"`
	Periodo    PeriodoResponse            `json:"periodo"`
	Data       map[string]any             `json:"data" swaggertype:"object"`
	Resumo     ResumoResponse             `json:"resumo"`
	SummaryKey string                     `json:"-"`
	Summary    map[string]SummaryResponse `json:"-"`
}

func (r CapacityAnalysisResponse) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"success": r.Success,
		"periodo": r.Periodo,
		"data":    r.Data,
		"resumo":  r.Resumo,
	}
	if r.SummaryKey != "" {
		summary := r.Summary
		if summary == nil {
			summary = map[string]SummaryResponse{}
		}
		out[r.SummaryKey] = summary
	}
	return json.Marshal(out)
}

func FromCapacityResult(res capacity.Result) CapacityAnalysisResponse {
	out := CapacityAnalysisResponse{
		Success: true,
		Periodo: PeriodoResponse{
			DataInicio:          capacity.FormatDate(res.Period.Start),
			DataFim:             capacity.FormatDate(res.Period.End),
			QuantidadeDias:      res.Period.WorkingDays,
			IgnorarFinaisSemana: res.Period.Options.IgnoreWeekends,
			IgnorarFeriados:     res.Period.Options.IgnoreHolidays,
			IgnorarFolgas:       res.Period.Options.IgnoreLeave,
		},
		Data: fromNode(res.Tree),
		Resumo: ResumoResponse{
			TotalTarefas:       res.Totals.Tarefas,
			TotalProdutos:      res.Totals.Produtos,
			TotalClientes:      res.Totals.Clientes,
			TotalColaboradores: res.Totals.Colaboradores,
		},
		SummaryKey: res.SummaryDimension.SummaryKey(),
		Summary:    make(map[string]SummaryResponse, len(res.Summary)),
	}
	for id, s := range res.Summary {
		out.Summary[id] = fromSummary(s)
	}
	return out
}

func fromNode(n *capacity.Node) map[string]any {
	out := make(map[string]any)
	if n == nil {
		return out
	}
	for id, child := range n.Children {
		if child.Leaf != nil {
			out[id] = fromLeaf(child.Leaf)
			continue
		}
		out[id] = fromNode(child)
	}
	return out
}

func fromLeaf(l *capacity.Leaf) LeafResponse {
	out := LeafResponse{
		Nome:                 l.Name,
		HorasEstimadas:       l.HorasEstimadas,
		HorasRealizadas:      l.HorasRealizadas,
		HorasDisponiveis:     l.HorasDisponiveis,
		PercentualUtilizacao: percent(l.PercentualUtilizacao),
		DiferencaHoras:       l.DiferencaHoras,
		TotalEstimadoMs:      l.EstimatedMs,
		TotalRealizadoMs:     l.RealizedMs,
		HorasDisponiveisMs:   l.AvailableMs,
		CustoEstimado:        money(l.EstimatedCost),
		CustoRealizado:       money(l.RealizedCost),
		HorasContratadasDia:  l.ContractedHoursPerDay,
		VigenciaEncontrada:   l.VigenciaFound,
		ContractResponse:     fromContract(l.Contract),
	}
	if l.HourlyCost != nil {
		v := money(*l.HourlyCost)
		out.CustoHora = &v
	}
	return out
}

func fromSummary(s capacity.Summary) SummaryResponse {
	out := SummaryResponse{
		Nome:                  s.Name,
		TotalHorasEstimadas:   s.TotalHorasEstimadas,
		TotalHorasRealizadas:  s.TotalHorasRealizadas,
		TotalHorasDisponiveis: s.TotalHorasDisponiveis,
		PercentualUtilizacao:  percent(s.PercentualUtilizacao),
		CustoEstimado:         money(s.EstimatedCost),
		CustoRealizado:        money(s.RealizedCost),
		VigenciaEncontrada:    s.VigenciaFound,
		ContractResponse:      fromContract(s.Contract),
	}
	// colaborador entries are themselves the collaborator.
	if s.VigenciaFound == nil {
		out.Colaboradores = s.Collaborators
	}
	return out
}

func fromContract(c *capacity.Contract) ContractResponse {
	if c == nil {
		return ContractResponse{}
	}
	cost := money(c.Cost)
	costBalance := money(c.CostBalance)
	balanceMs := c.BalanceMs
	balanceH := c.BalanceHours
	return ContractResponse{
		TipoContratoID:   c.TypeID,
		TipoContratoNome: c.TypeName,
		CustoContratado:  &cost,
		DiferencaMs:      &balanceMs,
		DiferencaH:       &balanceH,
		CustoDiferenca:   &costBalance,
	}
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// percent rounds a utilization percentage to two places.
func percent(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := math.Round(*p*100) / 100
	return &v
}
