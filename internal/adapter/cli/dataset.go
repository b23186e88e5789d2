package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gestao_capacidade/internal/domain/entities"
)

// dataset is the import file layout. Ids may be JSON strings or numbers;
// dates may be YYYY-MM-DD or RFC 3339.
type dataset struct {
	Membros        []membroRow        `json:"membros"`
	RegistrosTempo []registroTempoRow `json:"registros_tempo"`
	Regras         []regraRow         `json:"regras_tempo_estimado"`
	Vigencias      []vigenciaRow      `json:"vigencias"`
	Feriados       []feriadoRow       `json:"feriados"`
	Catalogo       []catalogoRow      `json:"catalogo"`
}

// looseString accepts a JSON string or number.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*s = ""
	case string:
		*s = looseString(strings.TrimSpace(v))
	case json.Number:
		*s = looseString(v.String())
	default:
		return fmt.Errorf("expected a string or a number, got %s", b)
	}
	return nil
}

type jsonTime struct{ time.Time }

var jsonTimeLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", time.DateOnly}

func (t *jsonTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, layout := range jsonTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

func (t *jsonTime) ptr() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

type membroRow struct {
	ID        looseString `json:"id"`
	UsuarioID looseString `json:"usuario_id"`
	Nome      string      `json:"nome"`
}

type registroTempoRow struct {
	ID             looseString `json:"id"`
	UsuarioID      looseString `json:"usuario_id"`
	ClienteID      looseString `json:"cliente_id"`
	ProdutoID      looseString `json:"produto_id"`
	TipoTarefaID   looseString `json:"tipo_tarefa_id"`
	TarefaID       looseString `json:"tarefa_id"`
	DataInicio     *jsonTime   `json:"data_inicio"`
	DataFim        *jsonTime   `json:"data_fim"`
	TempoRealizado float64     `json:"tempo_realizado"`
}

type regraRow struct {
	ID               looseString `json:"id"`
	ResponsavelID    looseString `json:"responsavel_id"`
	ClienteID        looseString `json:"cliente_id"`
	ProdutoID        looseString `json:"produto_id"`
	TipoTarefaID     looseString `json:"tipo_tarefa_id"`
	TarefaID         looseString `json:"tarefa_id"`
	DataInicio       *jsonTime   `json:"data_inicio"`
	DataFim          *jsonTime   `json:"data_fim"`
	TempoEstimadoDia float64     `json:"tempo_estimado_dia"`
}

type vigenciaRow struct {
	MembroID            looseString `json:"membro_id"`
	DtVigencia          jsonTime    `json:"dt_vigencia"`
	CustoHora           looseString `json:"custo_hora"`
	HorasContratadasDia *float64    `json:"horascontratadasdia"`
	TipoContratoID      looseString `json:"tipocontratoid"`
}

type feriadoRow struct {
	Data jsonTime `json:"data"`
	Nome string   `json:"nome"`
}

type catalogoRow struct {
	Tipo string      `json:"tipo"`
	ID   looseString `json:"id"`
	Nome string      `json:"nome"`
}

func parseDataset(b []byte) (dataset, error) {
	var ds dataset
	if err := json.Unmarshal(b, &ds); err != nil {
		return dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	return ds, nil
}

func (ds dataset) collaborators() []entities.Collaborator {
	out := make([]entities.Collaborator, 0, len(ds.Membros))
	for _, m := range ds.Membros {
		out = append(out, entities.Collaborator{ID: string(m.ID), UserID: string(m.UsuarioID), Name: m.Nome})
	}
	return out
}

func (ds dataset) timeRecords() []entities.TimeRecord {
	out := make([]entities.TimeRecord, 0, len(ds.RegistrosTempo))
	for _, r := range ds.RegistrosTempo {
		out = append(out, entities.TimeRecord{
			ID:             string(r.ID),
			CollaboratorID: string(r.UsuarioID),
			ClientID:       string(r.ClienteID),
			ProductID:      string(r.ProdutoID),
			TaskTypeID:     string(r.TipoTarefaID),
			TaskID:         string(r.TarefaID),
			StartedAt:      r.DataInicio.ptr(),
			EndedAt:        r.DataFim.ptr(),
			RealizedMs:     r.TempoRealizado,
		})
	}
	return out
}

func (ds dataset) estimates() []entities.EstimateRecord {
	out := make([]entities.EstimateRecord, 0, len(ds.Regras))
	for _, r := range ds.Regras {
		out = append(out, entities.EstimateRecord{
			ID:              string(r.ID),
			ResponsibleID:   string(r.ResponsavelID),
			ClientID:        string(r.ClienteID),
			ProductID:       string(r.ProdutoID),
			TaskTypeID:      string(r.TipoTarefaID),
			TaskID:          string(r.TarefaID),
			StartDate:       r.DataInicio.ptr(),
			EndDate:         r.DataFim.ptr(),
			EstimatedPerDay: r.TempoEstimadoDia,
		})
	}
	return out
}

func (ds dataset) vigencias() []entities.Vigencia {
	out := make([]entities.Vigencia, 0, len(ds.Vigencias))
	for _, v := range ds.Vigencias {
		out = append(out, entities.Vigencia{
			CollaboratorID:        string(v.MembroID),
			EffectiveFrom:         v.DtVigencia.Time,
			HourlyCost:            string(v.CustoHora),
			ContractedHoursPerDay: v.HorasContratadasDia,
			ContractTypeID:        string(v.TipoContratoID),
		})
	}
	return out
}

func (ds dataset) holidays() []entities.Holiday {
	out := make([]entities.Holiday, 0, len(ds.Feriados))
	for _, f := range ds.Feriados {
		out = append(out, entities.Holiday{Date: f.Data.Time, Name: f.Nome})
	}
	return out
}

func (ds dataset) catalog() []entities.CatalogEntry {
	out := make([]entities.CatalogEntry, 0, len(ds.Catalogo))
	for _, c := range ds.Catalogo {
		out = append(out, entities.CatalogEntry{Kind: strings.TrimSpace(c.Tipo), ID: string(c.ID), Name: c.Nome})
	}
	return out
}
