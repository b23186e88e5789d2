package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"gestao_capacidade/internal/domain/capacity"
	"gestao_capacidade/internal/domain/entities"
	"gestao_capacidade/internal/infrastructure/logger"
	mock_interfaces "gestao_capacidade/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func init() {
	logger.SetOutput(io.Discard)
}

type repoMocks struct {
	collaborators *mock_interfaces.MockICollaboratorRepository
	timeRecords   *mock_interfaces.MockITimeRecordRepository
	estimates     *mock_interfaces.MockIEstimateRepository
	vigencias     *mock_interfaces.MockIVigenciaRepository
	holidays      *mock_interfaces.MockIHolidayRepository
}

func newAnalysisUseCase(t *testing.T) (*CapacityAnalysisUseCase, repoMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := repoMocks{
		collaborators: mock_interfaces.NewMockICollaboratorRepository(ctrl),
		timeRecords:   mock_interfaces.NewMockITimeRecordRepository(ctrl),
		estimates:     mock_interfaces.NewMockIEstimateRepository(ctrl),
		vigencias:     mock_interfaces.NewMockIVigenciaRepository(ctrl),
		holidays:      mock_interfaces.NewMockIHolidayRepository(ctrl),
	}
	uc := NewCapacityAnalysisUseCase(Repositories{
		Collaborators: m.collaborators,
		TimeRecords:   m.timeRecords,
		Estimates:     m.estimates,
		Vigencias:     m.vigencias,
		Holidays:      m.holidays,
	}, WithFetchConcurrency(2))
	return uc, m
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := capacity.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func validCommand() CapacityAnalysisCommand {
	return CapacityAnalysisCommand{
		DataInicio:  "2024-01-01",
		DataFim:     "2024-01-07",
		OrdemNiveis: []string{"colaborador", "cliente"},
	}
}

func TestCapacityAnalysisCommand_Params(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd := validCommand()
		cmd.ClienteIDs = []string{" 10 ", "10", ""}
		cmd.IgnorarFinaisSemana = true

		p, err := cmd.Params()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if p.Ordering.Root() != capacity.DimensionColaborador {
			t.Fatalf("unexpected root %q", p.Ordering.Root())
		}
		if got := p.Filters[capacity.DimensionCliente]; len(got) != 1 || got[0] != "10" {
			t.Fatalf("unexpected cliente filter %v", got)
		}
		if _, ok := p.Filters[capacity.DimensionProduto]; ok {
			t.Fatalf("empty filter must be omitted")
		}
		if !p.Options.IgnoreWeekends || p.Options.IgnoreHolidays {
			t.Fatalf("unexpected options %+v", p.Options)
		}
	})

	tests := []struct {
		name   string
		mutate func(*CapacityAnalysisCommand)
		fields []string
	}{
		{"empty ordering", func(c *CapacityAnalysisCommand) { c.OrdemNiveis = nil }, []string{"ordem_niveis"}},
		{"unknown level", func(c *CapacityAnalysisCommand) { c.OrdemNiveis = []string{"setor"} }, []string{"ordem_niveis"}},
		{"duplicate level", func(c *CapacityAnalysisCommand) { c.OrdemNiveis = []string{"tarefa", "tarefa"} }, []string{"ordem_niveis"}},
		{"inverted range", func(c *CapacityAnalysisCommand) { c.DataInicio = "2024-02-01" }, []string{"data_fim"}},
		{"bad format", func(c *CapacityAnalysisCommand) { c.DataInicio = "01/01/2024" }, []string{"data_inicio"}},
		{"missing dates and levels", func(c *CapacityAnalysisCommand) { *c = CapacityAnalysisCommand{} }, []string{"data_inicio", "data_fim", "ordem_niveis"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCommand()
			tt.mutate(&cmd)

			_, err := cmd.Params()
			if !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if len(verr.Fields) != len(tt.fields) {
				t.Fatalf("expected fields %v, got %v", tt.fields, verr.Fields)
			}
			for _, f := range tt.fields {
				if len(verr.Fields[f]) == 0 {
					t.Fatalf("expected detail for %s, got %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestCapacityAnalysisUseCase_Analyze(t *testing.T) {
	ctx := context.Background()

	t.Run("validation error skips storage", func(t *testing.T) {
		uc, _ := newAnalysisUseCase(t)
		cmd := validCommand()
		cmd.OrdemNiveis = []string{}

		_, err := uc.Analyze(ctx, cmd)
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("collaborators error", func(t *testing.T) {
		uc, m := newAnalysisUseCase(t)
		dbErr := errors.New("db")
		m.collaborators.EXPECT().List(gomock.Any(), gomock.Nil()).Return(nil, dbErr)

		_, err := uc.Analyze(ctx, validCommand())
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})

	t.Run("no collaborators yields empty analysis", func(t *testing.T) {
		uc, m := newAnalysisUseCase(t)
		cmd := validCommand()
		cmd.ColaboradorIDs = []string{"99"}
		m.collaborators.EXPECT().List(gomock.Any(), []string{"99"}).Return(nil, nil)

		res, err := uc.Analyze(ctx, cmd)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(res.Tree.Children) != 0 || len(res.Summary) != 0 {
			t.Fatalf("expected empty result, got %+v", res)
		}
		if res.SummaryDimension != capacity.DimensionColaborador {
			t.Fatalf("unexpected summary dimension %q", res.SummaryDimension)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newAnalysisUseCase(t)
		start, end := mustParse(t, "2024-01-01"), mustParse(t, "2024-01-07")
		cmd := validCommand()
		cmd.IgnorarFinaisSemana = true
		cmd.IgnorarFeriados = true
		hours := 8.0

		m.collaborators.EXPECT().List(gomock.Any(), gomock.Nil()).Return([]entities.Collaborator{
			{ID: "1", UserID: "101", Name: "Ana"},
			{ID: "2", UserID: "102", Name: "Bruno"},
		}, nil)
		m.timeRecords.EXPECT().ListByPeriod(gomock.Any(), start, end, []string{"101", "102"}).Return([]entities.TimeRecord{
			{CollaboratorID: "101", ClientID: "10,20", TaskID: "7", RealizedMs: 4 * 3_600_000},
		}, nil)
		m.estimates.EXPECT().ListByPeriod(gomock.Any(), start, end, []string{"1", "2"}).Return([]entities.EstimateRecord{
			{ResponsibleID: "1", ClientID: "10", TaskID: "7", EstimatedPerDay: 2},
		}, nil)
		m.holidays.EXPECT().ListByRange(gomock.Any(), start, end).Return([]entities.Holiday{
			{Date: mustParse(t, "2024-01-01"), Name: "Confraternização Universal"},
		}, nil)
		m.vigencias.EXPECT().ListByCollaborator(gomock.Any(), "1", end).Return([]entities.Vigencia{
			{CollaboratorID: "1", EffectiveFrom: mustParse(t, "2023-01-01"), HourlyCost: "50", ContractedHoursPerDay: &hours},
		}, nil)

		res, err := uc.Analyze(ctx, cmd)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Period.WorkingDays != 4 {
			t.Fatalf("expected 4 working days, got %d", res.Period.WorkingDays)
		}
		leaf := res.Tree.Children["1"].Children["10"].Leaf
		if leaf == nil {
			t.Fatalf("missing leaf 1/10: %+v", res.Tree.Children)
		}
		if leaf.HorasRealizadas != 4 || leaf.HorasEstimadas != 8 || leaf.HorasDisponiveis != 32 {
			t.Fatalf("unexpected leaf %+v", leaf)
		}
		if res.Tree.Children["1"].Children["20"].Leaf.HorasRealizadas != 4 {
			t.Fatalf("expected fan-out to client 20")
		}
		if res.Totals.Clientes != 2 || res.Totals.Colaboradores != 1 {
			t.Fatalf("unexpected totals %+v", res.Totals)
		}
		if s := res.Summary["1"]; s.PercentualUtilizacao == nil || *s.PercentualUtilizacao != 12.5 {
			t.Fatalf("unexpected summary %+v", s)
		}
	})

	t.Run("time records error aborts before vigencias", func(t *testing.T) {
		uc, m := newAnalysisUseCase(t)
		dbErr := errors.New("timeout")
		m.collaborators.EXPECT().List(gomock.Any(), gomock.Nil()).Return([]entities.Collaborator{{ID: "1", UserID: "101"}}, nil)
		m.timeRecords.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)
		m.estimates.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := uc.Analyze(ctx, validCommand())
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected wrapped timeout, got %v", err)
		}
	})

	t.Run("vigencia error", func(t *testing.T) {
		uc, m := newAnalysisUseCase(t)
		dbErr := errors.New("throttled")
		m.collaborators.EXPECT().List(gomock.Any(), gomock.Nil()).Return([]entities.Collaborator{{ID: "1", UserID: "101"}}, nil)
		m.timeRecords.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]entities.TimeRecord{{CollaboratorID: "101", TaskID: "1", RealizedMs: 1000}}, nil)
		m.estimates.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.vigencias.EXPECT().ListByCollaborator(gomock.Any(), "1", gomock.Any()).Return(nil, dbErr)

		_, err := uc.Analyze(ctx, validCommand())
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected wrapped throttled, got %v", err)
		}
	})

	t.Run("cancelled between phases", func(t *testing.T) {
		uc, m := newAnalysisUseCase(t)
		cctx, cancel := context.WithCancel(ctx)
		defer cancel()
		m.collaborators.EXPECT().List(gomock.Any(), gomock.Nil()).DoAndReturn(
			func(context.Context, []string) ([]entities.Collaborator, error) {
				cancel()
				return []entities.Collaborator{{ID: "1", UserID: "101"}}, nil
			},
		)

		_, err := uc.Analyze(cctx, validCommand())
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestCapacityAnalysisUseCase_Analyze_Names(t *testing.T) {
	ctx := context.Background()
	start, end := mustParse(t, "2024-01-01"), mustParse(t, "2024-01-07")
	hours := 8.0

	setup := func(t *testing.T) (*CapacityAnalysisUseCase, repoMocks, *mock_interfaces.MockICatalogRepository) {
		t.Helper()
		_, m := newAnalysisUseCase(t)
		catalog := mock_interfaces.NewMockICatalogRepository(gomock.NewController(t))
		uc := NewCapacityAnalysisUseCase(Repositories{
			Collaborators: m.collaborators,
			TimeRecords:   m.timeRecords,
			Estimates:     m.estimates,
			Vigencias:     m.vigencias,
			Holidays:      m.holidays,
			Catalog:       catalog,
		})

		m.collaborators.EXPECT().List(gomock.Any(), gomock.Nil()).Return([]entities.Collaborator{
			{ID: "1", UserID: "101", Name: "Ana"},
		}, nil)
		m.timeRecords.EXPECT().ListByPeriod(gomock.Any(), start, end, []string{"101"}).Return([]entities.TimeRecord{
			{CollaboratorID: "101", ClientID: "10,20", TaskID: "7", RealizedMs: 4 * 3_600_000},
		}, nil)
		m.estimates.EXPECT().ListByPeriod(gomock.Any(), start, end, []string{"1"}).Return([]entities.EstimateRecord{
			{ResponsibleID: "1", ClientID: " 10 ", TaskID: "7", EstimatedPerDay: 2},
		}, nil)
		m.vigencias.EXPECT().ListByCollaborator(gomock.Any(), "1", end).Return([]entities.Vigencia{
			{CollaboratorID: "1", EffectiveFrom: mustParse(t, "2023-01-01"), HourlyCost: "50", ContractedHoursPerDay: &hours, ContractTypeID: "2"},
		}, nil)
		return uc, m, catalog
	}

	t.Run("names reach tree and summary", func(t *testing.T) {
		uc, _, catalog := setup(t)
		catalog.EXPECT().ListNames(gomock.Any(), entities.CatalogCliente, []string{"10", "20"}).
			Return(map[string]string{"10": "Acme"}, nil)
		catalog.EXPECT().ListNames(gomock.Any(), entities.CatalogTarefa, []string{"7"}).
			Return(map[string]string{"7": "Revisão"}, nil)
		catalog.EXPECT().ListNames(gomock.Any(), entities.CatalogTipoContrato, []string{"2"}).
			Return(map[string]string{"2": "CLT"}, nil)

		res, err := uc.Analyze(ctx, validCommand())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		acme := res.Tree.Children["1"].Children["10"].Leaf
		if acme == nil || acme.Name != "Acme" {
			t.Fatalf("unexpected leaf 1/10: %+v", acme)
		}
		if got := res.Tree.Children["1"].Children["20"].Leaf.Name; got != "Cliente #20" {
			t.Fatalf("expected fallback name, got %q", got)
		}
		if acme.Contract == nil || acme.Contract.TypeID != "2" || acme.Contract.TypeName != "CLT" {
			t.Fatalf("unexpected contract %+v", acme.Contract)
		}
		if s := res.Summary["1"]; s.Name != "Ana" || s.Contract == nil || s.Contract.TypeName != "CLT" {
			t.Fatalf("unexpected summary %+v", s)
		}
	})

	t.Run("catalog error aborts", func(t *testing.T) {
		uc, _, catalog := setup(t)
		dbErr := errors.New("unavailable")
		catalog.EXPECT().ListNames(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr).MinTimes(1).MaxTimes(3)

		_, err := uc.Analyze(ctx, validCommand())
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected wrapped unavailable, got %v", err)
		}
	})
}

func TestReferencedIDs(t *testing.T) {
	got := referencedIDs(
		[]entities.TimeRecord{{ClientID: "20, 10", ProductID: "3", TaskTypeID: " "}},
		[]entities.EstimateRecord{{ClientID: "10", TaskID: "7"}},
	)
	want := map[capacity.Dimension][]string{
		capacity.DimensionCliente: {"10", "20"},
		capacity.DimensionProduto: {"3"},
		capacity.DimensionTarefa:  {"7"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for d, ids := range want {
		if strings.Join(got[d], ",") != strings.Join(ids, ",") {
			t.Fatalf("%s: expected %v, got %v", d, ids, got[d])
		}
	}
}

func TestInvolvedCollaborators(t *testing.T) {
	got := involvedCollaborators(
		[]entities.Collaborator{{ID: "1", UserID: "101"}, {ID: "2", UserID: "102"}},
		[]entities.TimeRecord{{CollaboratorID: "102"}, {CollaboratorID: "555"}, {CollaboratorID: " "}},
		[]entities.EstimateRecord{{ResponsibleID: "3"}, {ResponsibleID: "2"}},
	)
	want := []string{"2", "3", "555"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
