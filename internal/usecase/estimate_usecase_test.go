package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_capacidade/internal/domain/entities"
	mock_interfaces "gestao_capacidade/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validRulesCommand() CreateEstimateRulesCommand {
	return CreateEstimateRulesCommand{
		ClienteID:        " 10 ",
		ProdutoIDs:       []string{"3", "4", "3"},
		TipoTarefaID:     "101",
		TarefaIDs:        []string{"5"},
		ResponsavelID:    "1",
		DataInicio:       "2024-01-01",
		DataFim:          "2024-01-31",
		TempoEstimadoDia: 3_600_000,
	}
}

func TestEstimateUseCase_CreateRules(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.CreateRules(context.Background(), CreateEstimateRulesCommand{DataInicio: "2024-02-01", DataFim: "2024-01-01"})
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %T", err)
		}
		for _, field := range []string{"cliente_id", "responsavel_id", "produto_ids", "tarefa_ids", "tempo_estimado_dia", "data_fim"} {
			if len(verr.Fields[field]) == 0 {
				t.Fatalf("expected message for %s: %+v", field, verr.Fields)
			}
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := NewEstimateUseCase(repo).CreateRules(context.Background(), validRulesCommand())
		if err == nil || err.Error() != "save estimate rules: db" {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})

	t.Run("one rule per produto and tarefa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rules []entities.EstimateRecord) error {
				if len(rules) != 2 {
					t.Fatalf("expected 2 rules, got %d", len(rules))
				}
				return nil
			},
		)

		rules, err := NewEstimateUseCase(repo).CreateRules(context.Background(), validRulesCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rules[0].ProductID != "3" || rules[1].ProductID != "4" {
			t.Fatalf("unexpected products: %+v", rules)
		}
		r := rules[0]
		if r.ID == "" || r.ID == rules[1].ID {
			t.Fatalf("expected distinct ids: %+v", rules)
		}
		if r.ClientID != "10" || r.TaskID != "5" || r.TaskTypeID != "101" || r.ResponsibleID != "1" {
			t.Fatalf("unexpected rule: %+v", r)
		}
		if !r.StartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) || !r.EndDate.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected range: %v..%v", r.StartDate, r.EndDate)
		}
		if r.EstimatedPerDay != 3_600_000 {
			t.Fatalf("unexpected per day: %v", r.EstimatedPerDay)
		}
	})
}

func TestEstimateUseCase_ListByPeriod(t *testing.T) {
	t.Run("invalid dates", func(t *testing.T) {
		_, err := NewEstimateUseCase(nil).ListByPeriod(context.Background(), "01/01/2024", "", nil)
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().ListByPeriod(gomock.Any(), start, end, []string{"1", "2"}).Return([]entities.EstimateRecord{{ID: "e1"}}, nil)

		rules, err := NewEstimateUseCase(repo).ListByPeriod(context.Background(), "2024-01-01", "2024-01-31", []string{" 1", "2", "1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rules) != 1 || rules[0].ID != "e1" {
			t.Fatalf("unexpected rules: %+v", rules)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		repo.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		_, err := NewEstimateUseCase(repo).ListByPeriod(context.Background(), "2024-01-01", "2024-01-31", nil)
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}
