package usecase

import (
	"context"
	"fmt"
	"strings"

	"gestao_capacidade/internal/domain/entities"
	"gestao_capacidade/internal/infrastructure/logger"
	"gestao_capacidade/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CreateEstimateRulesCommand delegates a task set to a responsável: one rule
// is created for every produto × tarefa pair, covering [DataInicio, DataFim].
type CreateEstimateRulesCommand struct {
	ClienteID        string
	ProdutoIDs       []string
	TipoTarefaID     string
	TarefaIDs        []string
	ResponsavelID    string
	DataInicio       string
	DataFim          string
	TempoEstimadoDia float64
}

// IEstimateUseCase manages estimate rules (tempo estimado).
type IEstimateUseCase interface {
	CreateRules(ctx context.Context, cmd CreateEstimateRulesCommand) ([]entities.EstimateRecord, error)
	ListByPeriod(ctx context.Context, dataInicio, dataFim string, responsavelIDs []string) ([]entities.EstimateRecord, error)
}

type EstimateUseCase struct {
	repo interfaces.IEstimateRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo}
}

func (u *EstimateUseCase) CreateRules(ctx context.Context, cmd CreateEstimateRulesCommand) ([]entities.EstimateRecord, error) {
	verr := &ValidationError{}
	cliente := strings.TrimSpace(cmd.ClienteID)
	if cliente == "" {
		verr.add("cliente_id", "campo obrigatório")
	}
	responsavel := strings.TrimSpace(cmd.ResponsavelID)
	if responsavel == "" {
		verr.add("responsavel_id", "campo obrigatório")
	}
	produtos := normalizeIDs(cmd.ProdutoIDs)
	if len(produtos) == 0 {
		verr.add("produto_ids", "deve ser uma lista não vazia")
	}
	tarefas := normalizeIDs(cmd.TarefaIDs)
	if len(tarefas) == 0 {
		verr.add("tarefa_ids", "deve ser uma lista não vazia")
	}
	if cmd.TempoEstimadoDia <= 0 {
		verr.add("tempo_estimado_dia", "deve ser maior que zero")
	}
	start, okStart := parseDateField(verr, "data_inicio", cmd.DataInicio)
	end, okEnd := parseDateField(verr, "data_fim", cmd.DataFim)
	if okStart && okEnd && start.After(end) {
		verr.add("data_fim", "data_inicio deve ser anterior ou igual a data_fim")
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}

	rules := make([]entities.EstimateRecord, 0, len(produtos)*len(tarefas))
	for _, produto := range produtos {
		for _, tarefa := range tarefas {
			s, e := start, end
			rules = append(rules, entities.EstimateRecord{
				ID:              uuid.NewString(),
				ResponsibleID:   responsavel,
				ClientID:        cliente,
				ProductID:       produto,
				TaskTypeID:      strings.TrimSpace(cmd.TipoTarefaID),
				TaskID:          tarefa,
				StartDate:       &s,
				EndDate:         &e,
				EstimatedPerDay: cmd.TempoEstimadoDia,
			})
		}
	}

	if err := u.repo.Save(ctx, rules); err != nil {
		return nil, fmt.Errorf("save estimate rules: %w", err)
	}

	logger.WithContext(ctx).WithFields(logrus.Fields{
		"cliente_id":     cliente,
		"responsavel_id": responsavel,
		"regras":         len(rules),
	}).Info("[estimate][usecase] rules created")
	return rules, nil
}

func (u *EstimateUseCase) ListByPeriod(ctx context.Context, dataInicio, dataFim string, responsavelIDs []string) ([]entities.EstimateRecord, error) {
	verr := &ValidationError{}
	start, okStart := parseDateField(verr, "data_inicio", dataInicio)
	end, okEnd := parseDateField(verr, "data_fim", dataFim)
	if okStart && okEnd && start.After(end) {
		verr.add("data_fim", "data_inicio deve ser anterior ou igual a data_fim")
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}

	rules, err := u.repo.ListByPeriod(ctx, start, end, normalizeIDs(responsavelIDs))
	if err != nil {
		return nil, fmt.Errorf("list estimate rules: %w", err)
	}
	return rules, nil
}
