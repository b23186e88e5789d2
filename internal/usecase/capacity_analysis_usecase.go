package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"gestao_capacidade/internal/domain/capacity"
	"gestao_capacidade/internal/domain/entities"
	"gestao_capacidade/internal/infrastructure/logger"
	"gestao_capacidade/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidRequest = errors.New("invalid capacity analysis request")

const defaultFetchConcurrency = 8

// ValidationError carries field-level messages for a rejected command. It
// matches ErrInvalidRequest with errors.Is.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.Fields[f], ", "))
	}
	return ErrInvalidRequest.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// CapacityAnalysisCommand is a capacity analysis request as received from a
// transport (HTTP body or CLI flags), before validation.
type CapacityAnalysisCommand struct {
	DataInicio  string
	DataFim     string
	OrdemNiveis []string

	ColaboradorIDs []string
	ClienteIDs     []string
	ProdutoIDs     []string
	TipoTarefaIDs  []string
	TarefaIDs      []string

	IgnorarFinaisSemana bool
	IgnorarFeriados     bool
	IgnorarFolgas       bool
}

// Params validates the command and converts it to engine parameters. Every
// problem found is reported, not only the first.
func (c CapacityAnalysisCommand) Params() (capacity.Params, error) {
	verr := &ValidationError{}
	var p capacity.Params

	start, okStart := parseDateField(verr, "data_inicio", c.DataInicio)
	end, okEnd := parseDateField(verr, "data_fim", c.DataFim)
	if okStart && okEnd && start.After(end) {
		verr.add("data_fim", "data_inicio deve ser anterior ou igual a data_fim")
	}

	ordering, err := capacity.NewOrdering(c.OrdemNiveis)
	switch {
	case errors.Is(err, capacity.ErrEmptyOrdering):
		verr.add("ordem_niveis", "ordem_niveis deve conter ao menos um nível")
	case errors.Is(err, capacity.ErrUnknownDimension):
		verr.add("ordem_niveis", fmt.Sprintf("nível inválido (%v); valores possíveis: colaborador, cliente, produto, tipo_tarefa, tarefa", err))
	case errors.Is(err, capacity.ErrDuplicateDimension):
		verr.add("ordem_niveis", fmt.Sprintf("nível repetido (%v)", err))
	}

	if len(verr.Fields) > 0 {
		return p, verr
	}

	p.Start, p.End, p.Ordering = start, end, ordering
	p.Options = capacity.CalendarOptions{
		IgnoreWeekends: c.IgnorarFinaisSemana,
		IgnoreHolidays: c.IgnorarFeriados,
		IgnoreLeave:    c.IgnorarFolgas,
	}
	p.Filters = capacity.Filters{}
	for d, ids := range map[capacity.Dimension][]string{
		capacity.DimensionColaborador: c.ColaboradorIDs,
		capacity.DimensionCliente:     c.ClienteIDs,
		capacity.DimensionProduto:     c.ProdutoIDs,
		capacity.DimensionTipoTarefa:  c.TipoTarefaIDs,
		capacity.DimensionTarefa:      c.TarefaIDs,
	} {
		if ids = normalizeIDs(ids); len(ids) > 0 {
			p.Filters[d] = ids
		}
	}
	return p, nil
}

func parseDateField(verr *ValidationError, field, raw string) (t time.Time, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		verr.add(field, "campo obrigatório")
		return t, false
	}
	parsed, err := capacity.ParseDate(raw)
	if err != nil {
		verr.add(field, "Formato esperado: YYYY-MM-DD")
		return t, false
	}
	return parsed, true
}

func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = capacity.NormalizeID(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ICapacityAnalysisUseCase runs capacity analyses over the stored records.
type ICapacityAnalysisUseCase interface {
	Analyze(ctx context.Context, cmd CapacityAnalysisCommand) (capacity.Result, error)
}

// Repositories groups the storage ports the analysis reads from.
type Repositories struct {
	Collaborators interfaces.ICollaboratorRepository
	TimeRecords   interfaces.ITimeRecordRepository
	Estimates     interfaces.IEstimateRepository
	Vigencias     interfaces.IVigenciaRepository
	Holidays      interfaces.IHolidayRepository
	// Catalog is optional; without it names fall back to "<Dimensão> #id".
	Catalog interfaces.ICatalogRepository
}

type CapacityAnalysisUseCase struct {
	repos       Repositories
	leave       capacity.LeavePolicy
	concurrency int
}

var _ ICapacityAnalysisUseCase = (*CapacityAnalysisUseCase)(nil)

type CapacityAnalysisOption func(*CapacityAnalysisUseCase)

// WithFetchConcurrency bounds the parallel per-collaborator vigência lookups.
func WithFetchConcurrency(n int) CapacityAnalysisOption {
	return func(u *CapacityAnalysisUseCase) {
		if n > 0 {
			u.concurrency = n
		}
	}
}

// WithLeavePolicy sets the source of leave days used when ignorar_folgas is
// requested.
func WithLeavePolicy(p capacity.LeavePolicy) CapacityAnalysisOption {
	return func(u *CapacityAnalysisUseCase) {
		if p != nil {
			u.leave = p
		}
	}
}

func NewCapacityAnalysisUseCase(repos Repositories, opts ...CapacityAnalysisOption) *CapacityAnalysisUseCase {
	u := &CapacityAnalysisUseCase{
		repos:       repos,
		leave:       capacity.NoLeave{},
		concurrency: defaultFetchConcurrency,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Analyze validates cmd, fetches the records it needs and runs the engine.
//
// Fetching happens in three phases: the collaborator directory, then time
// records, estimates and holidays in parallel, then the vigências of every
// collaborator that has records. Display names are looked up last, when a
// catalog is configured. Any fetch error aborts the analysis.
func (u *CapacityAnalysisUseCase) Analyze(ctx context.Context, cmd CapacityAnalysisCommand) (capacity.Result, error) {
	params, err := cmd.Params()
	if err != nil {
		return capacity.Result{}, err
	}

	log := logger.WithContext(ctx).WithFields(logrus.Fields{
		"data_inicio":  capacity.FormatDate(params.Start),
		"data_fim":     capacity.FormatDate(params.End),
		"ordem_niveis": strings.Join(params.Ordering.Strings(), ","),
	})
	if params.Options.IgnoreLeave {
		if _, none := u.leave.(capacity.NoLeave); none {
			log.Warn("[capacity][usecase] ignorar_folgas requested but no leave source is configured; leave days are counted")
		}
	}

	collaborators, err := u.repos.Collaborators.List(ctx, params.Filters[capacity.DimensionColaborador])
	if err != nil {
		return capacity.Result{}, fmt.Errorf("list collaborators: %w", err)
	}
	if len(collaborators) == 0 {
		log.Info("[capacity][usecase] no collaborators matched")
		return capacity.Analyze(capacity.Input{}, params), nil
	}
	if err := ctx.Err(); err != nil {
		return capacity.Result{}, err
	}

	in := capacity.Input{Collaborators: collaborators, Leave: u.leave}
	if err := u.fetchRecords(ctx, params, &in); err != nil {
		return capacity.Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return capacity.Result{}, err
	}

	vigencias, err := u.fetchVigencias(ctx, params, involvedCollaborators(collaborators, in.TimeRecords, in.Estimates))
	if err != nil {
		return capacity.Result{}, err
	}
	in.Vigencias = vigencias
	if err := ctx.Err(); err != nil {
		return capacity.Result{}, err
	}

	if u.repos.Catalog != nil {
		if err := u.fetchNames(ctx, &in); err != nil {
			return capacity.Result{}, err
		}
	}

	res := capacity.Analyze(in, params)
	log.WithFields(logrus.Fields{
		"colaboradores": len(collaborators),
		"registros":     len(in.TimeRecords),
		"estimativas":   len(in.Estimates),
		"vigencias":     len(in.Vigencias),
		"feriados":      len(in.Holidays),
	}).Info("[capacity][usecase] analysis done")
	return res, nil
}

func (u *CapacityAnalysisUseCase) fetchRecords(ctx context.Context, params capacity.Params, in *capacity.Input) error {
	var userIDs, memberIDs []string
	for _, c := range in.Collaborators {
		if id := capacity.NormalizeID(c.UserID); id != "" {
			userIDs = append(userIDs, id)
		}
		if id := capacity.NormalizeID(c.ID); id != "" {
			memberIDs = append(memberIDs, id)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	if len(userIDs) > 0 {
		g.Go(func() error {
			records, err := u.repos.TimeRecords.ListByPeriod(gctx, params.Start, params.End, userIDs)
			if err != nil {
				return fmt.Errorf("list time records: %w", err)
			}
			in.TimeRecords = records
			return nil
		})
	}
	if len(memberIDs) > 0 {
		g.Go(func() error {
			estimates, err := u.repos.Estimates.ListByPeriod(gctx, params.Start, params.End, memberIDs)
			if err != nil {
				return fmt.Errorf("list estimates: %w", err)
			}
			in.Estimates = estimates
			return nil
		})
	}
	if params.Options.IgnoreHolidays {
		g.Go(func() error {
			holidays, err := u.repos.Holidays.ListByRange(gctx, params.Start, params.End)
			if err != nil {
				return fmt.Errorf("list holidays: %w", err)
			}
			in.Holidays = holidays
			return nil
		})
	}
	return g.Wait()
}

func (u *CapacityAnalysisUseCase) fetchVigencias(ctx context.Context, params capacity.Params, ids []string) ([]entities.Vigencia, error) {
	perCollaborator := make([][]entities.Vigencia, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			v, err := u.repos.Vigencias.ListByCollaborator(gctx, id, params.End)
			if err != nil {
				return fmt.Errorf("list vigencias of %s: %w", id, err)
			}
			perCollaborator[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []entities.Vigencia
	for _, v := range perCollaborator {
		out = append(out, v...)
	}
	return out, nil
}

var catalogKinds = map[capacity.Dimension]string{
	capacity.DimensionCliente:    entities.CatalogCliente,
	capacity.DimensionProduto:    entities.CatalogProduto,
	capacity.DimensionTipoTarefa: entities.CatalogTipoTarefa,
	capacity.DimensionTarefa:     entities.CatalogTarefa,
}

// fetchNames resolves the display names of every id the records, estimates
// and vigências reference.
func (u *CapacityAnalysisUseCase) fetchNames(ctx context.Context, in *capacity.Input) error {
	ids := referencedIDs(in.TimeRecords, in.Estimates)
	byDimension := make([]map[string]string, len(capacity.Dimensions))

	var contractTypes map[string]string
	g, gctx := errgroup.WithContext(ctx)
	for i, d := range capacity.Dimensions {
		kind, ok := catalogKinds[d]
		if !ok || len(ids[d]) == 0 {
			continue
		}
		g.Go(func() error {
			names, err := u.repos.Catalog.ListNames(gctx, kind, ids[d])
			if err != nil {
				return fmt.Errorf("list %s names: %w", kind, err)
			}
			byDimension[i] = names
			return nil
		})
	}
	if typeIDs := contractTypeIDs(in.Vigencias); len(typeIDs) > 0 {
		g.Go(func() error {
			names, err := u.repos.Catalog.ListNames(gctx, entities.CatalogTipoContrato, typeIDs)
			if err != nil {
				return fmt.Errorf("list %s names: %w", entities.CatalogTipoContrato, err)
			}
			contractTypes = names
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	in.Names = make(capacity.Names, len(capacity.Dimensions))
	for i, d := range capacity.Dimensions {
		for id, name := range byDimension[i] {
			in.Names.Set(d, id, name)
		}
	}
	in.ContractTypes = contractTypes
	return nil
}

// referencedIDs collects the sorted, normalized ids of the non-collaborator
// dimensions. Multi-client fields contribute each of their clients.
func referencedIDs(records []entities.TimeRecord, estimates []entities.EstimateRecord) map[capacity.Dimension][]string {
	sets := make(map[capacity.Dimension]map[string]struct{}, len(catalogKinds))
	add := func(d capacity.Dimension, raw ...string) {
		for _, v := range raw {
			id := capacity.NormalizeID(v)
			if id == "" {
				continue
			}
			if sets[d] == nil {
				sets[d] = make(map[string]struct{})
			}
			sets[d][id] = struct{}{}
		}
	}
	for _, r := range records {
		add(capacity.DimensionCliente, capacity.SplitIDs(r.ClientID)...)
		add(capacity.DimensionProduto, r.ProductID)
		add(capacity.DimensionTipoTarefa, r.TaskTypeID)
		add(capacity.DimensionTarefa, r.TaskID)
	}
	for _, e := range estimates {
		add(capacity.DimensionCliente, capacity.SplitIDs(e.ClientID)...)
		add(capacity.DimensionProduto, e.ProductID)
		add(capacity.DimensionTipoTarefa, e.TaskTypeID)
		add(capacity.DimensionTarefa, e.TaskID)
	}

	out := make(map[capacity.Dimension][]string, len(sets))
	for d, set := range sets {
		out[d] = sortedKeys(set)
	}
	return out
}

func contractTypeIDs(vigencias []entities.Vigencia) []string {
	set := make(map[string]struct{})
	for _, v := range vigencias {
		if id := capacity.NormalizeID(v.ContractTypeID); id != "" {
			set[id] = struct{}{}
		}
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// involvedCollaborators returns the sorted collaborator IDs that own at least
// one time record or estimate.
func involvedCollaborators(collaborators []entities.Collaborator, records []entities.TimeRecord, estimates []entities.EstimateRecord) []string {
	classifier := capacity.NewClassifier(collaborators)
	set := make(map[string]struct{})
	for _, r := range records {
		if id := classifier.CollaboratorForUser(r.CollaboratorID); id != "" {
			set[id] = struct{}{}
		}
	}
	for _, e := range estimates {
		if id := capacity.NormalizeID(e.ResponsibleID); id != "" {
			set[id] = struct{}{}
		}
	}
	return sortedKeys(set)
}
