package cli

import (
	"encoding/json"

	response "gestao_capacidade/internal/adapter/http/dto/response"
	"gestao_capacidade/internal/infrastructure/logger"
	"gestao_capacidade/internal/usecase"

	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	inicio, fim   string
	niveis        []string
	colaboradores []string
	clientes      []string
	produtos      []string
	tiposTarefa   []string
	tarefas       []string
	finaisSemana  bool
	feriados      bool
	folgas        bool
	pretty        bool
}

func (o analyzeOptions) command() usecase.CapacityAnalysisCommand {
	return usecase.CapacityAnalysisCommand{
		DataInicio:          o.inicio,
		DataFim:             o.fim,
		OrdemNiveis:         o.niveis,
		ColaboradorIDs:      o.colaboradores,
		ClienteIDs:          o.clientes,
		ProdutoIDs:          o.produtos,
		TipoTarefaIDs:       o.tiposTarefa,
		TarefaIDs:           o.tarefas,
		IgnorarFinaisSemana: o.finaisSemana,
		IgnorarFeriados:     o.feriados,
		IgnorarFolgas:       o.folgas,
	}
}

func newAnalyzeCommand(a *app) *cobra.Command {
	var opts analyzeOptions
	cmd := &cobra.Command{
		Use:     "analyze",
		Short:   "Run a capacity analysis and print the JSON response",
		Example: "  capacidade analyze --inicio 2024-01-01 --fim 2024-01-31 --niveis cliente,colaborador --ignorar-finais-semana",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			st, err := a.openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := st.close(); err != nil {
					logger.L().WithError(err).Warn("[cli][analyze] closing storage")
				}
			}()

			result, err := a.newUseCase(st.repos).Analyze(ctx, opts.command())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if opts.pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(response.FromCapacityResult(result))
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.inicio, "inicio", "", "period start (YYYY-MM-DD)")
	f.StringVar(&opts.fim, "fim", "", "period end (YYYY-MM-DD)")
	f.StringSliceVar(&opts.niveis, "niveis", nil, "level ordering: colaborador, cliente, produto, tipo_tarefa, tarefa")
	f.StringSliceVar(&opts.colaboradores, "colaborador", nil, "restrict to these collaborator ids")
	f.StringSliceVar(&opts.clientes, "cliente", nil, "restrict to these client ids")
	f.StringSliceVar(&opts.produtos, "produto", nil, "restrict to these product ids")
	f.StringSliceVar(&opts.tiposTarefa, "tipo-tarefa", nil, "restrict to these task type ids")
	f.StringSliceVar(&opts.tarefas, "tarefa", nil, "restrict to these task ids")
	f.BoolVar(&opts.finaisSemana, "ignorar-finais-semana", false, "exclude Saturdays and Sundays")
	f.BoolVar(&opts.feriados, "ignorar-feriados", false, "exclude holidays")
	f.BoolVar(&opts.folgas, "ignorar-folgas", false, "exclude collaborator leave days")
	f.BoolVar(&opts.pretty, "pretty", false, "indent the JSON output")
	_ = cmd.MarkFlagRequired("inicio")
	_ = cmd.MarkFlagRequired("fim")
	_ = cmd.MarkFlagRequired("niveis")
	return cmd
}
