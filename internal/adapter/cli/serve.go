package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gestao_capacidade/internal/adapter/http/handlers"
	"gestao_capacidade/internal/adapter/http/routes"
	"gestao_capacidade/internal/infrastructure/logger"
	"gestao_capacidade/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	gin.SetMode(a.cfg.GinMode)

	st, err := a.openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.L().WithError(err).Warn("[cli][serve] closing storage")
		}
	}()

	router := routes.NewRouter(routes.Handlers{
		Capacity: handlers.NewCapacityHandler(a.newUseCase(st.repos)),
		Estimate: handlers.NewEstimateHandler(usecase.NewEstimateUseCase(st.repos.Estimates)),
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.L().WithField("driver", a.cfg.StorageDriver).Info("[cli][serve] starting")
	return routes.Run(ctx, a.cfg.Addr(), router)
}
