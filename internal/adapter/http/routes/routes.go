package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "gestao_capacidade/docs" // swagger docs registration
	"gestao_capacidade/internal/adapter/http/handlers"
	"gestao_capacidade/internal/adapter/http/middleware"
	"gestao_capacidade/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers are the HTTP handlers mounted under /v1.
type Handlers struct {
	Capacity *handlers.CapacityHandler
	Estimate *handlers.EstimateHandler
}

// NewRouter builds the gin engine with middlewares, swagger and the v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCapacityRoutes(v1, h.Capacity)
	if h.Estimate != nil {
		addEstimateRoutes(v1, h.Estimate)
	}
	return router
}

// Run serves router on addr until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, addr string, router http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().WithField("addr", addr).Info("[http] listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.L().Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
}
