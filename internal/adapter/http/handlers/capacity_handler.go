package handlers

import (
	"context"
	"errors"
	"net/http"

	request "gestao_capacidade/internal/adapter/http/dto/request"
	response "gestao_capacidade/internal/adapter/http/dto/response"
	"gestao_capacidade/internal/infrastructure/logger"
	"gestao_capacidade/internal/usecase"
	"gestao_capacidade/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errValidationFailed = pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Validação falhou", http.StatusBadRequest)
)

// CapacityHandler serves the capacity analysis (gestão de capacidade)
// endpoint.

type CapacityHandler struct {
	usecase usecase.ICapacityAnalysisUseCase
}

func NewCapacityHandler(uc usecase.ICapacityAnalysisUseCase) *CapacityHandler {
	return &CapacityHandler{usecase: uc}
}

// Analyze godoc
// @Summary      Capacity analysis
// @Description  Estimated vs realized hours, availability and utilization for a period, nested by the requested levels.
// @Tags         capacity
// @Accept       json
// @Produce      json
// @Param        body  body      request.CapacityAnalysisRequest  true  "Analysis parameters"
// @Success      200   {object}  response.CapacityAnalysisResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /capacity-analysis [post]
func (h *CapacityHandler) Analyze(c *gin.Context) {
	var payload request.CapacityAnalysisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := errValidationFailed.WithDetails(map[string][]string{"body": {err.Error()}})
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if details := payload.Validate(); len(details) > 0 {
		appErr := errValidationFailed.WithDetails(details)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	result, err := h.usecase.Analyze(ctx, payload.ToCommand())
	if err != nil {
		appErr := mapCapacityError(err)
		if appErr.IsServerError() {
			logger.WithContext(ctx).WithError(err).Error("[capacity][handler] analysis failed")
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCapacityResult(result))
}

func mapCapacityError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return errValidationFailed.WithDetails(verr.Fields)
	case errors.Is(err, usecase.ErrInvalidRequest):
		return errValidationFailed
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("TIMEOUT", "The analysis took too long", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
