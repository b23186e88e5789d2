package handlers

import (
	"net/http"

	request "gestao_capacidade/internal/adapter/http/dto/request"
	response "gestao_capacidade/internal/adapter/http/dto/response"
	"gestao_capacidade/internal/infrastructure/logger"
	"gestao_capacidade/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimateHandler manages the estimate rules (tempo estimado) that feed the
// estimated side of the capacity analysis.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateRules godoc
// @Summary      Create estimate rules
// @Description  Delegates tasks to a responsável: one rule per produto × tarefa pair.
// @Tags         tempo-estimado
// @Accept       json
// @Produce      json
// @Param        body  body      request.EstimateRuleRequest  true  "Rules to create"
// @Success      201   {object}  response.EstimateRulesResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /tempo-estimado [post]
func (h *EstimateHandler) CreateRules(c *gin.Context) {
	var payload request.EstimateRuleRequest
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
	rules, err := h.usecase.CreateRules(ctx, payload.ToCommand())
	if err != nil {
		appErr := mapCapacityError(err)
		if appErr.IsServerError() {
			logger.WithContext(ctx).WithError(err).Error("[estimate][handler] create rules failed")
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimateRules(rules))
}

// ListRules godoc
// @Summary      List estimate rules
// @Description  Rules overlapping [data_inicio, data_fim], optionally restricted to some responsáveis.
// @Tags         tempo-estimado
// @Produce      json
// @Param        data_inicio     query     string  true   "Period start (YYYY-MM-DD)"
// @Param        data_fim        query     string  true   "Period end (YYYY-MM-DD)"
// @Param        responsavel_id  query     string  false  "Comma-separated responsável ids"
// @Success      200             {object}  response.EstimateRulesResponse
// @Failure      400             {object}  pkg.HTTPError
// @Failure      500             {object}  pkg.HTTPError
// @Router       /tempo-estimado [get]
func (h *EstimateHandler) ListRules(c *gin.Context) {
	var query request.EstimateRuleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		appErr := errValidationFailed.WithDetails(map[string][]string{"query": {err.Error()}})
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	rules, err := h.usecase.ListByPeriod(ctx, query.DataInicio, query.DataFim, query.ResponsavelIDs())
	if err != nil {
		appErr := mapCapacityError(err)
		if appErr.IsServerError() {
			logger.WithContext(ctx).WithError(err).Error("[estimate][handler] list rules failed")
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateRules(rules))
}
