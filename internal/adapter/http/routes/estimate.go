package routes

import (
	"gestao_capacidade/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathEstimateRules = "/tempo-estimado"

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	rg.POST(PathEstimateRules, estimateHandler.CreateRules)
	rg.GET(PathEstimateRules, estimateHandler.ListRules)
}
