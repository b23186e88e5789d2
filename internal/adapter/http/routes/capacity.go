package routes

import (
	"gestao_capacidade/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCapacityAnalysis = "/capacity-analysis"
)

func addCapacityRoutes(rg *gin.RouterGroup, capacityHandler *handlers.CapacityHandler) {
	rg.POST(PathCapacityAnalysis, capacityHandler.Analyze)
}
