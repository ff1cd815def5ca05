package route

import (
	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/controller"
	"github.com/jeacloset/erp-vestuario/pkg/auth"
)

// RegisterInvestmentRoutes registra as rotas de lotes de investimento
func RegisterInvestmentRoutes(r *gin.RouterGroup, investmentController *controller.InvestmentController) {
	investments := r.Group("/investments")
	investments.Use(auth.JWTAuthMiddleware())
	{
		investments.GET("", investmentController.List)
	}
}
