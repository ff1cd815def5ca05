package route

import (
	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/controller"
	"github.com/jeacloset/erp-vestuario/pkg/auth"
)

// RegisterCashflowRoutes registra as rotas do fluxo de caixa
func RegisterCashflowRoutes(r *gin.RouterGroup, cashflowController *controller.CashflowController) {
	cashflow := r.Group("/cashflow")
	cashflow.Use(auth.JWTAuthMiddleware())
	{
		cashflow.GET("", cashflowController.List)

		write := cashflow.Group("")
		write.Use(auth.RequireWrite())
		{
			write.POST("", cashflowController.Create)
			write.PUT("/:id/pay", cashflowController.MarkPaid)
			write.DELETE("/:id", cashflowController.Delete)
		}
	}
}
