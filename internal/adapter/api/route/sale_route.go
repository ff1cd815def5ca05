package route

import (
	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/controller"
	"github.com/jeacloset/erp-vestuario/pkg/auth"
)

// RegisterSaleRoutes registra as rotas do módulo de vendas
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController) {
	sales := r.Group("/sales")
	sales.Use(auth.JWTAuthMiddleware())
	{
		sales.GET("", saleController.List)
		sales.GET("/:id", saleController.Get)

		write := sales.Group("")
		write.Use(auth.RequireWrite())
		{
			write.POST("", saleController.Create)
			write.PUT("/:id/pay", saleController.MarkPaid)
			write.PUT("/:id/cancel", saleController.Cancel)
			write.DELETE("/:id", saleController.Delete)
		}
	}
}
