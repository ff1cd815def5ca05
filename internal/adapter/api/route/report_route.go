package route

import (
	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/controller"
	"github.com/jeacloset/erp-vestuario/pkg/auth"
)

// RegisterReportRoutes registra as rotas de relatórios
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController) {
	reports := r.Group("/reports")
	reports.Use(auth.JWTAuthMiddleware())
	{
		reports.GET("/sales", reportController.Sales)
	}
}
