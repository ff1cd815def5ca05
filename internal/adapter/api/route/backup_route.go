package route

import (
	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/controller"
	"github.com/jeacloset/erp-vestuario/pkg/auth"
)

// RegisterBackupRoutes registra as rotas de backup
func RegisterBackupRoutes(r *gin.RouterGroup, backupController *controller.BackupController) {
	routes := r.Group("/backup")
	routes.Use(auth.JWTAuthMiddleware())
	{
		routes.GET("/export", auth.RequireWrite(), backupController.Export)

		// Restauração e envio ao Drive são restritos a administradores
		admin := routes.Group("")
		admin.Use(auth.RequireAdmin())
		{
			admin.POST("/restore", backupController.Restore)
			admin.POST("/drive", backupController.UploadToDrive)
		}
	}
}
