package route

import (
	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/controller"
	"github.com/jeacloset/erp-vestuario/pkg/auth"
)

// RegisterAuthRoutes registra as rotas de autenticação
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	routes := r.Group("/auth")
	{
		routes.POST("/login", authController.Login)
		routes.GET("/me", auth.JWTAuthMiddleware(), authController.Me)
	}
}
