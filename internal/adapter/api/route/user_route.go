package route

import (
	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/controller"
	"github.com/jeacloset/erp-vestuario/pkg/auth"
)

// RegisterUserRoutes registra as rotas do módulo de usuários
func RegisterUserRoutes(r *gin.RouterGroup, userController *controller.UserController) {
	users := r.Group("/users")
	users.Use(auth.JWTAuthMiddleware())
	{
		// Troca da própria senha exige perfil com permissão de escrita
		users.PUT("/password", auth.RequireWrite(), userController.ChangePassword)

		admin := users.Group("")
		admin.Use(auth.RequireAdmin())
		{
			admin.POST("", userController.Create)
			admin.GET("", userController.List)
			admin.GET("/:id", userController.Get)
			admin.PUT("/:id", userController.Update)
			admin.DELETE("/:id", userController.Delete)
		}
	}
}
