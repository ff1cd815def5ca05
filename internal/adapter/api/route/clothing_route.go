package route

import (
	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/controller"
	"github.com/jeacloset/erp-vestuario/pkg/auth"
)

// RegisterClothingRoutes registra as rotas do catálogo de peças
func RegisterClothingRoutes(r *gin.RouterGroup, clothingController *controller.ClothingController) {
	clothing := r.Group("/clothing")
	clothing.Use(auth.JWTAuthMiddleware())
	{
		clothing.GET("", clothingController.List)
		clothing.GET("/:id", clothingController.Get)

		write := clothing.Group("")
		write.Use(auth.RequireWrite())
		{
			write.POST("", clothingController.Create)
			write.PUT("/:id", clothingController.Update)
			write.DELETE("/:id", clothingController.Delete)
		}
	}
}
