package route

import (
	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/controller"
	"github.com/jeacloset/erp-vestuario/pkg/auth"
)

// RegisterNoteRoutes registra as rotas do módulo de notas
func RegisterNoteRoutes(r *gin.RouterGroup, noteController *controller.NoteController) {
	notes := r.Group("/notes")
	notes.Use(auth.JWTAuthMiddleware())
	{
		notes.GET("", noteController.List)

		write := notes.Group("")
		write.Use(auth.RequireWrite())
		{
			write.POST("", noteController.Create)
			write.PUT("/:id/status", noteController.UpdateStatus)
			write.DELETE("/:id", noteController.Delete)
		}
	}
}
