package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/dto"
	"github.com/jeacloset/erp-vestuario/internal/adapter/repository"
	notedomain "github.com/jeacloset/erp-vestuario/internal/domain/note"
	"github.com/jeacloset/erp-vestuario/pkg/auth"
	"github.com/jeacloset/erp-vestuario/pkg/logger"
)

// NoteController gerencia as requisições de notas internas
type NoteController struct {
	noteRepo notedomain.Repository
	logger   logger.Logger
}

// NewNoteController cria uma nova instância de NoteController
func NewNoteController(noteRepo notedomain.Repository, logger logger.Logger) *NoteController {
	return &NoteController{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

// Create cria uma nova nota
// @Summary Criar nota
// @Description Cria uma nota interna vinculada a uma aba do sistema
// @Tags notes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param note body dto.NoteRequest true "Dados da nota"
// @Success 201 {object} dto.NoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notes [post]
func (c *NoteController) Create(ctx *gin.Context) {
	var req dto.NoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	n, err := notedomain.NewNote(req.Title, req.Content, notedomain.Type(req.Type), notedomain.Priority(req.Priority), req.RelatedTab)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar nota", err.Error()))
		return
	}

	if err := c.noteRepo.Create(ctx, n); err != nil {
		c.logger.Error("erro ao criar nota no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar nota", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToNoteResponse(n))
}

// List retorna todas as notas
// @Summary Listar notas
// @Description Retorna a lista de notas internas
// @Tags notes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.NoteResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notes [get]
func (c *NoteController) List(ctx *gin.Context) {
	role := auth.RoleFromContext(ctx)
	if role.IsViewer() {
		ctx.JSON(http.StatusOK, dto.ToNoteListResponse(repository.DemoNotes()))
		return
	}

	notes, err := c.noteRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar notas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar notas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNoteListResponse(notes))
}

// UpdateStatus altera o status de uma nota
// @Summary Atualizar status da nota
// @Description Altera o andamento de uma nota (open, in_progress, resolved)
// @Tags notes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Param status body dto.NoteStatusRequest true "Novo status"
// @Success 200 {object} dto.NoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notes/{id}/status [put]
func (c *NoteController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.NoteStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	n, err := c.noteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "nota não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar nota", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar nota", err.Error()))
		return
	}

	if err := n.UpdateStatus(notedomain.Status(req.Status)); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "status inválido", err.Error()))
		return
	}

	if err := c.noteRepo.Update(ctx, n); err != nil {
		c.logger.Error("erro ao atualizar nota", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar nota", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNoteResponse(n))
}

// Delete remove uma nota
// @Summary Remover nota
// @Description Remove uma nota interna
// @Tags notes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notes/{id} [delete]
func (c *NoteController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.noteRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "nota não encontrada", ""))
			return
		}
		c.logger.Error("erro ao remover nota", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover nota", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("nota removida com sucesso", nil))
}
