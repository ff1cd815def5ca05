package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/dto"
	"github.com/jeacloset/erp-vestuario/internal/adapter/repository"
	cashflowdomain "github.com/jeacloset/erp-vestuario/internal/domain/cashflow"
	"github.com/jeacloset/erp-vestuario/pkg/auth"
	"github.com/jeacloset/erp-vestuario/pkg/logger"
)

// CashflowController gerencia as requisições do fluxo de caixa
type CashflowController struct {
	cashflowRepo cashflowdomain.Repository
	logger       logger.Logger
}

// NewCashflowController cria uma nova instância de CashflowController
func NewCashflowController(cashflowRepo cashflowdomain.Repository, logger logger.Logger) *CashflowController {
	return &CashflowController{
		cashflowRepo: cashflowRepo,
		logger:       logger,
	}
}

// Create registra um novo movimento de saída
// @Summary Registrar movimento
// @Description Registra uma saída do fluxo de caixa da loja
// @Tags cashflow
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param movement body dto.MovementRequest true "Dados do movimento"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cashflow [post]
func (c *CashflowController) Create(ctx *gin.Context) {
	var req dto.MovementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	m, err := cashflowdomain.NewMovement(req.Date, req.Description, cashflowdomain.Origin(req.Origin), cashflowdomain.SubOrigin(req.SubOrigin), req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao registrar movimento", err.Error()))
		return
	}

	if err := c.cashflowRepo.Create(ctx, m); err != nil {
		c.logger.Error("erro ao registrar movimento no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar movimento", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMovementResponse(m))
}

// List retorna todos os movimentos do fluxo de caixa
// @Summary Listar movimentos
// @Description Retorna os movimentos do fluxo de caixa ordenados por data
// @Tags cashflow
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.MovementResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cashflow [get]
func (c *CashflowController) List(ctx *gin.Context) {
	role := auth.RoleFromContext(ctx)
	if role.IsViewer() {
		ctx.JSON(http.StatusOK, dto.ToMovementListResponse(repository.DemoMovements()))
		return
	}

	movements, err := c.cashflowRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar movimentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar movimentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMovementListResponse(movements))
}

// MarkPaid marca um movimento pendente como pago
// @Summary Efetivar movimento
// @Description Marca um movimento pendente do fluxo de caixa como pago
// @Tags cashflow
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do movimento"
// @Success 200 {object} dto.MovementResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cashflow/{id}/pay [put]
func (c *CashflowController) MarkPaid(ctx *gin.Context) {
	id := ctx.Param("id")

	m, err := c.cashflowRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovementNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "movimento não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar movimento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar movimento", err.Error()))
		return
	}

	m.MarkPaid()
	if err := c.cashflowRepo.Update(ctx, m); err != nil {
		c.logger.Error("erro ao efetivar movimento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao efetivar movimento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMovementResponse(m))
}

// Delete remove um movimento do fluxo de caixa
// @Summary Remover movimento
// @Description Remove um movimento do fluxo de caixa
// @Tags cashflow
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do movimento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cashflow/{id} [delete]
func (c *CashflowController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.cashflowRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMovementNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "movimento não encontrado", ""))
			return
		}
		c.logger.Error("erro ao remover movimento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover movimento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("movimento removido com sucesso", nil))
}
