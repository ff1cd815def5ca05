package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/dto"
	"github.com/jeacloset/erp-vestuario/internal/adapter/repository"
	clothingdomain "github.com/jeacloset/erp-vestuario/internal/domain/clothing"
	saledomain "github.com/jeacloset/erp-vestuario/internal/domain/sale"
	"github.com/jeacloset/erp-vestuario/internal/domain/stock"
	"github.com/jeacloset/erp-vestuario/pkg/auth"
	"github.com/jeacloset/erp-vestuario/pkg/logger"
)

// ClothingController gerencia as requisições do catálogo de peças
type ClothingController struct {
	clothingRepo   clothingdomain.Repository
	saleRepo       saledomain.Repository
	lotCache       *stock.LotCache
	includePending bool
	logger         logger.Logger
}

// NewClothingController cria uma nova instância de ClothingController
func NewClothingController(clothingRepo clothingdomain.Repository, saleRepo saledomain.Repository, lotCache *stock.LotCache, includePending bool, logger logger.Logger) *ClothingController {
	return &ClothingController{
		clothingRepo:   clothingRepo,
		saleRepo:       saleRepo,
		lotCache:       lotCache,
		includePending: includePending,
		logger:         logger,
	}
}

// reconcilerFor monta o reconciliador de quantidades conforme o perfil:
// o visualizador lê contadores estáticos do conjunto de demonstração e
// os demais perfis derivam o vendido do histórico de vendas
func (c *ClothingController) reconcilerFor(ctx *gin.Context, sales []saledomain.Sale) *stock.Reconciler {
	role := auth.RoleFromContext(ctx)
	return stock.NewReconciler(stock.SourceForRole(role, sales, c.includePending))
}

// Create cria uma nova peça no catálogo
// @Summary Criar peça
// @Description Cadastra uma nova peça de vestuário no catálogo
// @Tags clothing
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param clothing body dto.ClothingRequest true "Dados da peça"
// @Success 201 {object} dto.ClothingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clothing [post]
func (c *ClothingController) Create(ctx *gin.Context) {
	var req dto.ClothingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if _, err := c.clothingRepo.FindByCode(ctx, req.Code); err == nil {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "código já cadastrado", repository.ErrClothingDuplicateCode.Error()))
		return
	}

	item, err := clothingdomain.NewItem(
		req.Code,
		req.Name,
		clothingdomain.Category(req.Category),
		req.Supplier,
		req.CostPrice,
		req.SellingPrice,
		req.ToVariations(),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar peça", err.Error()))
		return
	}

	item.Description = req.Description
	item.Brand = req.Brand
	item.Collection = req.Collection
	item.Season = req.Season
	item.FreightCost = req.FreightCost
	item.FreightQuantity = req.FreightQuantity
	item.PackagingCost = req.PackagingCost
	item.ExtraCosts = req.ExtraCosts
	item.CreditFee = req.CreditFee
	item.Tags = req.Tags

	if err := c.clothingRepo.Create(ctx, item); err != nil {
		c.logger.Error("erro ao criar peça no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar peça", err.Error()))
		return
	}

	c.lotCache.Invalidate()

	rec := stock.NewReconciler(stock.NewSalesLogScanSource(nil, c.includePending))
	ctx.JSON(http.StatusCreated, dto.ToClothingResponse(item, rec))
}

// List retorna todas as peças do catálogo
// @Summary Listar peças
// @Description Retorna o catálogo com quantidades reconciliadas; o perfil visualizador recebe o conjunto de demonstração
// @Tags clothing
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param supplier query string false "Filtrar por fornecedor"
// @Success 200 {array} dto.ClothingResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clothing [get]
func (c *ClothingController) List(ctx *gin.Context) {
	role := auth.RoleFromContext(ctx)
	if role.IsViewer() {
		items := repository.DemoClothingItems()
		rec := stock.NewReconciler(stock.StaticCounterSource{})
		ctx.JSON(http.StatusOK, dto.ToClothingListResponse(items, rec))
		return
	}

	var items []clothingdomain.Item
	var err error
	if supplier := ctx.Query("supplier"); supplier != "" {
		items, err = c.clothingRepo.FindBySupplier(ctx, supplier)
	} else {
		items, err = c.clothingRepo.List(ctx)
	}
	if err != nil {
		c.logger.Error("erro ao listar peças", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar peças", err.Error()))
		return
	}

	sales, err := c.saleRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao consultar vendas para reconciliação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao reconciliar estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClothingListResponse(items, c.reconcilerFor(ctx, sales)))
}

// Get retorna uma peça pelo ID
// @Summary Buscar peça
// @Description Retorna os dados de uma peça com quantidades reconciliadas
// @Tags clothing
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da peça"
// @Success 200 {object} dto.ClothingResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clothing/{id} [get]
func (c *ClothingController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	role := auth.RoleFromContext(ctx)
	if role.IsViewer() {
		for _, item := range repository.DemoClothingItems() {
			if item.ID == id {
				rec := stock.NewReconciler(stock.StaticCounterSource{})
				ctx.JSON(http.StatusOK, dto.ToClothingResponse(&item, rec))
				return
			}
		}
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "peça não encontrada", ""))
		return
	}

	item, err := c.clothingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClothingNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "peça não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar peça", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar peça", err.Error()))
		return
	}

	sales, err := c.saleRepo.FindByClothingItem(ctx, id)
	if err != nil {
		c.logger.Error("erro ao consultar vendas da peça", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao reconciliar estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClothingResponse(item, c.reconcilerFor(ctx, sales)))
}

// Update atualiza uma peça existente
// @Summary Atualizar peça
// @Description Atualiza os dados cadastrais e as variações de uma peça
// @Tags clothing
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da peça"
// @Param clothing body dto.ClothingRequest true "Dados da peça"
// @Success 200 {object} dto.ClothingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clothing/{id} [put]
func (c *ClothingController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ClothingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	item, err := c.clothingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClothingNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "peça não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar peça", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar peça", err.Error()))
		return
	}

	item.Code = req.Code
	item.Name = req.Name
	item.Description = req.Description
	item.Category = clothingdomain.Category(req.Category)
	item.Brand = req.Brand
	item.Supplier = req.Supplier
	item.Collection = req.Collection
	item.Season = req.Season
	item.CostPrice = req.CostPrice
	item.SellingPrice = req.SellingPrice
	item.FreightCost = req.FreightCost
	item.FreightQuantity = req.FreightQuantity
	item.PackagingCost = req.PackagingCost
	item.ExtraCosts = req.ExtraCosts
	item.CreditFee = req.CreditFee
	item.Tags = req.Tags

	// Variações novas recebem ID; as existentes preservam o ID para não
	// quebrar o vínculo com itens de venda já registrados
	newVariations := req.ToVariations()
	for i := range newVariations {
		if i < len(item.Variations) {
			newVariations[i].ID = item.Variations[i].ID
		}
	}
	item.Variations = newVariations
	item.Touch()

	if err := c.clothingRepo.Update(ctx, item); err != nil {
		c.logger.Error("erro ao atualizar peça", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar peça", err.Error()))
		return
	}

	c.lotCache.Invalidate()

	sales, err := c.saleRepo.FindByClothingItem(ctx, id)
	if err != nil {
		sales = nil
	}
	ctx.JSON(http.StatusOK, dto.ToClothingResponse(item, c.reconcilerFor(ctx, sales)))
}

// Delete remove uma peça do catálogo
// @Summary Remover peça
// @Description Remove uma peça do catálogo; vendas já registradas permanecem no histórico
// @Tags clothing
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da peça"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clothing/{id} [delete]
func (c *ClothingController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.clothingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrClothingNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "peça não encontrada", ""))
			return
		}
		c.logger.Error("erro ao remover peça", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover peça", err.Error()))
		return
	}

	c.lotCache.Invalidate()

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("peça removida com sucesso", nil))
}
