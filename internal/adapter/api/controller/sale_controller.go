package controller

import (
	"errors"
	"fmt"
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

// SaleController gerencia as requisições de vendas
type SaleController struct {
	saleRepo     saledomain.Repository
	clothingRepo clothingdomain.Repository
	lotCache     *stock.LotCache
	logger       logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo saledomain.Repository, clothingRepo clothingdomain.Repository, lotCache *stock.LotCache, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo:     saleRepo,
		clothingRepo: clothingRepo,
		lotCache:     lotCache,
		logger:       logger,
	}
}

// Create registra uma nova venda e baixa o estoque das variações vendidas
// @Summary Registrar venda
// @Description Registra uma venda, validando e decrementando o estoque de cada variação
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	// Montar os itens da venda a partir do catálogo, validando o estoque
	saleItems := make([]saledomain.Item, 0, len(req.Items))
	touched := make(map[string]*clothingdomain.Item)

	for _, reqItem := range req.Items {
		item, ok := touched[reqItem.ClothingItemID]
		if !ok {
			var err error
			item, err = c.clothingRepo.FindByID(ctx, reqItem.ClothingItemID)
			if err != nil {
				if errors.Is(err, repository.ErrClothingNotFound) {
					ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "peça não encontrada", reqItem.ClothingItemID))
					return
				}
				c.logger.Error("erro ao buscar peça para venda", "error", err)
				ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar peça", err.Error()))
				return
			}
			touched[reqItem.ClothingItemID] = item
		}

		variation := item.Variation(reqItem.VariationID)
		if variation == nil {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "variação não encontrada", reqItem.VariationID))
			return
		}
		if variation.Quantity < reqItem.Quantity {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(
				http.StatusUnprocessableEntity,
				"estoque insuficiente",
				fmt.Sprintf("peça %s tamanho %s: disponível %d, solicitado %d", item.Code, variation.Size.DisplayName, variation.Quantity, reqItem.Quantity),
			))
			return
		}

		unitPrice := reqItem.UnitPrice
		if unitPrice == 0 {
			unitPrice = item.SellingPrice
		}

		saleItems = append(saleItems, saledomain.Item{
			ClothingItemID:   item.ID,
			ClothingItemCode: item.Code,
			ClothingItemName: item.Name,
			VariationID:      variation.ID,
			Size:             variation.Size.DisplayName,
			Color:            variation.Color,
			Quantity:         reqItem.Quantity,
			UnitPrice:        unitPrice,
		})
	}

	status := saledomain.Status(req.Status)
	if req.Status == "" {
		status = saledomain.StatusPaid
	}
	discountType := saledomain.DiscountType(req.DiscountType)
	if req.DiscountType == "" {
		discountType = saledomain.DiscountFixed
	}

	s, err := saledomain.NewSale(req.CustomerName, saleItems, req.Discount, discountType, saledomain.PaymentMethod(req.PaymentMethod), status)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao registrar venda", err.Error()))
		return
	}
	s.CustomerPhone = req.CustomerPhone
	s.CustomerEmail = req.CustomerEmail
	s.Notes = req.Notes
	s.SellerID = ctx.GetString("user_id")
	s.SellerName = ctx.GetString("user_name")

	// Baixar o estoque das variações vendidas
	for _, it := range s.Items {
		item := touched[it.ClothingItemID]
		if err := item.AdjustVariationQuantity(it.VariationID, -it.Quantity); err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "erro ao baixar estoque", err.Error()))
			return
		}
	}

	if err := c.saleRepo.Create(ctx, s); err != nil {
		c.logger.Error("erro ao registrar venda no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar venda", err.Error()))
		return
	}

	for _, item := range touched {
		if err := c.clothingRepo.Update(ctx, item); err != nil {
			c.logger.Error("erro ao atualizar estoque após venda", "error", err, "clothing_item_id", item.ID)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar estoque", err.Error()))
			return
		}
	}

	c.lotCache.Invalidate()

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(s))
}

// List retorna todas as vendas
// @Summary Listar vendas
// @Description Retorna o histórico de vendas; o perfil visualizador recebe o conjunto de demonstração
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	role := auth.RoleFromContext(ctx)
	if role.IsViewer() {
		ctx.JSON(http.StatusOK, dto.ToSaleListResponse(repository.DemoSales()))
		return
	}

	sales, err := c.saleRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales))
}

// Get retorna uma venda pelo ID
// @Summary Buscar venda
// @Description Retorna os dados de uma venda pelo ID
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	s, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// MarkPaid marca uma venda pendente como paga
// @Summary Confirmar pagamento
// @Description Marca uma venda pendente como paga
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id}/pay [put]
func (c *SaleController) MarkPaid(ctx *gin.Context) {
	id := ctx.Param("id")

	s, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	s.MarkPaid()
	if err := c.saleRepo.UpdateStatus(ctx, id, s.Status); err != nil {
		c.logger.Error("erro ao confirmar pagamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao confirmar pagamento", err.Error()))
		return
	}

	c.lotCache.Invalidate()

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// Cancel cancela uma venda e repõe o estoque das variações vendidas
// @Summary Cancelar venda
// @Description Cancela uma venda e devolve as quantidades vendidas ao estoque
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id}/cancel [put]
func (c *SaleController) Cancel(ctx *gin.Context) {
	id := ctx.Param("id")

	s, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	if s.Status == saledomain.StatusCancelled {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "venda já cancelada", ""))
		return
	}

	if err := c.restock(ctx, s); err != nil {
		c.logger.Error("erro ao repor estoque no cancelamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao repor estoque", err.Error()))
		return
	}

	s.Cancel()
	if err := c.saleRepo.UpdateStatus(ctx, id, s.Status); err != nil {
		c.logger.Error("erro ao cancelar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao cancelar venda", err.Error()))
		return
	}

	c.lotCache.Invalidate()

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// Delete remove uma venda do histórico, repondo o estoque se a venda
// ainda não estava cancelada
// @Summary Remover venda
// @Description Remove uma venda do histórico; se ativa, o estoque é reposto
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [delete]
func (c *SaleController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	s, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	if s.Status != saledomain.StatusCancelled {
		if err := c.restock(ctx, s); err != nil {
			c.logger.Error("erro ao repor estoque na remoção da venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao repor estoque", err.Error()))
			return
		}
	}

	if err := c.saleRepo.Delete(ctx, id); err != nil {
		c.logger.Error("erro ao remover venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover venda", err.Error()))
		return
	}

	c.lotCache.Invalidate()

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("venda removida com sucesso", nil))
}

// restock devolve ao estoque as quantidades dos itens da venda. Peças já
// removidas do catálogo são ignoradas.
func (c *SaleController) restock(ctx *gin.Context, s *saledomain.Sale) error {
	touched := make(map[string]*clothingdomain.Item)

	for _, it := range s.Items {
		item, ok := touched[it.ClothingItemID]
		if !ok {
			var err error
			item, err = c.clothingRepo.FindByID(ctx, it.ClothingItemID)
			if err != nil {
				if errors.Is(err, repository.ErrClothingNotFound) {
					continue
				}
				return err
			}
			touched[it.ClothingItemID] = item
		}
		if item.Variation(it.VariationID) == nil {
			continue
		}
		if err := item.AdjustVariationQuantity(it.VariationID, it.Quantity); err != nil {
			return err
		}
	}

	for _, item := range touched {
		if err := c.clothingRepo.Update(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
