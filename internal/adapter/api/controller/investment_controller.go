package controller

import (
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

// InvestmentController gerencia a consulta de lotes de investimento.
// Lotes nunca são persistidos: cada consulta agrega o catálogo e o
// histórico de vendas correntes, com cache por snapshot.
type InvestmentController struct {
	clothingRepo   clothingdomain.Repository
	saleRepo       saledomain.Repository
	lotCache       *stock.LotCache
	includePending bool
	logger         logger.Logger
}

// NewInvestmentController cria uma nova instância de InvestmentController
func NewInvestmentController(clothingRepo clothingdomain.Repository, saleRepo saledomain.Repository, lotCache *stock.LotCache, includePending bool, logger logger.Logger) *InvestmentController {
	return &InvestmentController{
		clothingRepo:   clothingRepo,
		saleRepo:       saleRepo,
		lotCache:       lotCache,
		includePending: includePending,
		logger:         logger,
	}
}

// List retorna os lotes de investimento agregados
// @Summary Listar lotes de investimento
// @Description Agrega as peças em lotes por fornecedor e dia de cadastro, com os indicadores de cada lote
// @Tags investments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param supplier query string false "Filtrar por fornecedor"
// @Param status query string false "Filtrar por status do lote (Finalizado, Recuperado, Em andamento)"
// @Success 200 {array} dto.LotResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /investments [get]
func (c *InvestmentController) List(ctx *gin.Context) {
	role := auth.RoleFromContext(ctx)

	var lots []stock.Lot
	if role.IsViewer() {
		items := repository.DemoClothingItems()
		sales := repository.DemoSales()
		lots = stock.AggregateLots(items, sales, stock.StaticCounterSource{})
	} else {
		items, err := c.clothingRepo.List(ctx)
		if err != nil {
			c.logger.Error("erro ao listar peças para agregação de lotes", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar peças", err.Error()))
			return
		}
		sales, err := c.saleRepo.List(ctx)
		if err != nil {
			c.logger.Error("erro ao listar vendas para agregação de lotes", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
			return
		}

		source := stock.NewSalesLogScanSource(sales, c.includePending)
		lots = c.lotCache.Lots(items, sales, source)
	}

	supplier := ctx.Query("supplier")
	status := ctx.Query("status")
	if supplier != "" || status != "" {
		lots = stock.FilterLots(lots, supplier, status)
	}

	ctx.JSON(http.StatusOK, dto.ToLotListResponse(lots))
}
