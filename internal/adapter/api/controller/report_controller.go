package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/dto"
	"github.com/jeacloset/erp-vestuario/internal/adapter/repository"
	clothingdomain "github.com/jeacloset/erp-vestuario/internal/domain/clothing"
	saledomain "github.com/jeacloset/erp-vestuario/internal/domain/sale"
	"github.com/jeacloset/erp-vestuario/internal/domain/stock"
	"github.com/jeacloset/erp-vestuario/pkg/auth"
	"github.com/jeacloset/erp-vestuario/pkg/logger"
)

// ReportController gerencia a consulta do relatório consolidado de vendas
type ReportController struct {
	clothingRepo   clothingdomain.Repository
	saleRepo       saledomain.Repository
	includePending bool
	logger         logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(clothingRepo clothingdomain.Repository, saleRepo saledomain.Repository, includePending bool, logger logger.Logger) *ReportController {
	return &ReportController{
		clothingRepo:   clothingRepo,
		saleRepo:       saleRepo,
		includePending: includePending,
		logger:         logger,
	}
}

// Sales retorna o relatório consolidado de vendas
// @Summary Relatório de vendas
// @Description Retorna indicadores consolidados de vendas: receita líquida, lucro real, quadros por status e pagamento e produtos mais vendidos
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param start query string false "Início do período (RFC 3339 ou AAAA-MM-DD)"
// @Param end query string false "Fim do período (RFC 3339 ou AAAA-MM-DD)"
// @Success 200 {object} dto.SalesReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales [get]
func (c *ReportController) Sales(ctx *gin.Context) {
	role := auth.RoleFromContext(ctx)
	if role.IsViewer() {
		items := repository.DemoClothingItems()
		sales := repository.DemoSales()
		report := stock.BuildSalesReport(items, sales, stock.StaticCounterSource{})
		ctx.JSON(http.StatusOK, dto.ToSalesReportResponse(report))
		return
	}

	items, err := c.clothingRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar peças para relatório", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar peças", err.Error()))
		return
	}

	var sales []saledomain.Sale
	start, end, hasPeriod, err := periodFromQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "período inválido", err.Error()))
		return
	}
	if hasPeriod {
		sales, err = c.saleRepo.FindByPeriod(ctx, start, end)
	} else {
		sales, err = c.saleRepo.List(ctx)
	}
	if err != nil {
		c.logger.Error("erro ao listar vendas para relatório", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	source := stock.NewSalesLogScanSource(sales, c.includePending)
	report := stock.BuildSalesReport(items, sales, source)

	ctx.JSON(http.StatusOK, dto.ToSalesReportResponse(report))
}

// periodFromQuery interpreta os parâmetros start e end da query string
func periodFromQuery(ctx *gin.Context) (time.Time, time.Time, bool, error) {
	startStr := ctx.Query("start")
	endStr := ctx.Query("end")
	if startStr == "" && endStr == "" {
		return time.Time{}, time.Time{}, false, nil
	}

	start, err := parseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	end, err := parseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	if end.IsZero() {
		end = time.Now()
	}
	return start, end, true, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
