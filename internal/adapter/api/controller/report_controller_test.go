package controller

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/dto"
	"github.com/jeacloset/erp-vestuario/internal/domain/sale"
)

func reportRouter(role string, clothingRepo *fakeClothingRepo, saleRepo *fakeSaleRepo) *gin.Engine {
	router := gin.New()
	ctrl := NewReportController(clothingRepo, saleRepo, true, testLogger())
	router.GET("/api/v1/reports/sales", asRole(role), ctrl.Sales)
	return router
}

func getReport(t *testing.T, router *gin.Engine, path string) dto.SalesReportResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var report dto.SalesReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("erro ao decodificar resposta: %v", err)
	}
	return report
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestReportSales_ReceitaLiquidaDeCartao(t *testing.T) {
	item := catalogItem("it-1", "BLU-100", "Fornecedor Um", 1)
	item.CreditFee = 10

	day := time.Date(2024, 7, 6, 15, 0, 0, 0, time.UTC)
	pixSale := paidSaleOf("sa-1", "it-1", "it-1-v1", 1, day)
	pixSale.PaymentMethod = sale.PaymentPix
	cardSale := paidSaleOf("sa-2", "it-1", "it-1-v1", 1, day.Add(time.Hour))
	cardSale.PaymentMethod = sale.PaymentCreditCard

	router := reportRouter("admin", newFakeClothingRepo(item), newFakeSaleRepo(pixSale, cardSale))
	report := getReport(t, router, "/api/v1/reports/sales")

	if report.TotalSales != 2 {
		t.Errorf("TotalSales = %d, esperado 2", report.TotalSales)
	}
	// Pix vale o total cheio (30); cartão abate a taxa de 10% (27)
	if !almostEqual(report.TotalRevenue, 57) {
		t.Errorf("TotalRevenue = %v, esperado 57", report.TotalRevenue)
	}
	if !almostEqual(report.AverageTicket, 28.5) {
		t.Errorf("AverageTicket = %v, esperado 28.5", report.AverageTicket)
	}
	// Pix conta junto com dinheiro no quadro de formas de pagamento
	if report.ByPayment[string(sale.PaymentCash)] != 1 {
		t.Errorf("ByPayment[dinheiro] = %d, esperado 1", report.ByPayment[string(sale.PaymentCash)])
	}
	if report.ByPayment[string(sale.PaymentCreditCard)] != 1 {
		t.Errorf("ByPayment[cartao_credito] = %d, esperado 1", report.ByPayment[string(sale.PaymentCreditCard)])
	}
	if report.ByStatus[string(sale.StatusPaid)] != 2 {
		t.Errorf("ByStatus[pago] = %d, esperado 2", report.ByStatus[string(sale.StatusPaid)])
	}

	if len(report.TopProducts) != 1 {
		t.Fatalf("len(TopProducts) = %d, esperado 1", len(report.TopProducts))
	}
	if report.TopProducts[0].Quantity != 2 {
		t.Errorf("TopProducts[0].Quantity = %d, esperado 2", report.TopProducts[0].Quantity)
	}
}

func TestReportSales_PecaRemovidaNaoQuebra(t *testing.T) {
	// Venda referenciando peça fora do catálogo: receita cheia, custo zero
	day := time.Date(2024, 7, 6, 15, 0, 0, 0, time.UTC)
	s := paidSaleOf("sa-1", "it-apagada", "v-apagada", 1, day)

	router := reportRouter("admin", newFakeClothingRepo(), newFakeSaleRepo(s))
	report := getReport(t, router, "/api/v1/reports/sales")

	if report.TotalSales != 1 {
		t.Errorf("TotalSales = %d, esperado 1", report.TotalSales)
	}
	if !almostEqual(report.TotalRevenue, 30) {
		t.Errorf("TotalRevenue = %v, esperado 30", report.TotalRevenue)
	}
	if !almostEqual(report.RealProfit, 30) {
		t.Errorf("RealProfit = %v, esperado 30 (custo zero para peça removida)", report.RealProfit)
	}
}

func TestReportSales_FiltroPorPeriodo(t *testing.T) {
	item := catalogItem("it-1", "BLU-100", "Fornecedor Um", 5)
	inside := paidSaleOf("sa-1", "it-1", "it-1-v1", 1, time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC))
	outside := paidSaleOf("sa-2", "it-1", "it-1-v1", 1, time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC))

	router := reportRouter("admin", newFakeClothingRepo(item), newFakeSaleRepo(inside, outside))
	report := getReport(t, router, "/api/v1/reports/sales?start=2024-07-01&end=2024-07-31")

	if report.TotalSales != 1 {
		t.Errorf("TotalSales = %d, esperado 1 dentro do período", report.TotalSales)
	}
}

func TestReportSales_PeriodoInvalido(t *testing.T) {
	router := reportRouter("admin", newFakeClothingRepo(), newFakeSaleRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/sales?start=ontem", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado %d", rec.Code, http.StatusBadRequest)
	}
}

func TestReportSales_ViewerUsaDemonstracao(t *testing.T) {
	router := reportRouter("viewer", newFakeClothingRepo(), newFakeSaleRepo())
	report := getReport(t, router, "/api/v1/reports/sales")

	if report.TotalSales == 0 {
		t.Error("visualizador deve receber relatório sobre o conjunto de demonstração")
	}
}
