package stock_test

import (
	"testing"
	"time"

	"github.com/jeacloset/erp-vestuario/internal/domain/clothing"
	"github.com/jeacloset/erp-vestuario/internal/domain/sale"
	"github.com/jeacloset/erp-vestuario/internal/domain/stock"
)

func reportFixtures() ([]clothing.Item, []sale.Sale) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	items := []clothing.Item{
		{
			ID:           "blusa",
			Name:         "Blusa Básica",
			Supplier:     "F1",
			CostPrice:    20,
			SellingPrice: 50,
			CreditFee:    10,
			Variations: []clothing.Variation{
				{ID: "b-v1", Quantity: 3},
			},
			CreatedAt: day,
			UpdatedAt: day,
		},
	}
	sales := []sale.Sale{
		{
			ID:            "s-pix",
			Status:        sale.StatusPaid,
			PaymentMethod: sale.PaymentPix,
			Total:         50,
			Items: []sale.Item{
				{ClothingItemID: "blusa", ClothingItemName: "Blusa Básica", VariationID: "b-v1", Quantity: 1, UnitPrice: 50, TotalPrice: 50},
			},
		},
		{
			ID:            "s-credito",
			Status:        sale.StatusPending,
			PaymentMethod: sale.PaymentCreditCard,
			Total:         100,
			Items: []sale.Item{
				{ClothingItemID: "blusa", ClothingItemName: "Blusa Básica", VariationID: "b-v1", Quantity: 2, UnitPrice: 50, TotalPrice: 100},
			},
		},
	}
	return items, sales
}

func TestBuildSalesReport_NetRevenue(t *testing.T) {
	items, sales := reportFixtures()
	src := stock.NewSalesLogScanSource(sales, true)

	r := stock.BuildSalesReport(items, sales, src)

	// Venda pix: 50 cheio. Venda crédito: 100 - 10% = 90.
	if !almostEqual(r.TotalRevenue, 140) {
		t.Errorf("receita líquida esperada 140, obtida %v", r.TotalRevenue)
	}
	if r.TotalSales != 2 {
		t.Errorf("esperadas 2 vendas, obtidas %d", r.TotalSales)
	}
	if !almostEqual(r.AverageTicket, 70) {
		t.Errorf("ticket médio esperado 70, obtido %v", r.AverageTicket)
	}
}

func TestBuildSalesReport_RealProfit(t *testing.T) {
	items, sales := reportFixtures()
	src := stock.NewSalesLogScanSource(sales, true)

	r := stock.BuildSalesReport(items, sales, src)

	// Custo real por peça: 20 (sem frete/extras/embalagem).
	// Receita líquida dos itens: 50 + 90 = 140; custo: 3 x 20 = 60.
	if !almostEqual(r.RealProfit, 80) {
		t.Errorf("lucro real esperado 80, obtido %v", r.RealProfit)
	}
}

func TestBuildSalesReport_StatusAndPaymentBreakdown(t *testing.T) {
	items, sales := reportFixtures()
	src := stock.NewSalesLogScanSource(sales, true)

	r := stock.BuildSalesReport(items, sales, src)

	if r.ByStatus["pago"] != 1 || r.ByStatus["pendente"] != 1 {
		t.Errorf("quebra por status inesperada: %v", r.ByStatus)
	}
	// Pix conta junto com dinheiro
	if r.ByPayment["dinheiro"] != 1 || r.ByPayment["cartao_credito"] != 1 {
		t.Errorf("quebra por pagamento inesperada: %v", r.ByPayment)
	}
}

func TestBuildSalesReport_MissingItemContributesZeroCost(t *testing.T) {
	_, sales := reportFixtures()
	// Catálogo vazio: as peças das vendas foram removidas
	src := stock.NewSalesLogScanSource(sales, true)

	r := stock.BuildSalesReport(nil, sales, src)

	// Sem peça cadastrada não há taxa de cartão nem custo: receita cheia
	if !almostEqual(r.TotalRevenue, 150) {
		t.Errorf("receita esperada 150 (sem taxa de peça removida), obtida %v", r.TotalRevenue)
	}
	if !almostEqual(r.RealProfit, 150) {
		t.Errorf("lucro real esperado 150 (custo zero), obtido %v", r.RealProfit)
	}
}

func TestBuildSalesReport_EmptySales(t *testing.T) {
	items, _ := reportFixtures()
	src := stock.NewSalesLogScanSource(nil, true)

	r := stock.BuildSalesReport(items, nil, src)

	if r.TotalSales != 0 || r.TotalRevenue != 0 || r.AverageTicket != 0 || r.RealProfit != 0 {
		t.Errorf("relatório de histórico vazio deveria ser todo zero: %+v", r)
	}
	if len(r.TopProducts) != 0 {
		t.Errorf("sem vendas não há produtos mais vendidos: %+v", r.TopProducts)
	}
}

func TestBuildSalesReport_TopProducts(t *testing.T) {
	items, sales := reportFixtures()
	sales = append(sales, sale.Sale{
		ID:            "s-outro",
		Status:        sale.StatusPaid,
		PaymentMethod: sale.PaymentCash,
		Total:         10,
		Items: []sale.Item{
			{ClothingItemID: "cinto", ClothingItemName: "Cinto Fino", VariationID: "c-v1", Quantity: 1, UnitPrice: 10, TotalPrice: 10},
		},
	})
	src := stock.NewSalesLogScanSource(sales, true)

	r := stock.BuildSalesReport(items, sales, src)

	if len(r.TopProducts) != 2 {
		t.Fatalf("esperados 2 produtos no ranking, obtidos %d", len(r.TopProducts))
	}
	if r.TopProducts[0].Name != "Blusa Básica" || r.TopProducts[0].Quantity != 3 {
		t.Errorf("primeiro do ranking inesperado: %+v", r.TopProducts[0])
	}
	if !almostEqual(r.TopProducts[0].Revenue, 140) {
		t.Errorf("receita do primeiro esperada 140, obtida %v", r.TopProducts[0].Revenue)
	}
	if r.TopProducts[1].Name != "Cinto Fino" {
		t.Errorf("segundo do ranking inesperado: %+v", r.TopProducts[1])
	}
}

func TestBuildSalesReport_TopProductsOrdenadosPorQuantidade(t *testing.T) {
	// Peça barata com muita saída deve liderar sobre peça cara vendida
	// uma única vez, mesmo rendendo menos
	sales := []sale.Sale{
		{
			ID:            "s-caro",
			Status:        sale.StatusPaid,
			PaymentMethod: sale.PaymentCash,
			Total:         300,
			Items: []sale.Item{
				{ClothingItemID: "casaco", ClothingItemName: "Casaco de Lã", VariationID: "ca-v1", Quantity: 1, UnitPrice: 300, TotalPrice: 300},
			},
		},
		{
			ID:            "s-barato",
			Status:        sale.StatusPaid,
			PaymentMethod: sale.PaymentCash,
			Total:         60,
			Items: []sale.Item{
				{ClothingItemID: "meia", ClothingItemName: "Meia Soquete", VariationID: "me-v1", Quantity: 4, UnitPrice: 15, TotalPrice: 60},
			},
		},
	}
	src := stock.NewSalesLogScanSource(sales, true)

	r := stock.BuildSalesReport(nil, sales, src)

	if len(r.TopProducts) != 2 {
		t.Fatalf("esperados 2 produtos no ranking, obtidos %d", len(r.TopProducts))
	}
	if r.TopProducts[0].Name != "Meia Soquete" || r.TopProducts[0].Quantity != 4 {
		t.Errorf("primeiro do ranking inesperado: %+v", r.TopProducts[0])
	}
	if r.TopProducts[1].Name != "Casaco de Lã" {
		t.Errorf("segundo do ranking inesperado: %+v", r.TopProducts[1])
	}
}
