package stock_test

import (
	"math"
	"testing"

	"github.com/jeacloset/erp-vestuario/internal/domain/clothing"
	"github.com/jeacloset/erp-vestuario/internal/domain/stock"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCost_Breakdown(t *testing.T) {
	item := clothing.Item{
		CostPrice:       28.00,
		SellingPrice:    59.90,
		FreightCost:     0,
		FreightQuantity: 1,
		PackagingCost:   1.20,
		CreditFee:       3.5,
	}

	c := stock.Cost(item)

	if !almostEqual(c.BaseCost, 28.00) {
		t.Errorf("custo base esperado 28.00, obtido %v", c.BaseCost)
	}
	if !almostEqual(c.CreditFeeAmount, 0.98) {
		t.Errorf("taxa de cartão esperada 0.98, obtida %v", c.CreditFeeAmount)
	}
	// 59.90 - (28 + 0.98 + 1.20)
	if !almostEqual(c.UnitProfit, 29.72) {
		t.Errorf("lucro unitário esperado 29.72, obtido %v", c.UnitProfit)
	}
	// ((59.90 - 29.20) / 59.90) * 100
	if !almostEqual(c.DisplayProfitMargin, (59.90-29.20)/59.90*100) {
		t.Errorf("margem exibida inesperada: %v", c.DisplayProfitMargin)
	}
}

func TestCost_FreightPerUnit(t *testing.T) {
	tests := []struct {
		name        string
		freightCost float64
		freightQty  int
		want        float64
	}{
		{"rateio normal", 50, 10, 5},
		{"quantidade zero vira 1", 30, 0, 30},
		{"quantidade negativa vira 1", 30, -5, 30},
		{"sem frete", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := stock.Cost(clothing.Item{FreightCost: tt.freightCost, FreightQuantity: tt.freightQty})
			if !almostEqual(c.FreightPerUnit, tt.want) {
				t.Errorf("frete unitário esperado %v, obtido %v", tt.want, c.FreightPerUnit)
			}
			if math.IsInf(c.FreightPerUnit, 0) || math.IsNaN(c.FreightPerUnit) {
				t.Errorf("frete unitário não finito: %v", c.FreightPerUnit)
			}
		})
	}
}

func TestCost_ZeroSellingPrice(t *testing.T) {
	c := stock.Cost(clothing.Item{CostPrice: 10, SellingPrice: 0})
	if c.DisplayProfitMargin != 0 {
		t.Errorf("margem com preço de venda zero deveria ser 0, obtida %v", c.DisplayProfitMargin)
	}
}

func TestTotalProfit_UsesOriginalPieces(t *testing.T) {
	item := clothing.Item{
		CostPrice:       28.00,
		SellingPrice:    59.90,
		PackagingCost:   1.20,
		CreditFee:       3.5,
		FreightQuantity: 1,
	}

	// Lucro projeta o lote inteiro: 3 peças originais, mesmo com 1 em estoque
	got := stock.TotalProfit(item, 3)
	if !almostEqual(got, 29.72*3) {
		t.Errorf("lucro total esperado %v, obtido %v", 29.72*3, got)
	}

	if stock.TotalProfit(item, 0) != 0 {
		t.Errorf("lote sem peças deveria ter lucro 0")
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"NaN", math.NaN(), 0},
		{"+Inf", math.Inf(1), 0},
		{"-Inf", math.Inf(-1), 0},
		{"finito", 12.5, 12.5},
		{"negativo finito", -3.2, -3.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stock.Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%v) = %v, esperado %v", tt.in, got, tt.want)
			}
		})
	}
}
