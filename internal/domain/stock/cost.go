package stock

import (
	"math"

	"github.com/jeacloset/erp-vestuario/internal/domain/clothing"
)

// CostBreakdown reúne a economia unitária de uma peça.
//
// UnitProfit e DisplayProfitMargin usam fórmulas diferentes de propósito:
// a margem exibida na edição da peça considera apenas custo e embalagem,
// enquanto o lucro unitário abate também frete rateado, custos extras e
// taxa de cartão. As duas convivem no sistema de origem e são mantidas
// separadas aqui.
type CostBreakdown struct {
	FreightPerUnit      float64 `json:"freight_per_unit"`
	BaseCost            float64 `json:"base_cost"`
	CreditFeeAmount     float64 `json:"credit_fee_amount"`
	UnitProfit          float64 `json:"unit_profit"`
	DisplayProfitMargin float64 `json:"display_profit_margin"`
}

// Cost calcula a economia unitária da peça. Todos os resultados são
// saneados: divisões por zero viram divisor 1 e valores não finitos viram 0.
func Cost(item clothing.Item) CostBreakdown {
	freightQty := item.FreightQuantity
	if freightQty < 1 {
		freightQty = 1
	}
	freightPerUnit := item.FreightCost / float64(freightQty)
	baseCost := item.CostPrice + freightPerUnit + item.ExtraCosts
	creditFeeAmount := baseCost * (item.CreditFee / 100)
	unitProfit := item.SellingPrice - (baseCost + creditFeeAmount + item.PackagingCost)

	displayMargin := 0.0
	if item.SellingPrice > 0 {
		displayMargin = ((item.SellingPrice - (item.CostPrice + item.PackagingCost)) / item.SellingPrice) * 100
	}

	return CostBreakdown{
		FreightPerUnit:      Sanitize(freightPerUnit),
		BaseCost:            Sanitize(baseCost),
		CreditFeeAmount:     Sanitize(creditFeeAmount),
		UnitProfit:          Sanitize(unitProfit),
		DisplayProfitMargin: Sanitize(displayMargin),
	}
}

// TotalProfit projeta o lucro da peça sobre o total de unidades que já
// passou pelo estoque (original, não apenas o disponível), de modo que o
// lucro reflita o lote inteiro independentemente de quanto já vendeu.
func TotalProfit(item clothing.Item, originalPieces int) float64 {
	return Sanitize(Cost(item).UnitProfit * float64(originalPieces))
}

// Sanitize transforma NaN e infinitos em 0, mantendo valores finitos.
// Consumidores de valores monetários exibem 0 em vez de propagar lixo.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
