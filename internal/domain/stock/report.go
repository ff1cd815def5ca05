package stock

import (
	"sort"

	"github.com/jeacloset/erp-vestuario/internal/domain/clothing"
	"github.com/jeacloset/erp-vestuario/internal/domain/sale"
)

// ProductSales acumula as vendas de uma peça para o ranking de mais vendidas
type ProductSales struct {
	ClothingItemID string  `json:"clothing_item_id"`
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	Revenue        float64 `json:"revenue"`
}

// SalesReport consolida os indicadores da aba de relatórios
type SalesReport struct {
	TotalSales    int            `json:"total_sales"`
	TotalRevenue  float64        `json:"total_revenue"`
	AverageTicket float64        `json:"average_ticket"`
	RealProfit    float64        `json:"real_profit"`
	ByStatus      map[string]int `json:"by_status"`
	ByPayment     map[string]int `json:"by_payment"`
	TopProducts   []ProductSales `json:"top_products"`
}

// BuildSalesReport calcula o relatório consolidado de vendas.
//
// Receita é sempre líquida: pagamentos em cartão abatem o percentual de
// taxa cadastrado na peça. Itens de venda que referenciam peças já
// removidas do catálogo contribuem com custo zero e receita cheia, nunca
// com erro.
func BuildSalesReport(items []clothing.Item, sales []sale.Sale, source SoldQuantitySource) SalesReport {
	byID := make(map[string]clothing.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	report := SalesReport{
		ByStatus:  map[string]int{},
		ByPayment: map[string]int{},
	}
	report.TotalSales = len(sales)

	rec := NewReconciler(source)
	products := make(map[string]*ProductSales)

	totalCost := 0.0
	totalNet := 0.0

	for _, s := range sales {
		report.ByStatus[string(s.Status)]++

		// Dinheiro e pix contam juntos no quadro de formas de pagamento
		switch s.PaymentMethod {
		case sale.PaymentCash, sale.PaymentPix:
			report.ByPayment[string(sale.PaymentCash)]++
		default:
			report.ByPayment[string(s.PaymentMethod)]++
		}

		report.TotalRevenue += saleNet(s, byID)

		for _, it := range s.Items {
			item, ok := byID[it.ClothingItemID]

			feePercent := 0.0
			if ok && s.PaymentMethod.IsCard() {
				feePercent = item.CreditFee
			}
			itemNet := it.TotalPrice - it.TotalPrice*(feePercent/100)
			totalNet += itemNet

			if ok {
				// Custo real da peça: frete rateado pelo total de unidades
				// que já passou pelo estoque, mais extras e embalagem
				original := rec.ItemQuantities(item).Original
				freightPerUnit := 0.0
				if original > 0 {
					freightPerUnit = item.FreightCost / float64(original)
				}
				realCost := item.CostPrice + freightPerUnit + item.ExtraCosts + item.PackagingCost
				totalCost += realCost * float64(it.Quantity)
			}

			p, exists := products[it.ClothingItemID]
			if !exists {
				p = &ProductSales{ClothingItemID: it.ClothingItemID, Name: it.ClothingItemName}
				products[it.ClothingItemID] = p
			}
			p.Quantity += it.Quantity
			p.Revenue += itemNet
		}
	}

	report.RealProfit = Sanitize(totalNet - totalCost)
	report.TotalRevenue = Sanitize(report.TotalRevenue)
	if report.TotalSales > 0 {
		report.AverageTicket = Sanitize(report.TotalRevenue / float64(report.TotalSales))
	}

	report.TopProducts = rankProducts(products, 5)
	return report
}

// saleNet retorna o valor da venda líquido da taxa de cartão. Vendas fora
// de cartão valem o total cheio.
func saleNet(s sale.Sale, byID map[string]clothing.Item) float64 {
	if !s.PaymentMethod.IsCard() {
		return s.Total
	}
	fee := 0.0
	for _, it := range s.Items {
		item, ok := byID[it.ClothingItemID]
		if !ok {
			continue
		}
		fee += it.TotalPrice * (item.CreditFee / 100)
	}
	net := s.Total - fee
	if net < 0 {
		net = 0
	}
	return net
}

func rankProducts(products map[string]*ProductSales, limit int) []ProductSales {
	ranked := make([]ProductSales, 0, len(products))
	for _, p := range products {
		p.Revenue = Sanitize(p.Revenue)
		ranked = append(ranked, *p)
	}
	// A peça mais vendida em quantidade lidera o ranking; a receita
	// desempata entre peças com a mesma saída.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		return ranked[i].ClothingItemID < ranked[j].ClothingItemID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
