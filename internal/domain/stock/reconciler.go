package stock

import (
	"github.com/jeacloset/erp-vestuario/internal/domain/clothing"
)

// Quantities agrega os três números de estoque de uma peça ou variação.
// Original é sempre Available + Sold: o total de unidades que já passou
// pelo estoque, usado em toda exibição de "total de peças".
type Quantities struct {
	Available int `json:"available"`
	Sold      int `json:"sold"`
	Original  int `json:"original"`
}

// Reconciler concilia a quantidade disponível gravada nas variações com a
// quantidade vendida informada pela fonte configurada. É somente leitura:
// o decremento de estoque acontece no registro da venda, nunca aqui.
type Reconciler struct {
	source SoldQuantitySource
}

// NewReconciler cria um conciliador sobre a fonte de vendidos informada
func NewReconciler(source SoldQuantitySource) *Reconciler {
	return &Reconciler{source: source}
}

// VariationQuantities calcula disponível, vendido e original de uma variação
func (r *Reconciler) VariationQuantities(item clothing.Item, v clothing.Variation) Quantities {
	sold := r.source.VariationSold(item, v)
	return Quantities{
		Available: v.Quantity,
		Sold:      sold,
		Original:  v.Quantity + sold,
	}
}

// ItemQuantities calcula disponível, vendido e original de uma peça inteira
func (r *Reconciler) ItemQuantities(item clothing.Item) Quantities {
	available := item.AvailableQuantity()
	sold := r.source.ItemSold(item)
	return Quantities{
		Available: available,
		Sold:      sold,
		Original:  available + sold,
	}
}

// TotalQuantities soma as quantidades de todas as peças informadas
func (r *Reconciler) TotalQuantities(items []clothing.Item) Quantities {
	var total Quantities
	for _, item := range items {
		q := r.ItemQuantities(item)
		total.Available += q.Available
		total.Sold += q.Sold
		total.Original += q.Original
	}
	return total
}
