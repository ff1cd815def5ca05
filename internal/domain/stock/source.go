package stock

import (
	"github.com/jeacloset/erp-vestuario/internal/domain/clothing"
	"github.com/jeacloset/erp-vestuario/internal/domain/sale"
	"github.com/jeacloset/erp-vestuario/internal/domain/user"
)

// SoldQuantitySource responde quantas unidades de uma peça (ou de uma
// variação específica) já foram vendidas.
//
// Existem duas fontes possíveis para esse número: o contador estático
// gravado nas variações do conjunto de demonstração, e a varredura do
// histórico de vendas. A fonte é escolhida uma única vez, pelo perfil do
// usuário, na construção, e nunca misturada por chamada.
type SoldQuantitySource interface {
	// ItemSold retorna o total vendido da peça, somando todas as variações
	ItemSold(item clothing.Item) int

	// VariationSold retorna o total vendido de uma variação da peça
	VariationSold(item clothing.Item, v clothing.Variation) int
}

// StaticCounterSource lê o campo SoldQuantity gravado nas variações.
// É a fonte usada no perfil visualizador, cujos dados de demonstração
// trazem o vendido pré-calculado.
type StaticCounterSource struct{}

// ItemSold implementa SoldQuantitySource.ItemSold
func (StaticCounterSource) ItemSold(item clothing.Item) int {
	total := 0
	for _, v := range item.Variations {
		total += v.SoldQuantity
	}
	return total
}

// VariationSold implementa SoldQuantitySource.VariationSold
func (StaticCounterSource) VariationSold(_ clothing.Item, v clothing.Variation) int {
	return v.SoldQuantity
}

// SalesLogScanSource deriva o vendido varrendo o histórico de vendas.
// É a fonte usada nos perfis admin e user, cujos dados reais nunca
// guardam contadores de venda nas variações.
type SalesLogScanSource struct {
	sales []sale.Sale

	// includePending determina se vendas pendentes contam como vendidas.
	// O comportamento padrão do sistema é contar (estoque comprometido é
	// estoque vendido para fins de relatório), mas a política fica
	// explícita aqui em vez de espalhada pelos consumidores.
	includePending bool
}

// NewSalesLogScanSource cria uma fonte baseada no histórico de vendas
func NewSalesLogScanSource(sales []sale.Sale, includePendingInSoldCount bool) *SalesLogScanSource {
	return &SalesLogScanSource{
		sales:          sales,
		includePending: includePendingInSoldCount,
	}
}

// ItemSold implementa SoldQuantitySource.ItemSold
func (s *SalesLogScanSource) ItemSold(item clothing.Item) int {
	return s.scan(item.ID, "")
}

// VariationSold implementa SoldQuantitySource.VariationSold
func (s *SalesLogScanSource) VariationSold(item clothing.Item, v clothing.Variation) int {
	return s.scan(item.ID, v.ID)
}

func (s *SalesLogScanSource) scan(itemID, variationID string) int {
	if len(s.sales) == 0 {
		return 0
	}
	total := 0
	for _, sl := range s.sales {
		if !s.includePending && sl.Status != sale.StatusPaid {
			continue
		}
		total += sl.QuantityOf(itemID, variationID)
	}
	return total
}

// SourceForRole escolhe a fonte de quantidade vendida conforme o perfil.
// Visualizador usa os contadores estáticos da demonstração; os demais
// perfis derivam do histórico de vendas.
func SourceForRole(role user.Role, sales []sale.Sale, includePendingInSoldCount bool) SoldQuantitySource {
	if role.IsViewer() {
		return StaticCounterSource{}
	}
	return NewSalesLogScanSource(sales, includePendingInSoldCount)
}
