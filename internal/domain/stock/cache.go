package stock

import (
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/jeacloset/erp-vestuario/internal/domain/clothing"
	"github.com/jeacloset/erp-vestuario/internal/domain/sale"
)

// LotCache memoiza a agregação de lotes para um retrato de dados.
// A agregação é O(peças × vendas) e recalculada a cada consulta; para
// catálogos maiores o cache evita refazer o trabalho enquanto as coleções
// não mudam. A chave é uma impressão digital do retrato (ids, carimbos de
// atualização e quantidades), não o conteúdo completo.
type LotCache struct {
	mu          sync.Mutex
	fingerprint uint64
	lots        []Lot
}

// NewLotCache cria um cache de lotes vazio
func NewLotCache() *LotCache {
	return &LotCache{}
}

// Lots retorna os lotes agregados do retrato informado, reutilizando o
// resultado anterior quando o retrato não mudou
func (c *LotCache) Lots(items []clothing.Item, sales []sale.Sale, source SoldQuantitySource) []Lot {
	fp := snapshotFingerprint(items, sales)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lots != nil && c.fingerprint == fp {
		return c.lots
	}

	c.lots = AggregateLots(items, sales, source)
	c.fingerprint = fp
	return c.lots
}

// Invalidate descarta o resultado memoizado
func (c *LotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lots = nil
	c.fingerprint = 0
}

func snapshotFingerprint(items []clothing.Item, sales []sale.Sale) uint64 {
	h := fnv.New64a()
	for _, item := range items {
		h.Write([]byte(item.ID))
		h.Write([]byte(item.UpdatedAt.UTC().Format("20060102150405.000")))
		for _, v := range item.Variations {
			h.Write([]byte(v.ID))
			h.Write([]byte(strconv.Itoa(v.Quantity)))
			h.Write([]byte(strconv.Itoa(v.SoldQuantity)))
		}
	}
	h.Write([]byte("|"))
	for _, s := range sales {
		h.Write([]byte(s.ID))
		h.Write([]byte(string(s.Status)))
		h.Write([]byte(s.UpdatedAt.UTC().Format("20060102150405.000")))
	}
	return h.Sum64()
}
