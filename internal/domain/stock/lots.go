package stock

import (
	"sort"
	"time"

	"github.com/jeacloset/erp-vestuario/internal/domain/clothing"
	"github.com/jeacloset/erp-vestuario/internal/domain/sale"
)

// Rótulos de andamento de um lote de investimento
const (
	LotStatusFinished   = "Finalizado"   // todas as peças vendidas
	LotStatusRecovered  = "Recuperado"   // capital investido já recuperado
	LotStatusInProgress = "Em andamento" // ainda vendendo, capital não recuperado
)

// Lot é um lote de investimento: o conjunto de peças compradas do mesmo
// fornecedor no mesmo dia. O agrupamento é uma heurística: duas compras
// distintas do mesmo fornecedor no mesmo dia caem no mesmo lote, pois o
// cadastro não registra um identificador de compra.
//
// Lotes nunca são persistidos: são recalculados do zero a cada consulta a
// partir das coleções de peças e vendas correntes.
type Lot struct {
	ID          string          `json:"id"`
	Supplier    string          `json:"supplier"`
	Date        time.Time       `json:"date"`
	Items       []clothing.Item `json:"items"`
	TotalPieces int             `json:"total_pieces"`
	SoldPieces  int             `json:"sold_pieces"`
	Invested    float64         `json:"invested"`
	SoldValue   float64         `json:"sold_value"`
	Profit      float64         `json:"profit"`
	Progress    float64         `json:"progress"`
	Status      string          `json:"status"`
}

// AggregateLots agrupa as peças em lotes de investimento e calcula os
// indicadores de cada lote. A função é pura: duas chamadas com o mesmo
// par (items, sales) produzem exatamente a mesma saída.
func AggregateLots(items []clothing.Item, sales []sale.Sale, source SoldQuantitySource) []Lot {
	rec := NewReconciler(source)

	type lotAccum struct {
		supplier string
		date     time.Time
		items    []clothing.Item
	}

	groups := make(map[string]*lotAccum)
	order := make([]string, 0)

	for _, item := range items {
		date := lotDate(item.CreatedAt)
		key := item.Supplier + "-" + date.Format("2006-01-02")
		g, ok := groups[key]
		if !ok {
			g = &lotAccum{supplier: item.Supplier, date: date}
			groups[key] = g
			order = append(order, key)
		}
		g.items = append(g.items, item)
	}

	lots := make([]Lot, 0, len(groups))
	for _, key := range order {
		g := groups[key]

		lot := Lot{
			ID:       key,
			Supplier: g.supplier,
			Date:     g.date,
			Items:    g.items,
		}

		// Valor investido: custo base vezes o total de peças que já passou
		// pelo estoque. Capital investido não encolhe conforme vende.
		for _, item := range g.items {
			q := rec.ItemQuantities(item)
			lot.Invested += Cost(item).BaseCost * float64(q.Original)
			lot.TotalPieces += q.Original
			lot.SoldPieces += q.Sold
		}
		lot.Invested = Sanitize(lot.Invested)

		lot.SoldValue = lotSoldValue(g.items, sales)

		// Um lote sem vendas tem lucro 0, nunca o investimento negativo.
		if lot.SoldValue > 0 {
			lot.Profit = Sanitize(lot.SoldValue - lot.Invested)
		}

		if lot.TotalPieces > 0 {
			lot.Progress = float64(lot.SoldPieces) / float64(lot.TotalPieces) * 100
		}
		// Inconsistências de dados podem extrapolar 100%; limitar para exibição
		if lot.Progress > 100 {
			lot.Progress = 100
		}

		switch {
		case lot.Progress >= 100:
			lot.Status = LotStatusFinished
		case lot.SoldValue > lot.Invested:
			lot.Status = LotStatusRecovered
		default:
			lot.Status = LotStatusInProgress
		}

		lots = append(lots, lot)
	}

	sortLots(lots)
	return lots
}

// lotSoldValue calcula o valor vendido do lote por uma de duas estratégias,
// nunca pelas duas: primeiro os contadores estáticos das variações (dados
// de demonstração); se resultarem em zero, o valor real dos itens de venda
// que referenciam peças do lote.
func lotSoldValue(items []clothing.Item, sales []sale.Sale) float64 {
	fromCounters := 0.0
	for _, item := range items {
		for _, v := range item.Variations {
			if v.SoldQuantity > 0 {
				fromCounters += item.SellingPrice * float64(v.SoldQuantity)
			}
		}
	}
	if fromCounters > 0 {
		return Sanitize(fromCounters)
	}

	inLot := make(map[string]bool, len(items))
	for _, item := range items {
		inLot[item.ID] = true
	}

	fromSales := 0.0
	for _, s := range sales {
		for _, it := range s.Items {
			if inLot[it.ClothingItemID] {
				fromSales += it.TotalPrice
			}
		}
	}
	return Sanitize(fromSales)
}

// lotDate normaliza a data de criação da peça. Datas zeradas (registro
// malformado) são tratadas como "agora" para que a agregação nunca falhe;
// a peça apenas cai no lote de hoje.
func lotDate(createdAt time.Time) time.Time {
	if createdAt.IsZero() {
		return time.Now()
	}
	return createdAt
}

// sortLots ordena os lotes para exibição: lotes finalizados (100%) vão
// para o final; dentro de cada grupo, do mais recente para o mais antigo.
func sortLots(lots []Lot) {
	sort.SliceStable(lots, func(i, j int) bool {
		iDone := lots[i].Progress >= 100
		jDone := lots[j].Progress >= 100
		if iDone != jDone {
			return !iDone
		}
		if !lots[i].Date.Equal(lots[j].Date) {
			return lots[i].Date.After(lots[j].Date)
		}
		return lots[i].ID < lots[j].ID
	})
}

// FilterLots aplica filtros opcionais de fornecedor e status ao resultado
// da agregação, preservando a ordem
func FilterLots(lots []Lot, supplier, status string) []Lot {
	if supplier == "" && status == "" {
		return lots
	}
	filtered := make([]Lot, 0, len(lots))
	for _, lot := range lots {
		if supplier != "" && lot.Supplier != supplier {
			continue
		}
		if status != "" && lot.Status != status {
			continue
		}
		filtered = append(filtered, lot)
	}
	return filtered
}
