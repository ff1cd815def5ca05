package stock_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/jeacloset/erp-vestuario/internal/domain/clothing"
	"github.com/jeacloset/erp-vestuario/internal/domain/sale"
	"github.com/jeacloset/erp-vestuario/internal/domain/stock"
)

func lotItem(id, supplier string, createdAt time.Time, costPrice, sellingPrice float64, qty, sold int) clothing.Item {
	return clothing.Item{
		ID:           id,
		Code:         id,
		Name:         "Peça " + id,
		Supplier:     supplier,
		CostPrice:    costPrice,
		SellingPrice: sellingPrice,
		Variations: []clothing.Variation{
			{ID: id + "-v1", Quantity: qty, SoldQuantity: sold},
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestAggregateLots_GroupsBySupplierAndDay(t *testing.T) {
	// Mesmo fornecedor e mesmo dia formam um lote; outro dia
	// forma lote separado
	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	day1Later := time.Date(2025, 3, 10, 17, 30, 0, 0, time.Local)
	day2 := time.Date(2025, 3, 11, 9, 0, 0, 0, time.Local)

	items := []clothing.Item{
		lotItem("a", "Moda & Estilo Ltda", day1, 10, 20, 5, 0),
		lotItem("b", "Moda & Estilo Ltda", day1Later, 10, 20, 3, 0),
		lotItem("c", "Moda & Estilo Ltda", day2, 10, 20, 2, 0),
	}

	lots := stock.AggregateLots(items, nil, stock.StaticCounterSource{})
	if len(lots) != 2 {
		t.Fatalf("esperados 2 lotes, obtidos %d", len(lots))
	}

	for _, lot := range lots {
		switch lot.Date.Format("2006-01-02") {
		case "2025-03-10":
			if len(lot.Items) != 2 {
				t.Errorf("lote do dia 10 deveria ter 2 peças, tem %d", len(lot.Items))
			}
		case "2025-03-11":
			if len(lot.Items) != 1 {
				t.Errorf("lote do dia 11 deveria ter 1 peça, tem %d", len(lot.Items))
			}
		default:
			t.Errorf("lote com data inesperada: %v", lot.Date)
		}
	}
}

func TestAggregateLots_DifferentSuppliersNeverShareLot(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	items := []clothing.Item{
		lotItem("a", "Fornecedor A", day, 10, 20, 5, 0),
		lotItem("b", "Fornecedor B", day, 10, 20, 5, 0),
	}

	lots := stock.AggregateLots(items, nil, stock.StaticCounterSource{})
	if len(lots) != 2 {
		t.Fatalf("fornecedores diferentes deveriam formar lotes distintos, obtidos %d", len(lots))
	}
}

func TestAggregateLots_InvestedUsesOriginalPieces(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	// 2 disponíveis + 8 vendidas = 10 originais; investido não encolhe
	// conforme vende
	items := []clothing.Item{lotItem("a", "Fornecedor", day, 10, 15, 2, 8)}

	lots := stock.AggregateLots(items, nil, stock.StaticCounterSource{})
	if len(lots) != 1 {
		t.Fatalf("esperado 1 lote, obtidos %d", len(lots))
	}
	if !almostEqual(lots[0].Invested, 100) {
		t.Errorf("investido esperado 100 (custo 10 x 10 peças originais), obtido %v", lots[0].Invested)
	}
	if lots[0].TotalPieces != 10 || lots[0].SoldPieces != 8 {
		t.Errorf("esperado total=10 vendidas=8, obtido total=%d vendidas=%d", lots[0].TotalPieces, lots[0].SoldPieces)
	}
}

func TestAggregateLots_RecoveredStatus(t *testing.T) {
	// Valor vendido (120) acima do investido (100) com progresso
	// de 80% rotula o lote como Recuperado
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	items := []clothing.Item{lotItem("a", "Fornecedor", day, 10, 15, 2, 8)}

	lots := stock.AggregateLots(items, nil, stock.StaticCounterSource{})
	lot := lots[0]

	if !almostEqual(lot.SoldValue, 120) {
		t.Fatalf("valor vendido esperado 120, obtido %v", lot.SoldValue)
	}
	if !almostEqual(lot.Progress, 80) {
		t.Fatalf("progresso esperado 80, obtido %v", lot.Progress)
	}
	if lot.Status != stock.LotStatusRecovered {
		t.Errorf("status esperado %q, obtido %q", stock.LotStatusRecovered, lot.Status)
	}
}

func TestAggregateLots_StatusLabels(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		item clothing.Item
		want string
	}{
		{
			name: "tudo vendido é Finalizado",
			item: lotItem("a", "F", day, 10, 15, 0, 10),
			want: stock.LotStatusFinished,
		},
		{
			name: "sem vendas fica Em andamento",
			item: lotItem("b", "F", day, 10, 15, 10, 0),
			want: stock.LotStatusInProgress,
		},
		{
			name: "capital recuperado antes de esgotar",
			item: lotItem("c", "F", day, 10, 50, 5, 5),
			want: stock.LotStatusRecovered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lots := stock.AggregateLots([]clothing.Item{tt.item}, nil, stock.StaticCounterSource{})
			if lots[0].Status != tt.want {
				t.Errorf("status esperado %q, obtido %q", tt.want, lots[0].Status)
			}
		})
	}
}

func TestAggregateLots_NoSalesHasZeroProfit(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	items := []clothing.Item{lotItem("a", "Fornecedor", day, 30, 60, 10, 0)}

	lots := stock.AggregateLots(items, nil, stock.StaticCounterSource{})
	if lots[0].Profit != 0 {
		t.Errorf("lote sem vendas deveria ter lucro 0, obtido %v (nunca -investido)", lots[0].Profit)
	}
	if lots[0].SoldValue != 0 {
		t.Errorf("valor vendido deveria ser 0, obtido %v", lots[0].SoldValue)
	}
}

func TestAggregateLots_SoldValueFallsBackToSalesLog(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	// Sem contadores estáticos: o valor vendido vem do histórico de vendas
	item := lotItem("a", "Fornecedor", day, 10, 25, 3, 0)
	sales := []sale.Sale{
		{
			ID:            "s1",
			Status:        sale.StatusPaid,
			PaymentMethod: sale.PaymentPix,
			Items: []sale.Item{
				{ClothingItemID: "a", VariationID: "a-v1", Quantity: 2, UnitPrice: 25, TotalPrice: 50},
			},
		},
		{
			ID:            "s2",
			Status:        sale.StatusPending,
			PaymentMethod: sale.PaymentCash,
			Items: []sale.Item{
				{ClothingItemID: "a", VariationID: "a-v1", Quantity: 1, UnitPrice: 22, TotalPrice: 22},
				{ClothingItemID: "peça-removida", VariationID: "x", Quantity: 1, UnitPrice: 10, TotalPrice: 10},
			},
		},
	}

	lots := stock.AggregateLots([]clothing.Item{item}, sales, stock.NewSalesLogScanSource(sales, true))
	if !almostEqual(lots[0].SoldValue, 72) {
		t.Errorf("valor vendido esperado 72 (50+22, ignorando peça de outro lote), obtido %v", lots[0].SoldValue)
	}
}

func TestAggregateLots_StaticCountersWinOverSalesLog(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	// Quando há contador estático, o histórico não entra no valor vendido
	// (uma estratégia por lote, nunca soma das duas)
	item := lotItem("a", "Fornecedor", day, 10, 20, 2, 3)
	sales := []sale.Sale{
		{
			ID:     "s1",
			Status: sale.StatusPaid,
			Items: []sale.Item{
				{ClothingItemID: "a", VariationID: "a-v1", Quantity: 1, TotalPrice: 999},
			},
		},
	}

	lots := stock.AggregateLots([]clothing.Item{item}, sales, stock.StaticCounterSource{})
	if !almostEqual(lots[0].SoldValue, 60) {
		t.Errorf("valor vendido esperado 60 (20 x 3 do contador), obtido %v", lots[0].SoldValue)
	}
}

func TestAggregateLots_Idempotent(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	items := []clothing.Item{
		lotItem("a", "Fornecedor A", day, 10, 20, 2, 3),
		lotItem("b", "Fornecedor B", day, 15, 30, 4, 0),
	}
	sales := []sale.Sale{
		{ID: "s1", Status: sale.StatusPaid, Items: []sale.Item{
			{ClothingItemID: "b", VariationID: "b-v1", Quantity: 1, TotalPrice: 30},
		}},
	}
	src := stock.NewSalesLogScanSource(sales, true)

	first := stock.AggregateLots(items, sales, src)
	second := stock.AggregateLots(items, sales, src)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("duas agregações do mesmo retrato deveriam ser idênticas:\n%+v\n%+v", first, second)
	}
}

func TestAggregateLots_SortOrder(t *testing.T) {
	older := time.Date(2025, 1, 5, 9, 0, 0, 0, time.Local)
	newer := time.Date(2025, 2, 5, 9, 0, 0, 0, time.Local)
	newest := time.Date(2025, 3, 5, 9, 0, 0, 0, time.Local)

	items := []clothing.Item{
		// Lote finalizado mais recente de todos: ainda assim vai para o fim
		lotItem("done", "F1", newest, 10, 20, 0, 5),
		lotItem("old", "F2", older, 10, 20, 5, 0),
		lotItem("new", "F3", newer, 10, 20, 5, 0),
	}

	lots := stock.AggregateLots(items, nil, stock.StaticCounterSource{})
	if len(lots) != 3 {
		t.Fatalf("esperados 3 lotes, obtidos %d", len(lots))
	}
	if lots[0].Supplier != "F3" || lots[1].Supplier != "F2" {
		t.Errorf("lotes em andamento deveriam vir primeiro, do mais recente: %v, %v", lots[0].Supplier, lots[1].Supplier)
	}
	if lots[2].Status != stock.LotStatusFinished {
		t.Errorf("lote finalizado deveria ficar por último, obtido %q", lots[2].Status)
	}
}

func TestAggregateLots_MalformedDateFallsIntoToday(t *testing.T) {
	item := lotItem("a", "Fornecedor", time.Time{}, 10, 20, 5, 0)

	lots := stock.AggregateLots([]clothing.Item{item}, nil, stock.StaticCounterSource{})
	if len(lots) != 1 {
		t.Fatalf("peça com data zerada deveria agregar normalmente, obtidos %d lotes", len(lots))
	}
	if lots[0].Date.IsZero() {
		t.Errorf("data do lote não deveria ser zerada")
	}
	if lots[0].Date.Format("2006-01-02") != time.Now().Format("2006-01-02") {
		t.Errorf("peça com data malformada deveria cair no lote de hoje, obtido %v", lots[0].Date)
	}
}

func TestAggregateLots_ProgressClampedAt100(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	item := lotItem("a", "Fornecedor", day, 10, 20, 0, 5)
	// Venda extra inconsistente: mais vendido do que o original registrado
	sales := []sale.Sale{
		{ID: "s1", Status: sale.StatusPaid, Items: []sale.Item{
			{ClothingItemID: "a", VariationID: "a-v1", Quantity: 9, TotalPrice: 180},
		}},
	}

	lots := stock.AggregateLots([]clothing.Item{item}, sales, stock.NewSalesLogScanSource(sales, true))
	if lots[0].Progress > 100 {
		t.Errorf("progresso deveria ser limitado a 100, obtido %v", lots[0].Progress)
	}
	if lots[0].Status != stock.LotStatusFinished {
		t.Errorf("progresso no teto deveria rotular Finalizado, obtido %q", lots[0].Status)
	}
}

func TestFilterLots(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	items := []clothing.Item{
		lotItem("a", "F1", day, 10, 20, 5, 0),
		lotItem("b", "F2", day, 10, 20, 0, 5),
	}
	lots := stock.AggregateLots(items, nil, stock.StaticCounterSource{})

	if got := stock.FilterLots(lots, "F1", ""); len(got) != 1 || got[0].Supplier != "F1" {
		t.Errorf("filtro por fornecedor falhou: %+v", got)
	}
	if got := stock.FilterLots(lots, "", stock.LotStatusFinished); len(got) != 1 || got[0].Supplier != "F2" {
		t.Errorf("filtro por status falhou: %+v", got)
	}
	if got := stock.FilterLots(lots, "", ""); len(got) != 2 {
		t.Errorf("sem filtros deveria devolver tudo, obtidos %d", len(got))
	}
}
