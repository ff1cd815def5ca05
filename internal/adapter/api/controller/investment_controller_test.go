package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/dto"
	"github.com/jeacloset/erp-vestuario/internal/domain/clothing"
	"github.com/jeacloset/erp-vestuario/internal/domain/sale"
	"github.com/jeacloset/erp-vestuario/internal/domain/stock"
)

func investmentRouter(role string, clothingRepo *fakeClothingRepo, saleRepo *fakeSaleRepo) *gin.Engine {
	router := gin.New()
	ctrl := NewInvestmentController(clothingRepo, saleRepo, stock.NewLotCache(), true, testLogger())
	router.GET("/api/v1/investments", asRole(role), ctrl.List)
	return router
}

func getLots(t *testing.T, router *gin.Engine, path string) []dto.LotResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var lots []dto.LotResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &lots); err != nil {
		t.Fatalf("erro ao decodificar resposta: %v", err)
	}
	return lots
}

func TestInvestmentList_AggregatesBySupplierAndDay(t *testing.T) {
	day := time.Date(2024, 7, 5, 10, 0, 0, 0, time.UTC)

	itemA := clothing.Item{
		ID: "it-a", Code: "A-1", Name: "Blusa", Supplier: "Fornecedor Um",
		CostPrice: 10, SellingPrice: 30,
		Variations: []clothing.Variation{{ID: "va", Quantity: 2}},
		CreatedAt:  day, UpdatedAt: day,
	}
	itemB := clothing.Item{
		ID: "it-b", Code: "B-1", Name: "Saia", Supplier: "Fornecedor Um",
		CostPrice: 20, SellingPrice: 50,
		Variations: []clothing.Variation{{ID: "vb", Quantity: 1}},
		CreatedAt:  day.Add(2 * time.Hour), UpdatedAt: day,
	}

	s := sale.Sale{
		ID:     "sa-1",
		Status: sale.StatusPaid,
		Items: []sale.Item{
			{ID: "si-1", ClothingItemID: "it-a", VariationID: "va", Quantity: 1, UnitPrice: 30, TotalPrice: 30},
		},
		Total: 30, CreatedAt: day.Add(3 * time.Hour), UpdatedAt: day,
	}

	router := investmentRouter("admin", newFakeClothingRepo(itemA, itemB), newFakeSaleRepo(s))
	lots := getLots(t, router, "/api/v1/investments")

	if len(lots) != 1 {
		t.Fatalf("len(lots) = %d, esperado 1 (mesmo fornecedor, mesmo dia)", len(lots))
	}

	lot := lots[0]
	// it-a: disponível 2 + vendido 1 = 3 peças; it-b: 1 peça
	if lot.TotalPieces != 4 {
		t.Errorf("TotalPieces = %d, esperado 4", lot.TotalPieces)
	}
	if lot.SoldPieces != 1 {
		t.Errorf("SoldPieces = %d, esperado 1", lot.SoldPieces)
	}
	// Investido usa o total original de peças: 10*3 + 20*1
	if lot.Invested != 50 {
		t.Errorf("Invested = %v, esperado 50", lot.Invested)
	}
	if lot.SoldValue != 30 {
		t.Errorf("SoldValue = %v, esperado 30", lot.SoldValue)
	}
	if lot.Status != stock.LotStatusInProgress {
		t.Errorf("Status = %q, esperado %q", lot.Status, stock.LotStatusInProgress)
	}
	if len(lot.Items) != 2 {
		t.Errorf("len(Items) = %d, esperado 2", len(lot.Items))
	}
}

func TestInvestmentList_ViewerUsesDemoDataset(t *testing.T) {
	// Os repositórios vazios garantem que nada veio do banco
	router := investmentRouter("viewer", newFakeClothingRepo(), newFakeSaleRepo())
	lots := getLots(t, router, "/api/v1/investments")

	if len(lots) == 0 {
		t.Fatal("visualizador deve receber lotes do conjunto de demonstração")
	}
	for _, lot := range lots {
		for _, item := range lot.Items {
			if item.ID == "" {
				t.Error("item de lote sem ID no conjunto de demonstração")
			}
		}
	}
}

func TestInvestmentList_SupplierFilter(t *testing.T) {
	day := time.Date(2024, 7, 5, 10, 0, 0, 0, time.UTC)

	itemA := clothing.Item{
		ID: "it-a", Code: "A-1", Name: "Blusa", Supplier: "Fornecedor Um",
		CostPrice: 10, SellingPrice: 30,
		Variations: []clothing.Variation{{ID: "va", Quantity: 1}},
		CreatedAt:  day, UpdatedAt: day,
	}
	itemB := clothing.Item{
		ID: "it-b", Code: "B-1", Name: "Saia", Supplier: "Fornecedor Dois",
		CostPrice: 20, SellingPrice: 50,
		Variations: []clothing.Variation{{ID: "vb", Quantity: 1}},
		CreatedAt:  day, UpdatedAt: day,
	}

	router := investmentRouter("admin", newFakeClothingRepo(itemA, itemB), newFakeSaleRepo())

	lots := getLots(t, router, "/api/v1/investments?supplier=Fornecedor+Dois")
	if len(lots) != 1 {
		t.Fatalf("len(lots) = %d, esperado 1 após filtro de fornecedor", len(lots))
	}
	if lots[0].Supplier != "Fornecedor Dois" {
		t.Errorf("Supplier = %q, esperado %q", lots[0].Supplier, "Fornecedor Dois")
	}
}
