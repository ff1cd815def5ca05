package repository

import (
	"time"

	"github.com/jeacloset/erp-vestuario/internal/domain/cashflow"
	"github.com/jeacloset/erp-vestuario/internal/domain/clothing"
	"github.com/jeacloset/erp-vestuario/internal/domain/note"
	"github.com/jeacloset/erp-vestuario/internal/domain/sale"
)

// Conjunto de demonstração servido a usuários com perfil visualizador.
// É o único lugar onde os contadores estáticos de vendido (SoldQuantity)
// são preenchidos; os dados reais derivam o vendido do histórico de vendas.

// DemoClothingItems retorna o catálogo de demonstração
func DemoClothingItems() []clothing.Item {
	base := time.Date(2024, 8, 10, 14, 30, 0, 0, time.Local)
	later := time.Date(2024, 8, 22, 9, 15, 0, 0, time.Local)

	return []clothing.Item{
		{
			ID:       "demo-CL-1",
			Code:     "BLU-001",
			Name:     "Blusa Básica",
			Category: clothing.CategoryBlusas,
			Supplier: "Moda & Estilo Ltda",
			Variations: []clothing.Variation{
				{
					ID:           "demo-CL-1-v1",
					Size:         clothing.Size{Type: clothing.SizeTypeLetter, Value: "M", DisplayName: "M"},
					Color:        "Branco",
					Quantity:     1,
					SoldQuantity: 2,
				},
				{
					ID:           "demo-CL-1-v2",
					Size:         clothing.Size{Type: clothing.SizeTypeLetter, Value: "G", DisplayName: "G"},
					Color:        "Preto",
					Quantity:     2,
					SoldQuantity: 1,
				},
			},
			CostPrice:       25.00,
			SellingPrice:    59.90,
			FreightCost:     18.00,
			FreightQuantity: 6,
			PackagingCost:   1.20,
			CreditFee:       3.5,
			Status:          clothing.StatusAvailable,
			CreatedAt:       base,
			UpdatedAt:       base,
		},
		{
			ID:       "demo-CL-2",
			Code:     "CAL-014",
			Name:     "Calça Jeans Skinny",
			Category: clothing.CategoryCalcas,
			Supplier: "Jeans Brasil Confecções",
			Variations: []clothing.Variation{
				{
					ID:           "demo-CL-2-v1",
					Size:         clothing.Size{Type: clothing.SizeTypeNumeric, Value: "38", DisplayName: "38"},
					Color:        "Azul Escuro",
					Quantity:     0,
					SoldQuantity: 3,
				},
				{
					ID:           "demo-CL-2-v2",
					Size:         clothing.Size{Type: clothing.SizeTypeNumeric, Value: "40", DisplayName: "40"},
					Color:        "Azul Escuro",
					Quantity:     1,
					SoldQuantity: 1,
				},
			},
			CostPrice:       48.00,
			SellingPrice:    119.90,
			FreightCost:     24.00,
			FreightQuantity: 8,
			PackagingCost:   1.20,
			CreditFee:       3.5,
			Status:          clothing.StatusAvailable,
			CreatedAt:       later,
			UpdatedAt:       later,
		},
		{
			ID:       "demo-CL-3",
			Code:     "VES-007",
			Name:     "Vestido Midi Floral",
			Category: clothing.CategoryVestidos,
			Supplier: "Moda & Estilo Ltda",
			Variations: []clothing.Variation{
				{
					ID:           "demo-CL-3-v1",
					Size:         clothing.Size{Type: clothing.SizeTypeLetter, Value: "P", DisplayName: "P"},
					Color:        "Floral Rosa",
					Quantity:     2,
					SoldQuantity: 0,
				},
			},
			CostPrice:       62.00,
			SellingPrice:    149.90,
			FreightCost:     18.00,
			FreightQuantity: 6,
			PackagingCost:   1.20,
			CreditFee:       3.5,
			Status:          clothing.StatusAvailable,
			CreatedAt:       base,
			UpdatedAt:       base,
		},
	}
}

// DemoSales retorna o histórico de vendas de demonstração
func DemoSales() []sale.Sale {
	first := time.Date(2024, 8, 15, 16, 40, 0, 0, time.Local)
	second := time.Date(2024, 8, 28, 11, 5, 0, 0, time.Local)

	return []sale.Sale{
		{
			ID:           "demo-SA-1",
			CustomerName: "Paolla Oliveira",
			Items: []sale.Item{
				{
					ID:               "demo-SA-1-i1",
					ClothingItemID:   "demo-CL-1",
					ClothingItemCode: "BLU-001",
					ClothingItemName: "Blusa Básica",
					VariationID:      "demo-CL-1-v1",
					Size:             "M",
					Color:            "Branco",
					Quantity:         2,
					UnitPrice:        59.90,
					TotalPrice:       119.80,
				},
			},
			Subtotal:      119.80,
			DiscountType:  sale.DiscountFixed,
			Total:         119.80,
			PaymentMethod: sale.PaymentPix,
			Status:        sale.StatusPaid,
			CreatedAt:     first,
			UpdatedAt:     first,
		},
		{
			ID:           "demo-SA-2",
			CustomerName: "Juliana Martins",
			Items: []sale.Item{
				{
					ID:               "demo-SA-2-i1",
					ClothingItemID:   "demo-CL-2",
					ClothingItemCode: "CAL-014",
					ClothingItemName: "Calça Jeans Skinny",
					VariationID:      "demo-CL-2-v1",
					Size:             "38",
					Color:            "Azul Escuro",
					Quantity:         3,
					UnitPrice:        119.90,
					TotalPrice:       359.70,
				},
				{
					ID:               "demo-SA-2-i2",
					ClothingItemID:   "demo-CL-1",
					ClothingItemCode: "BLU-001",
					ClothingItemName: "Blusa Básica",
					VariationID:      "demo-CL-1-v2",
					Size:             "G",
					Color:            "Preto",
					Quantity:         1,
					UnitPrice:        59.90,
					TotalPrice:       59.90,
				},
			},
			Subtotal:      419.60,
			Discount:      10,
			DiscountType:  sale.DiscountPercent,
			Total:         377.64,
			PaymentMethod: sale.PaymentCreditCard,
			Status:        sale.StatusPaid,
			CreatedAt:     second,
			UpdatedAt:     second,
		},
		{
			ID:           "demo-SA-3",
			CustomerName: "Camila Souza",
			Items: []sale.Item{
				{
					ID:               "demo-SA-3-i1",
					ClothingItemID:   "demo-CL-2",
					ClothingItemCode: "CAL-014",
					ClothingItemName: "Calça Jeans Skinny",
					VariationID:      "demo-CL-2-v2",
					Size:             "40",
					Color:            "Azul Escuro",
					Quantity:         1,
					UnitPrice:        119.90,
					TotalPrice:       119.90,
				},
			},
			Subtotal:      119.90,
			DiscountType:  sale.DiscountFixed,
			Total:         119.90,
			PaymentMethod: sale.PaymentCash,
			Status:        sale.StatusPending,
			CreatedAt:     second,
			UpdatedAt:     second,
		},
	}
}

// DemoMovements retorna o fluxo de caixa de demonstração
func DemoMovements() []cashflow.Movement {
	first := time.Date(2024, 8, 12, 10, 0, 0, 0, time.Local)
	second := time.Date(2024, 8, 26, 15, 30, 0, 0, time.Local)

	return []cashflow.Movement{
		{
			ID:          "demo-MV-1",
			Date:        first,
			Description: "Retirada para reinvestimento em estoque",
			Origin:      cashflow.OriginCaixa,
			SubOrigin:   cashflow.SubOriginReinvestimento,
			Amount:      350.00,
			Status:      cashflow.StatusPaid,
			CreatedAt:   first,
			UpdatedAt:   first,
		},
		{
			ID:          "demo-MV-2",
			Date:        second,
			Description: "Compra de sacolas e etiquetas",
			Origin:      cashflow.OriginEmbalagem,
			Amount:      48.90,
			Status:      cashflow.StatusPending,
			CreatedAt:   second,
			UpdatedAt:   second,
		},
	}
}

// DemoNotes retorna as notas internas de demonstração
func DemoNotes() []note.Note {
	first := time.Date(2024, 8, 14, 9, 20, 0, 0, time.Local)
	second := time.Date(2024, 8, 25, 17, 45, 0, 0, time.Local)

	return []note.Note{
		{
			ID:         "demo-NT-1",
			Title:      "Conferir frete do último lote",
			Content:    "O frete do lote de calças veio dividido em duas faturas, conferir antes de fechar o custo.",
			Type:       note.TypeProblem,
			Priority:   note.PriorityHigh,
			Status:     note.StatusOpen,
			RelatedTab: "investments",
			CreatedAt:  first,
			UpdatedAt:  first,
		},
		{
			ID:         "demo-NT-2",
			Title:      "Fotografar vestidos novos",
			Content:    "Tirar fotos do vestido midi floral para divulgar nas redes.",
			Type:       note.TypeImprovement,
			Priority:   note.PriorityMedium,
			Status:     note.StatusInProgress,
			RelatedTab: "clothing",
			CreatedAt:  second,
			UpdatedAt:  second,
		},
	}
}
