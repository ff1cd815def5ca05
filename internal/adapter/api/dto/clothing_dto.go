package dto

import (
	"time"

	"github.com/jeacloset/erp-vestuario/internal/domain/clothing"
	"github.com/jeacloset/erp-vestuario/internal/domain/stock"
)

// VariationRequest representa os dados de uma variação (tamanho/cor)
type VariationRequest struct {
	SizeType    string `json:"size_type" binding:"required"`
	SizeValue   string `json:"size_value" binding:"required"`
	DisplayName string `json:"display_name"`
	Color       string `json:"color" binding:"required"`
	ColorCode   string `json:"color_code"`
	Quantity    int    `json:"quantity" binding:"min=0"`
	SKU         string `json:"sku"`
}

// ClothingRequest representa os dados de uma peça para criação ou atualização
type ClothingRequest struct {
	Code            string             `json:"code" binding:"required"`
	Name            string             `json:"name" binding:"required"`
	Description     string             `json:"description"`
	Category        string             `json:"category" binding:"required"`
	Brand           string             `json:"brand"`
	Supplier        string             `json:"supplier" binding:"required"`
	Collection      string             `json:"collection"`
	Season          string             `json:"season"`
	Variations      []VariationRequest `json:"variations" binding:"required,min=1"`
	CostPrice       float64            `json:"cost_price" binding:"min=0"`
	SellingPrice    float64            `json:"selling_price" binding:"min=0"`
	FreightCost     float64            `json:"freight_cost" binding:"min=0"`
	FreightQuantity int                `json:"freight_quantity" binding:"min=0"`
	PackagingCost   float64            `json:"packaging_cost" binding:"min=0"`
	ExtraCosts      float64            `json:"extra_costs" binding:"min=0"`
	CreditFee       float64            `json:"credit_fee" binding:"min=0"`
	Tags            []string           `json:"tags"`
}

// VariationResponse representa uma variação com as quantidades reconciliadas
type VariationResponse struct {
	ID          string `json:"id"`
	SizeType    string `json:"size_type"`
	SizeValue   string `json:"size_value"`
	DisplayName string `json:"display_name"`
	Color       string `json:"color"`
	ColorCode   string `json:"color_code,omitempty"`
	SKU         string `json:"sku,omitempty"`
	Available   int    `json:"available"`
	Sold        int    `json:"sold"`
	Original    int    `json:"original"`
}

// ClothingResponse representa a resposta com dados de uma peça
type ClothingResponse struct {
	ID              string              `json:"id"`
	Code            string              `json:"code"`
	Name            string              `json:"name"`
	Description     string              `json:"description,omitempty"`
	Category        string              `json:"category"`
	Brand           string              `json:"brand,omitempty"`
	Supplier        string              `json:"supplier"`
	Collection      string              `json:"collection,omitempty"`
	Season          string              `json:"season,omitempty"`
	Variations      []VariationResponse `json:"variations"`
	CostPrice       float64             `json:"cost_price"`
	SellingPrice    float64             `json:"selling_price"`
	FreightCost     float64             `json:"freight_cost"`
	FreightQuantity int                 `json:"freight_quantity"`
	PackagingCost   float64             `json:"packaging_cost"`
	ExtraCosts      float64             `json:"extra_costs"`
	CreditFee       float64             `json:"credit_fee"`
	Status          string              `json:"status"`
	Tags            []string            `json:"tags,omitempty"`
	Quantities      QuantitiesResponse  `json:"quantities"`
	Cost            CostResponse        `json:"cost"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// CostResponse representa a decomposição de custos de uma peça
type CostResponse struct {
	FreightPerUnit      float64 `json:"freight_per_unit"`
	BaseCost            float64 `json:"base_cost"`
	CreditFeeAmount     float64 `json:"credit_fee_amount"`
	UnitProfit          float64 `json:"unit_profit"`
	DisplayProfitMargin float64 `json:"display_profit_margin"`
}

// ToVariations converte as variações do request para o domínio
func (r ClothingRequest) ToVariations() []clothing.Variation {
	variations := make([]clothing.Variation, len(r.Variations))
	for i, v := range r.Variations {
		displayName := v.DisplayName
		if displayName == "" {
			displayName = v.SizeValue
		}
		variations[i] = clothing.Variation{
			Size: clothing.Size{
				Type:        clothing.SizeType(v.SizeType),
				Value:       v.SizeValue,
				DisplayName: displayName,
			},
			Color:     v.Color,
			ColorCode: v.ColorCode,
			Quantity:  v.Quantity,
			SKU:       v.SKU,
		}
	}
	return variations
}

// ToClothingResponse converte uma peça do domínio para DTO de resposta,
// com as quantidades reconciliadas pela fonte de vendido informada
func ToClothingResponse(item *clothing.Item, reconciler *stock.Reconciler) ClothingResponse {
	variations := make([]VariationResponse, len(item.Variations))
	for i, v := range item.Variations {
		q := reconciler.VariationQuantities(*item, v)
		variations[i] = VariationResponse{
			ID:          v.ID,
			SizeType:    string(v.Size.Type),
			SizeValue:   v.Size.Value,
			DisplayName: v.Size.DisplayName,
			Color:       v.Color,
			ColorCode:   v.ColorCode,
			SKU:         v.SKU,
			Available:   q.Available,
			Sold:        q.Sold,
			Original:    q.Original,
		}
	}

	cost := stock.Cost(*item)
	quantities := reconciler.ItemQuantities(*item)

	return ClothingResponse{
		ID:              item.ID,
		Code:            item.Code,
		Name:            item.Name,
		Description:     item.Description,
		Category:        string(item.Category),
		Brand:           item.Brand,
		Supplier:        item.Supplier,
		Collection:      item.Collection,
		Season:          item.Season,
		Variations:      variations,
		CostPrice:       item.CostPrice,
		SellingPrice:    item.SellingPrice,
		FreightCost:     item.FreightCost,
		FreightQuantity: item.FreightQuantity,
		PackagingCost:   item.PackagingCost,
		ExtraCosts:      item.ExtraCosts,
		CreditFee:       item.CreditFee,
		Status:          string(item.Status),
		Tags:            item.Tags,
		Quantities: QuantitiesResponse{
			Available: quantities.Available,
			Sold:      quantities.Sold,
			Original:  quantities.Original,
		},
		Cost: CostResponse{
			FreightPerUnit:      cost.FreightPerUnit,
			BaseCost:            cost.BaseCost,
			CreditFeeAmount:     cost.CreditFeeAmount,
			UnitProfit:          cost.UnitProfit,
			DisplayProfitMargin: cost.DisplayProfitMargin,
		},
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// ToClothingListResponse converte uma lista de peças do domínio para DTOs
func ToClothingListResponse(items []clothing.Item, reconciler *stock.Reconciler) []ClothingResponse {
	data := make([]ClothingResponse, len(items))
	for i := range items {
		data[i] = ToClothingResponse(&items[i], reconciler)
	}
	return data
}
