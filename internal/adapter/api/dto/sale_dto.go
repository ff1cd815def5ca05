package dto

import (
	"time"

	"github.com/jeacloset/erp-vestuario/internal/domain/sale"
)

// SaleItemRequest representa um item vendido no registro de venda
type SaleItemRequest struct {
	ClothingItemID string  `json:"clothing_item_id" binding:"required"`
	VariationID    string  `json:"variation_id" binding:"required"`
	Quantity       int     `json:"quantity" binding:"required,min=1"`
	UnitPrice      float64 `json:"unit_price" binding:"min=0"`
}

// SaleRequest representa os dados de uma venda para registro
type SaleRequest struct {
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	CustomerEmail string            `json:"customer_email"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1"`
	Discount      float64           `json:"discount" binding:"min=0"`
	DiscountType  string            `json:"discount_type"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	Status        string            `json:"status"`
	Notes         string            `json:"notes"`
}

// SaleItemResponse representa um item vendido na resposta
type SaleItemResponse struct {
	ID               string  `json:"id"`
	ClothingItemID   string  `json:"clothing_item_id"`
	ClothingItemCode string  `json:"clothing_item_code"`
	ClothingItemName string  `json:"clothing_item_name"`
	VariationID      string  `json:"variation_id"`
	Size             string  `json:"size"`
	Color            string  `json:"color"`
	Quantity         int     `json:"quantity"`
	UnitPrice        float64 `json:"unit_price"`
	TotalPrice       float64 `json:"total_price"`
}

// SaleResponse representa a resposta com dados de uma venda
type SaleResponse struct {
	ID            string             `json:"id"`
	CustomerName  string             `json:"customer_name,omitempty"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	CustomerEmail string             `json:"customer_email,omitempty"`
	Items         []SaleItemResponse `json:"items"`
	Subtotal      float64            `json:"subtotal"`
	Discount      float64            `json:"discount"`
	DiscountType  string             `json:"discount_type"`
	Total         float64            `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	Status        string             `json:"status"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ToSaleResponse converte uma venda do domínio para DTO de resposta
func ToSaleResponse(s *sale.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, it := range s.Items {
		items[i] = SaleItemResponse{
			ID:               it.ID,
			ClothingItemID:   it.ClothingItemID,
			ClothingItemCode: it.ClothingItemCode,
			ClothingItemName: it.ClothingItemName,
			VariationID:      it.VariationID,
			Size:             it.Size,
			Color:            it.Color,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			TotalPrice:       it.TotalPrice,
		}
	}

	return SaleResponse{
		ID:            s.ID,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		CustomerEmail: s.CustomerEmail,
		Items:         items,
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		DiscountType:  string(s.DiscountType),
		Total:         s.Total,
		PaymentMethod: string(s.PaymentMethod),
		Status:        string(s.Status),
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ToSaleListResponse converte uma lista de vendas do domínio para DTOs
func ToSaleListResponse(sales []sale.Sale) []SaleResponse {
	data := make([]SaleResponse, len(sales))
	for i := range sales {
		data[i] = ToSaleResponse(&sales[i])
	}
	return data
}
