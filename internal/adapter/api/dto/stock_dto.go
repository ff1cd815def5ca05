package dto

import (
	"time"

	"github.com/jeacloset/erp-vestuario/internal/domain/stock"
)

// QuantitiesResponse representa as quantidades reconciliadas de estoque
type QuantitiesResponse struct {
	Available int `json:"available"`
	Sold      int `json:"sold"`
	Original  int `json:"original"`
}

// LotItemResponse resume uma peça dentro de um lote
type LotItemResponse struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// LotResponse representa um lote de compra agregado por fornecedor e dia
type LotResponse struct {
	ID          string            `json:"id"`
	Supplier    string            `json:"supplier"`
	Date        time.Time         `json:"date"`
	Items       []LotItemResponse `json:"items"`
	TotalPieces int               `json:"total_pieces"`
	SoldPieces  int               `json:"sold_pieces"`
	Invested    float64           `json:"invested"`
	SoldValue   float64           `json:"sold_value"`
	Profit      float64           `json:"profit"`
	Progress    float64           `json:"progress"`
	Status      string            `json:"status"`
}

// ToLotResponse converte um lote do domínio para DTO de resposta
func ToLotResponse(lot stock.Lot) LotResponse {
	items := make([]LotItemResponse, len(lot.Items))
	for i, item := range lot.Items {
		items[i] = LotItemResponse{
			ID:       item.ID,
			Code:     item.Code,
			Name:     item.Name,
			Category: string(item.Category),
		}
	}

	return LotResponse{
		ID:          lot.ID,
		Supplier:    lot.Supplier,
		Date:        lot.Date,
		Items:       items,
		TotalPieces: lot.TotalPieces,
		SoldPieces:  lot.SoldPieces,
		Invested:    lot.Invested,
		SoldValue:   lot.SoldValue,
		Profit:      lot.Profit,
		Progress:    lot.Progress,
		Status:      lot.Status,
	}
}

// ToLotListResponse converte uma lista de lotes do domínio para DTOs
func ToLotListResponse(lots []stock.Lot) []LotResponse {
	data := make([]LotResponse, len(lots))
	for i, lot := range lots {
		data[i] = ToLotResponse(lot)
	}
	return data
}

// ProductSalesResponse representa um produto no ranking de mais vendidos
type ProductSalesResponse struct {
	ClothingItemID string  `json:"clothing_item_id"`
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	Revenue        float64 `json:"revenue"`
}

// SalesReportResponse representa o relatório consolidado de vendas
type SalesReportResponse struct {
	TotalSales    int                    `json:"total_sales"`
	TotalRevenue  float64                `json:"total_revenue"`
	AverageTicket float64                `json:"average_ticket"`
	RealProfit    float64                `json:"real_profit"`
	ByStatus      map[string]int         `json:"by_status"`
	ByPayment     map[string]int         `json:"by_payment"`
	TopProducts   []ProductSalesResponse `json:"top_products"`
}

// ToSalesReportResponse converte um relatório do domínio para DTO de resposta
func ToSalesReportResponse(report stock.SalesReport) SalesReportResponse {
	top := make([]ProductSalesResponse, len(report.TopProducts))
	for i, p := range report.TopProducts {
		top[i] = ProductSalesResponse{
			ClothingItemID: p.ClothingItemID,
			Name:           p.Name,
			Quantity:       p.Quantity,
			Revenue:        p.Revenue,
		}
	}

	return SalesReportResponse{
		TotalSales:    report.TotalSales,
		TotalRevenue:  report.TotalRevenue,
		AverageTicket: report.AverageTicket,
		RealProfit:    report.RealProfit,
		ByStatus:      report.ByStatus,
		ByPayment:     report.ByPayment,
		TopProducts:   top,
	}
}
