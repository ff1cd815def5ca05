package dto

import (
	"time"

	"github.com/jeacloset/erp-vestuario/internal/domain/cashflow"
)

// MovementRequest representa os dados de um movimento de caixa
type MovementRequest struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description" binding:"required"`
	Origin      string    `json:"origin" binding:"required"`
	SubOrigin   string    `json:"sub_origin"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
}

// MovementResponse representa a resposta com dados de um movimento
type MovementResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Origin      string    `json:"origin"`
	SubOrigin   string    `json:"sub_origin,omitempty"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToMovementResponse converte um movimento do domínio para DTO de resposta
func ToMovementResponse(m *cashflow.Movement) MovementResponse {
	return MovementResponse{
		ID:          m.ID,
		Date:        m.Date,
		Description: m.Description,
		Origin:      string(m.Origin),
		SubOrigin:   string(m.SubOrigin),
		Amount:      m.Amount,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToMovementListResponse converte uma lista de movimentos do domínio para DTOs
func ToMovementListResponse(movements []cashflow.Movement) []MovementResponse {
	data := make([]MovementResponse, len(movements))
	for i := range movements {
		data[i] = ToMovementResponse(&movements[i])
	}
	return data
}
