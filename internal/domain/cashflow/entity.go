package cashflow

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDescription = errors.New("descrição do movimento não pode ser vazia")
	ErrInvalidAmount    = errors.New("valor do movimento deve ser maior que zero")
	ErrInvalidOrigin    = errors.New("origem do movimento inválida")
)

// Origin indica de qual caixa o movimento sai
type Origin string

const (
	OriginCaixa     Origin = "caixa"
	OriginEmbalagem Origin = "embalagem"
)

// SubOrigin detalha a destinação do movimento de caixa
type SubOrigin string

const (
	SubOriginReinvestimento SubOrigin = "reinvestimento"
	SubOriginCaixaLoja      SubOrigin = "caixa_loja"
	SubOriginSalario        SubOrigin = "salario"
)

// Status indica se o movimento já foi efetivado
type Status string

const (
	StatusPending Status = "pendente"
	StatusPaid    Status = "pago"
)

// Movement representa uma saída do fluxo de caixa da loja
type Movement struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Origin      Origin    `json:"origin"`
	SubOrigin   SubOrigin `json:"sub_origin,omitempty"`
	Amount      float64   `json:"amount"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewMovement cria um novo movimento de saída
func NewMovement(date time.Time, description string, origin Origin, subOrigin SubOrigin, amount float64) (*Movement, error) {
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	switch origin {
	case OriginCaixa, OriginEmbalagem:
	default:
		return nil, ErrInvalidOrigin
	}
	if date.IsZero() {
		date = time.Now()
	}

	now := time.Now()
	return &Movement{
		ID:          uuid.New().String(),
		Date:        date,
		Description: description,
		Origin:      origin,
		SubOrigin:   subOrigin,
		Amount:      amount,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// MarkPaid marca o movimento como efetivado
func (m *Movement) MarkPaid() {
	m.Status = StatusPaid
	m.UpdatedAt = time.Now()
}
