package cashflow

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório do fluxo de caixa
type Repository interface {
	// Create registra um novo movimento
	Create(ctx context.Context, m *Movement) error

	// FindByID busca um movimento pelo ID
	FindByID(ctx context.Context, id string) (*Movement, error)

	// List retorna todos os movimentos
	List(ctx context.Context) ([]Movement, error)

	// FindByPeriod lista os movimentos dentro do período informado
	FindByPeriod(ctx context.Context, start, end time.Time) ([]Movement, error)

	// Update atualiza um movimento existente
	Update(ctx context.Context, m *Movement) error

	// Delete remove um movimento
	Delete(ctx context.Context, id string) error
}
