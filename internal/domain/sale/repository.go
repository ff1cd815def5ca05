package sale

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	// Create registra uma nova venda
	Create(ctx context.Context, s *Sale) error

	// FindByID busca uma venda pelo ID
	FindByID(ctx context.Context, id string) (*Sale, error)

	// List retorna todas as vendas registradas
	List(ctx context.Context) ([]Sale, error)

	// FindByPeriod lista as vendas criadas dentro do período informado
	FindByPeriod(ctx context.Context, start, end time.Time) ([]Sale, error)

	// FindByClothingItem lista as vendas que referenciam a peça informada
	FindByClothingItem(ctx context.Context, clothingItemID string) ([]Sale, error)

	// Update atualiza uma venda existente
	Update(ctx context.Context, s *Sale) error

	// UpdateStatus atualiza o status de uma venda
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Delete remove uma venda
	Delete(ctx context.Context, id string) error
}
