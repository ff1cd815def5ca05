package clothing

import (
	"context"
)

// Repository define a interface para operações de repositório de peças
type Repository interface {
	// Create cria uma nova peça
	Create(ctx context.Context, item *Item) error

	// FindByID busca uma peça pelo ID
	FindByID(ctx context.Context, id string) (*Item, error)

	// FindByCode busca uma peça pelo código
	FindByCode(ctx context.Context, code string) (*Item, error)

	// List retorna todas as peças cadastradas
	List(ctx context.Context) ([]Item, error)

	// FindBySupplier lista as peças de um fornecedor
	FindBySupplier(ctx context.Context, supplier string) ([]Item, error)

	// Update atualiza uma peça existente
	Update(ctx context.Context, item *Item) error

	// UpdateStatus atualiza o status de uma peça
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Delete remove uma peça
	Delete(ctx context.Context, id string) error
}
