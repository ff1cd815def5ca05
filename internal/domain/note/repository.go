package note

import (
	"context"
)

// Repository define a interface para operações de repositório de notas
type Repository interface {
	// Create cria uma nova nota
	Create(ctx context.Context, n *Note) error

	// FindByID busca uma nota pelo ID
	FindByID(ctx context.Context, id string) (*Note, error)

	// List retorna todas as notas
	List(ctx context.Context) ([]Note, error)

	// Update atualiza uma nota existente
	Update(ctx context.Context, n *Note) error

	// Delete remove uma nota
	Delete(ctx context.Context, id string) error
}
