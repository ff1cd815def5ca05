package user

import (
	"context"
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// List retorna todos os usuários
	List(ctx context.Context) ([]User, error)

	// Update atualiza um usuário existente
	Update(ctx context.Context, u *User) error

	// Delete remove um usuário
	Delete(ctx context.Context, id string) error
}
