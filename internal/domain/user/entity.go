package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName         = errors.New("nome não pode ser vazio")
	ErrEmptyEmail        = errors.New("email não pode ser vazio")
	ErrEmptyPassword     = errors.New("senha não pode ser vazia")
	ErrInvalidRole       = errors.New("perfil de usuário inválido")
	ErrWrongPassword     = errors.New("senha atual incorreta")
	ErrPasswordTooShort  = errors.New("a nova senha deve ter ao menos 6 caracteres")
	ErrCannotChangeOther = errors.New("usuário só pode alterar a própria senha")
)

// User representa um usuário do sistema
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	Role      Role       `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewUser cria um novo usuário com a senha protegida por hash
func NewUser(name, email, password string, role Role) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     strings.ToLower(email),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword substitui a senha do usuário por um hash bcrypt
func (u *User) SetPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	u.UpdatedAt = time.Now()
	return nil
}

// CheckPassword verifica a senha informada contra a armazenada.
// Senhas novas são hashes bcrypt; registros importados do sistema
// anterior podem ainda guardar a senha em texto puro, e nesse caso a
// comparação literal é mantida para não invalidar os acessos existentes.
func (u *User) CheckPassword(password string) bool {
	if isBcryptHash(u.Password) {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
	}
	return u.Password != "" && u.Password == password
}

// ChangePassword troca a senha exigindo a senha atual
func (u *User) ChangePassword(current, next string) error {
	if !u.CheckPassword(current) {
		return ErrWrongPassword
	}
	if len(next) < 6 {
		return ErrPasswordTooShort
	}
	return u.SetPassword(next)
}

// RegisterLogin registra o instante do último acesso
func (u *User) RegisterLogin() {
	now := time.Now()
	u.LastLogin = &now
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
