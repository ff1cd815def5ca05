package user

// Role representa o perfil de acesso de um usuário.
//
// O perfil viewer (visualizador) opera exclusivamente sobre o conjunto de
// demonstração: toda operação de escrita é barrada antes de chegar ao
// armazenamento e as leituras são servidas com dados estáticos.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleUser   Role = "user"
	RoleViewer Role = "viewer"
)

// Valid indica se o perfil é um dos perfis conhecidos
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleViewer:
		return true
	}
	return false
}

// IsViewer indica se o perfil é o visualizador (modo demonstração)
func (r Role) IsViewer() bool {
	return r == RoleViewer
}

// CanWrite indica se o perfil pode criar, alterar ou remover dados de
// negócio (peças, vendas, notas, fluxo de caixa)
func (r Role) CanWrite() bool {
	return r == RoleAdmin || r == RoleUser
}

// CanManageUsers indica se o perfil pode administrar outros usuários
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

// CanRestoreBackup indica se o perfil pode restaurar backups
func (r Role) CanRestoreBackup() bool {
	return r == RoleAdmin
}
