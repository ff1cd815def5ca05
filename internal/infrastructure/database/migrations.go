package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations aplica as migrações pendentes do diretório informado
func RunMigrations(migrationsPath string) error {
	if migrationsPath == "" {
		migrationsPath = "migrations"
	}
	sourceURL := fmt.Sprintf("file://%s", migrationsPath)

	m, err := migrate.New(sourceURL, ConnectionURL())
	if err != nil {
		return fmt.Errorf("erro ao criar migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}
	return nil
}

// MigrationVersion retorna a versão de migração corrente do banco
func MigrationVersion(migrationsPath string) (uint, bool, error) {
	if migrationsPath == "" {
		migrationsPath = "migrations"
	}
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), ConnectionURL())
	if err != nil {
		return 0, false, fmt.Errorf("erro ao criar migrate: %w", err)
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}
