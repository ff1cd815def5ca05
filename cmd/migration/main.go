package main

import (
	"log"
	"os"

	"github.com/jeacloset/erp-vestuario/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	path := os.Getenv("MIGRATIONS_PATH")
	if path == "" {
		path = "migrations"
	}

	if err := database.RunMigrations(path); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	version, _, err := database.MigrationVersion(path)
	if err != nil {
		log.Fatalf("Erro ao verificar versão das migrações: %v", err)
	}

	log.Printf("Migrações executadas com sucesso! Versão atual: %d", version)
}
