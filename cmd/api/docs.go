package main

// @title           JEACLOSET API
// @version         1.0
// @description     API para gestão de loja de vestuário: catálogo, vendas, estoque reconciliado, lotes de investimento, fluxo de caixa e backups

// @contact.name   JEACLOSET
// @contact.email  contato@jeacloset.com

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
