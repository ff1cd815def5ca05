package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jeacloset/erp-vestuario/docs"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/controller"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/route"
	"github.com/jeacloset/erp-vestuario/internal/adapter/repository"
	"github.com/jeacloset/erp-vestuario/internal/domain/stock"
	"github.com/jeacloset/erp-vestuario/internal/infrastructure/database"
	"github.com/jeacloset/erp-vestuario/pkg/auth"
	"github.com/jeacloset/erp-vestuario/pkg/backup"
	"github.com/jeacloset/erp-vestuario/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo com todas as dependências
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresPool()
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// Vendas pendentes contam como vendidas na reconciliação de estoque,
	// a menos que SOLD_COUNT_ONLY_PAID esteja habilitado
	includePending := os.Getenv("SOLD_COUNT_ONLY_PAID") != "true"

	// Repositórios
	userRepo := repository.NewUserRepository(db)
	clothingRepo := repository.NewClothingRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	cashflowRepo := repository.NewCashflowRepository(db)

	lotCache := stock.NewLotCache()
	backupService := backup.NewService(userRepo, clothingRepo, saleRepo, cashflowRepo, noteRepo, includePending)

	// Controllers
	authController := controller.NewAuthController(userRepo, jwtService, log)
	userController := controller.NewUserController(userRepo, log)
	clothingController := controller.NewClothingController(clothingRepo, saleRepo, lotCache, includePending, log)
	saleController := controller.NewSaleController(saleRepo, clothingRepo, lotCache, log)
	investmentController := controller.NewInvestmentController(clothingRepo, saleRepo, lotCache, includePending, log)
	reportController := controller.NewReportController(clothingRepo, saleRepo, includePending, log)
	noteController := controller.NewNoteController(noteRepo, log)
	cashflowController := controller.NewCashflowController(cashflowRepo, log)
	backupController := controller.NewBackupController(backupService, lotCache, log)

	// Router
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLogger(log))
	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": "1.0.0"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	route.RegisterAuthRoutes(api, authController)
	route.RegisterUserRoutes(api, userController)
	route.RegisterClothingRoutes(api, clothingController)
	route.RegisterSaleRoutes(api, saleController)
	route.RegisterInvestmentRoutes(api, investmentController)
	route.RegisterReportRoutes(api, reportController)
	route.RegisterNoteRoutes(api, noteController)
	route.RegisterCashflowRoutes(api, cashflowController)
	route.RegisterBackupRoutes(api, backupController)

	return &App{
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// corsMiddleware monta a configuração de CORS a partir do ambiente
func corsMiddleware() gin.HandlerFunc {
	allowedOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("CORS_ALLOWED_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	return cors.New(config)
}
