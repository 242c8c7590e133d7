package router

import (
	"database/sql"

	"stockqr_backend/internal/handlers"
	"stockqr_backend/internal/repositories"
	"stockqr_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Config carries the deployment-specific handles the workflows need: the
// database pool, the QR image directory, and the externally reachable base URL
// embedded in QR payloads.
type Config struct {
	DB      *sql.DB
	QRDir   string
	BaseURL string
}

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, cfg Config) {
	// Initialize Repositories
	productRepo := repositories.NewProductRepository(cfg.DB)
	transactionRepo := repositories.NewTransactionRepository(cfg.DB)
	siteRepo := repositories.NewSiteRepository(cfg.DB)
	authRepo := repositories.NewAuthRepository(cfg.DB)

	// Initialize Services
	qrGenerator := services.NewFileQRGenerator(cfg.QRDir)
	productService := services.NewProductService(productRepo, qrGenerator, cfg.DB, cfg.BaseURL)
	stockService := services.NewStockService(productRepo, transactionRepo, siteRepo, cfg.DB)
	siteService := services.NewSiteService(siteRepo, cfg.DB)
	authService := services.NewAuthService(authRepo, cfg.DB)

	// Initialize Handlers
	pageHandler := handlers.NewPageHandler()
	productHandler := handlers.NewProductHandler(productService)
	stockHandler := handlers.NewStockHandler(stockService)
	qrHandler := handlers.NewQRHandler(qrGenerator)
	siteHandler := handlers.NewSiteHandler(siteService)
	authHandler := handlers.NewAuthHandler(authService)

	// The form surface is public: workers reach it by scanning a printed QR
	// code, so there is no login in front of it.
	SetupPageRoutes(engine, pageHandler)
	SetupProductFormRoutes(engine, productHandler)
	SetupStockFormRoutes(engine, stockHandler)
	SetupQRDownloadRoutes(engine, qrHandler)

	// The JSON admin API under /api/v1 is authenticated.
	apiV1 := engine.Group("/api/v1")
	SetupAuthRoutes(apiV1, authHandler)
	SetupAdminRoutes(apiV1, productHandler, stockHandler, siteHandler)
}
