package router

import (
	"stockqr_backend/internal/handlers"
	"stockqr_backend/internal/middleware"
	"stockqr_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupPageRoutes sets up the landing and settings pages.
func SetupPageRoutes(engine *gin.Engine, pageHandler *handlers.PageHandler) {
	engine.GET("/", pageHandler.Landing)
	engine.GET("/settings", pageHandler.Settings)
}

// SetupProductFormRoutes sets up the product registration form endpoint.
func SetupProductFormRoutes(engine *gin.Engine, productHandler *handlers.ProductHandler) {
	engine.POST("/add-product", productHandler.AddProduct)
}

// SetupStockFormRoutes sets up the QR-scan transaction forms and the stock
// update submission.
func SetupStockFormRoutes(engine *gin.Engine, stockHandler *handlers.StockHandler) {
	engine.GET("/stock-entry/:productId", stockHandler.StockEntryForm)
	engine.GET("/stock-exit/:productId", stockHandler.StockExitForm)
	engine.POST("/update-stock", stockHandler.UpdateStock)
}

// SetupQRDownloadRoutes sets up the QR PNG download endpoints.
func SetupQRDownloadRoutes(engine *gin.Engine, qrHandler *handlers.QRHandler) {
	engine.GET("/download-entry-qr/:productId", qrHandler.DownloadEntryQR)
	engine.GET("/download-exit-qr/:productId", qrHandler.DownloadExitQR)
}

// SetupAuthRoutes sets up the authentication routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.RegisterUser)
		authRoutes.POST("/login", authHandler.LoginUser)
		authRoutes.POST("/refresh-token", authHandler.RefreshToken)

		authRequiredRoutes := authRoutes.Group("")
		authRequiredRoutes.Use(middleware.AuthMiddleware())
		{
			authRequiredRoutes.GET("/me", authHandler.GetCurrentUser)
		}
	}
}

// SetupAdminRoutes sets up the authenticated reporting and reference-data API.
func SetupAdminRoutes(apiGroup *gin.RouterGroup, productHandler *handlers.ProductHandler, stockHandler *handlers.StockHandler, siteHandler *handlers.SiteHandler) {
	adminRoutes := apiGroup.Group("")
	adminRoutes.Use(middleware.AuthMiddleware())
	adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleOperator))
	{
		adminRoutes.GET("/products", productHandler.GetProducts)
		adminRoutes.GET("/products/:id", productHandler.GetProductByID)
		adminRoutes.GET("/transactions", stockHandler.GetTransactions)
		adminRoutes.GET("/sites", siteHandler.GetSites)
	}

	// Site creation is restricted to admins.
	siteAdminRoutes := apiGroup.Group("")
	siteAdminRoutes.Use(middleware.AuthMiddleware())
	siteAdminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		siteAdminRoutes.POST("/sites", siteHandler.CreateSite)
	}
}
