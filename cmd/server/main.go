package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"stockqr_backend/internal/database"
	"stockqr_backend/internal/router"
	"stockqr_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize Logger
	utils.InitLogger()

	// Load database configuration from environment variables
	dbHost := utils.Getenv("DB_HOST", "localhost")
	dbPort := utils.Getenv("DB_PORT", "5432")
	dbUser := utils.Getenv("DB_USER", "stockqr_user")
	dbPassword := utils.Getenv("DB_PASSWORD", "stockqr_password")
	dbName := utils.Getenv("DB_NAME", "stockqr_db")
	dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")
	dbSchemaPath := utils.Getenv("DB_SCHEMA_PATH", "db_schema.sql")

	utils.SetJWTSecret(os.Getenv("JWT_SECRET"))

	// Initialize Database
	database.InitDB(dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode, dbSchemaPath)
	utils.LogInfo("Database initialized", map[string]interface{}{"configured_from_env": true})

	// The flat directory holding generated QR PNG files, created at startup if absent.
	qrDir := utils.Getenv("QR_DIR", "qrcodes")
	if err := os.MkdirAll(qrDir, 0o755); err != nil {
		log.Fatalf("Failed to create QR code directory %s: %v", qrDir, err)
	}

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Server-rendered pages (landing, settings, transaction form, confirmation)
	engine.LoadHTMLGlob(utils.Getenv("TEMPLATES_GLOB", "templates/*.html"))

	// Server port configuration
	port := utils.Getenv("PORT", "3000")

	// Setup all application routes
	router.Setup(engine, router.Config{
		DB:      database.GetDB(),
		QRDir:   qrDir,
		BaseURL: utils.Getenv("BASE_URL", "http://localhost:"+port),
	})

	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
