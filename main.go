package main

import (
	"log"
	"net/http"

	"github.com/cleaningmadeasy/laundry-api/config"
	"github.com/cleaningmadeasy/laundry-api/controllers"
	"github.com/cleaningmadeasy/laundry-api/middleware"
	"github.com/cleaningmadeasy/laundry-api/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Basic logging
	log.Println("Starting Laundry API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.SetConfig(cfg)

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(&models.Order{}, &models.Invoice{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	if !cfg.EmailConfigured() {
		log.Println("Email sending disabled, notifications will be logged only")
	}

	// Initialize Gin router
	router := setupRouter()

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter configures all API routes. Admin routes sit behind the JWT
// middleware; order submission and the contact form are public.
func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	cfg := config.GetConfig()

	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Database status endpoint
		v1.GET("/database/status", databaseStatus)

		// Public endpoints
		v1.POST("/admin/login", controllers.Login)
		v1.POST("/orders", controllers.SubmitOrder)
		v1.POST("/contact", controllers.SendContactMessage)

		// Admin endpoints
		admin := v1.Group("")
		admin.Use(middleware.RequireAdmin(cfg))
		{
			admin.GET("/orders", controllers.ListOrders)
			admin.GET("/orders/:id", controllers.GetOrder)
			admin.PUT("/orders/:id/status", controllers.UpdateOrderStatus)
			admin.POST("/invoices", controllers.CreateInvoice)
			admin.GET("/invoices", controllers.ListInvoices)
			admin.GET("/invoices/:id/whatsapp-link", controllers.GetInvoiceWhatsAppLink)
			admin.PUT("/invoices/:id/email", controllers.MarkInvoiceEmailSent)
			admin.PUT("/invoices/:id/whatsapp", controllers.MarkInvoiceWhatsappSent)
			admin.GET("/reports/:type", controllers.GetReport)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	email := "disabled"
	if cfg := config.GetConfig(); cfg != nil && cfg.EmailConfigured() {
		email = "enabled"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Laundry API is running",
		"email":   email,
	})
}

// databaseStatus checks database connectivity
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
	})
}
