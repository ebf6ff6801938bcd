package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/emerald-motors/vehicle-trade-api/config"
	"github.com/emerald-motors/vehicle-trade-api/controllers"
	"github.com/emerald-motors/vehicle-trade-api/middleware"
	"github.com/emerald-motors/vehicle-trade-api/models"
	"github.com/emerald-motors/vehicle-trade-api/services"
	"github.com/emerald-motors/vehicle-trade-api/utils"
)

func main() {
	log.Println("Starting Vehicle Trade API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Supplier{},
		&models.Client{},
		&models.VehicleOrder{},
		&models.Payment{},
		&models.Shipment{},
		&models.ShipmentItem{},
		&models.ClientInvoice{},
		&models.Vehicle{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	if err := seedDemoUser(cfg); err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	// Initialize S3-backed document storage
	s3Service, err := services.InitS3Service()
	if err != nil {
		log.Fatalf("Failed to initialize S3 service: %v", err)
	}
	services.InitDocumentService(s3Service)

	// Register custom binding rules (VIN format)
	utils.RegisterValidators()

	router := setupRouter(cfg)

	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the Gin engine with CORS, the public endpoints and the
// authenticated API surface
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	{
		// Public endpoints
		api.GET("/health", healthCheck)
		api.GET("/database/status", databaseStatus)
		api.POST("/auth/login", controllers.Login)

		// Everything else requires a session token
		protected := api.Group("")
		protected.Use(middleware.RequireAuth(cfg))
		{
			protected.GET("/auth/me", controllers.GetMe)

			protected.GET("/companies", controllers.GetCompanies)

			protected.GET("/orders", controllers.GetOrders)
			protected.GET("/orders/search", controllers.SearchOrders)
			protected.GET("/orders/:id", controllers.GetOrder)
			protected.POST("/orders", controllers.CreateOrder)
			protected.PUT("/orders/:id", controllers.UpdateOrder)
			protected.DELETE("/orders/:id", controllers.DeleteOrder)

			protected.GET("/shipments", controllers.GetShipments)
			protected.GET("/shipments/order/:orderId", controllers.GetShipmentsByOrder)
			protected.GET("/shipments/:id", controllers.GetShipment)
			protected.GET("/shipments/:id/items", controllers.GetShipmentItems)
			protected.POST("/shipments", controllers.CreateShipment)
			protected.PUT("/shipments/:id", controllers.UpdateShipment)
			protected.DELETE("/shipments/:id", controllers.DeleteShipment)

			protected.GET("/payments", controllers.GetPayments)
			protected.GET("/payments/order/:orderId", controllers.GetPaymentsByOrder)
			protected.GET("/payments/:id", controllers.GetPayment)
			protected.POST("/payments", controllers.CreatePayment)
			protected.PUT("/payments/:id", controllers.UpdatePayment)
			protected.DELETE("/payments/:id", controllers.DeletePayment)

			protected.GET("/clients", controllers.GetClients)
			protected.GET("/clients/:id", controllers.GetClient)
			protected.POST("/clients", controllers.CreateClient)
			protected.PUT("/clients/:id", controllers.UpdateClient)
			protected.DELETE("/clients/:id", controllers.DeleteClient)

			protected.GET("/suppliers", controllers.GetSuppliers)
			protected.GET("/suppliers/:id", controllers.GetSupplier)
			protected.POST("/suppliers", controllers.CreateSupplier)
			protected.PUT("/suppliers/:id", controllers.UpdateSupplier)
			protected.DELETE("/suppliers/:id", controllers.DeleteSupplier)

			protected.GET("/client-invoices", controllers.GetClientInvoices)
			protected.GET("/client-invoices/:id", controllers.GetClientInvoice)
			protected.POST("/client-invoices", controllers.CreateClientInvoice)
			protected.PUT("/client-invoices/:id", controllers.UpdateClientInvoice)
			protected.DELETE("/client-invoices/:id", controllers.DeleteClientInvoice)

			protected.GET("/vehicles", controllers.GetVehicles)
			protected.GET("/vehicles/:id", controllers.GetVehicle)
			protected.POST("/vehicles", controllers.CreateVehicle)
			protected.PUT("/vehicles/:id", controllers.UpdateVehicle)
			protected.DELETE("/vehicles/:id", controllers.DeleteVehicle)

			protected.POST("/documents", controllers.UploadDocument)
			protected.GET("/documents/url/*key", controllers.GetDocumentURL)
			protected.DELETE("/documents/*key", controllers.DeleteDocument)

			protected.GET("/reports/orders.xlsx", controllers.ExportOrdersReport)
		}
	}

	return router
}

// seedDemoUser makes sure the configured demo account exists so a fresh
// deployment can be logged into immediately
func seedDemoUser(cfg *config.Config) error {
	db := config.GetDB()

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", cfg.DemoUserEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DemoUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Email:        cfg.DemoUserEmail,
		PasswordHash: string(hash),
		FirstName:    "Demo",
		LastName:     "User",
		Role:         "staff",
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	log.Printf("Seeded demo user %s", cfg.DemoUserEmail)
	return nil
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Vehicle Trade API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

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

	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
