package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"barbershop-app-server/internal/clients"
	"barbershop-app-server/internal/config"
	"barbershop-app-server/internal/models"
	"barbershop-app-server/internal/routes"
	"barbershop-app-server/internal/seed"
	"barbershop-app-server/internal/store"

	"gorm.io/gorm"
)

func main() {
	// Load environment variables; a missing .env file is fine
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	deps := routes.Deps{Cfg: cfg}

	if cfg.DemoMode {
		// In-memory store seeded with demo fixtures; no MySQL needed
		mem, directory := seed.Memory()
		deps.Appointments = mem
		deps.Staff = mem
		deps.Directory = directory
		deps.DemoUserID = seed.Staff()[0].ID
		log.Println("Running in demo mode with seeded in-memory data")
	} else {
		// Initialize database connection
		db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
		if err != nil {
			log.Fatalf("Error connecting to database: %v", err)
		}
		gormStore := store.NewGorm(db)
		deps.DB = db
		deps.Appointments = gormStore
		deps.Staff = gormStore
		deps.Directory = loadDirectory(db)
	}

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Demo-User"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, deps)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// loadDirectory rebuilds the in-memory client directory from the database.
func loadDirectory(db *gorm.DB) *clients.Directory {
	var stored []models.Client
	if err := db.Order("created_at asc").Find(&stored).Error; err != nil {
		log.Printf("Could not load client directory: %v", err)
	}
	return clients.NewDirectory(stored...)
}
