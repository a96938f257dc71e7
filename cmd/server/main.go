package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"dimec-inventory/internal/adapters/http/middleware"
	"dimec-inventory/internal/adapters/http/routes"
	"dimec-inventory/internal/adapters/persistence/models"
	"dimec-inventory/internal/adapters/persistence/repositories"
	"dimec-inventory/internal/config"
	"dimec-inventory/internal/core/services"
	"dimec-inventory/internal/obs"
)

func main() {
	obs.InitLogger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}
	log.Println("database migration completed")

	// Seed default users and sample data
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("warning: seeding failed: %v", err)
	}

	// Daily low-stock summary (08:30)
	watch := services.NewLowStockWatch(repositories.NewProductRepository(db), obs.Logger)
	watch.Start()
	defer watch.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "DIMEC Inventory API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
	log.Println("server stopped gracefully")
}
