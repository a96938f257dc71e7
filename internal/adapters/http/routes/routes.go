package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dimec-inventory/internal/adapters/http/handlers"
	"dimec-inventory/internal/adapters/http/middleware"
	"dimec-inventory/internal/adapters/persistence/repositories"
	"dimec-inventory/internal/config"
	"dimec-inventory/internal/core/services"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	supplierRepo := repositories.NewSupplierRepository(db)
	productRepo := repositories.NewProductRepository(db)
	issuanceRepo := repositories.NewIssuanceRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	categoryService := services.NewCategoryService(categoryRepo)
	supplierService := services.NewSupplierService(supplierRepo)
	productService := services.NewProductService(productRepo, categoryRepo, supplierRepo)
	issuanceService := services.NewIssuanceService(issuanceRepo, productRepo, userRepo)
	dashboardService := services.NewDashboardService(productRepo, categoryRepo, supplierRepo, issuanceRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	productHandler := handlers.NewProductHandler(productService)
	issuanceHandler := handlers.NewIssuanceHandler(issuanceService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	api := app.Group("/api")

	// Public auth endpoints
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)

	// Everything below requires a valid bearer token
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	// Products: every role reads, staff mutates
	products := protected.Group("/products")
	products.Get("/", middleware.AnyRole(), productHandler.List)
	products.Get("/low-stock", middleware.AnyRole(), productHandler.LowStock)
	products.Get("/search", middleware.AnyRole(), productHandler.Search)
	products.Get("/:id", middleware.AnyRole(), productHandler.Get)
	products.Post("/", middleware.StaffOnly(), productHandler.Create)
	products.Put("/:id", middleware.StaffOnly(), productHandler.Update)
	products.Delete("/:id", middleware.StaffOnly(), productHandler.Delete)

	// Categories: reads open to every role (the products page joins
	// category names), mutations for staff
	categories := protected.Group("/categories")
	categories.Get("/", middleware.AnyRole(), categoryHandler.List)
	categories.Get("/:id", middleware.AnyRole(), categoryHandler.Get)
	categories.Post("/", middleware.StaffOnly(), categoryHandler.Create)
	categories.Put("/:id", middleware.StaffOnly(), categoryHandler.Update)
	categories.Delete("/:id", middleware.StaffOnly(), categoryHandler.Delete)

	// Suppliers: same split as categories
	suppliers := protected.Group("/suppliers")
	suppliers.Get("/", middleware.AnyRole(), supplierHandler.List)
	suppliers.Get("/:id", middleware.AnyRole(), supplierHandler.Get)
	suppliers.Post("/", middleware.StaffOnly(), supplierHandler.Create)
	suppliers.Put("/:id", middleware.StaffOnly(), supplierHandler.Update)
	suppliers.Delete("/:id", middleware.StaffOnly(), supplierHandler.Delete)

	// Issuances: staff only, reads included
	issuances := protected.Group("/issuances", middleware.StaffOnly())
	issuances.Get("/", issuanceHandler.List)
	issuances.Get("/date-range", issuanceHandler.ByDateRange)
	issuances.Get("/:id", issuanceHandler.Get)
	issuances.Post("/", issuanceHandler.Create)
	issuances.Delete("/:id", issuanceHandler.Delete)

	// Dashboard
	protected.Get("/dashboard/stats", middleware.AnyRole(), dashboardHandler.Stats)
}
