package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"dimec-inventory/internal/config"
	"dimec-inventory/internal/pkg/response"
)

// RequestIDHeader carries the per-request correlation id. Clients set
// it on every call; the server fills it in when absent.
const RequestIDHeader = "X-Request-ID"

// Setup configures all middlewares for the application
func Setup(app *fiber.App, cfg *config.Config) {
	// Recover middleware - catches panics
	app.Use(recover.New())

	// Request id - reuse the caller's when present
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals("requestID", id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	})

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${method} | ${path} | ${locals:requestID}\n",
	}))

	// CORS middleware - the browser client is served from another origin
	if cfg.IsDev() {
		app.Use(cors.New(cors.Config{
			AllowOrigins: "*",
			AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders: "Origin,Content-Type,Accept,Authorization," + RequestIDHeader,
		}))
	} else {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Client.APIBaseURL,
			AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders: "Origin,Content-Type,Accept,Authorization," + RequestIDHeader,
		}))
	}
}

// CustomErrorHandler converts unhandled fiber errors to the wire
// contract: {"message": ...}.
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return response.Message(c, code, err.Error())
}
