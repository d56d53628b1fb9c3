package delivery

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// NewApp builds the fiber app with middleware and routes.
// metricsHandler may be nil, in which case /metrics is not mounted.
func NewApp(h *Handler, allowOrigins string, metricsHandler http.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "contact-service",
		ErrorHandler: ErrorHandler,
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
	}))

	app.Get("/health", h.Health)
	if metricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(metricsHandler))
	}

	api := app.Group("/api")
	api.Post("/contact", h.SubmitContact)

	return app
}
