// Package server assembles the fiber applications for the web front and the
// analyzer service.
package server

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"alfredoptarigan/ai-tailor/internal/handlers"
	"alfredoptarigan/ai-tailor/internal/models"
)

const bodyLimit = 1 << 20

// NewApp returns a fiber app with the shared middleware stack. views may be
// nil for JSON-only apps.
func NewApp(appName string, views fiber.Views) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    bodyLimit,
		Views:        views,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${respHeader:X-Request-ID}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Get("/health", handlers.HandleHealth)

	return app
}

// MountAnalyzer registers the analyzer API on router. allowOrigins is a
// comma separated CORS origin list; empty skips CORS.
func MountAnalyzer(router fiber.Router, h *handlers.AnalyzeHandler, allowOrigins string) {
	if allowOrigins != "" {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     allowOrigins,
			AllowMethods:     "GET,POST,OPTIONS",
			AllowHeaders:     "Origin, Content-Type, Accept, X-Request-ID",
			AllowCredentials: true,
		}))
	}

	router.Post("/analyze", h.HandleAnalyze)
}

// MountForm registers the HTML form routes on app.
func MountForm(app *fiber.App, h *handlers.FormHandler) {
	app.Get("/", h.HandleIndex)
	app.Post("/", h.HandleSubmit)
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}
