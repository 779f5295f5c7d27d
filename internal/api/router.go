package api

import (
	"github.com/lumumba11/carbon-tracker-dashboard/internal/api/handlers"
	"github.com/lumumba11/carbon-tracker-dashboard/internal/session"
	"github.com/lumumba11/carbon-tracker-dashboard/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	logHandler *handlers.LogHandler,
	dashboardHandler *handlers.DashboardHandler,
	chatHandler *handlers.ChatHandler,
	sessionHandler *handlers.SessionHandler,
	manager *session.Manager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + middleware.HeaderSessionID,
	}))
	app.Use(logger.New())

	// Probes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Carbon Tracking API is running!"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// Everything below operates on a session resolved (or created) from
	// the X-Session-ID header.
	v1 := app.Group("/api/v1", middleware.SessionMiddleware(manager, appLogger))

	logs := v1.Group("/logs")
	logs.Post("", logHandler.AddLog)
	logs.Get("", logHandler.ListLogs)

	v1.Get("/dashboard", dashboardHandler.Dashboard)
	v1.Get("/insights", dashboardHandler.Insights)
	v1.Get("/recommendations", dashboardHandler.Recommendations)
	v1.Get("/achievements", dashboardHandler.Achievements)
	v1.Put("/goal", dashboardHandler.SetGoal)

	chat := v1.Group("/chat")
	chat.Post("/open", chatHandler.Open)
	chat.Post("/close", chatHandler.Close)
	chat.Post("/messages", chatHandler.Submit)
	chat.Get("/messages", chatHandler.History)
	chat.Post("/quick-actions", chatHandler.QuickAction)

	v1.Delete("/session", sessionHandler.End)

	return app
}
