// file: internals/route/base_routes.go
package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

func BaseRoutes(app *fiber.App, svc *Services) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Childcare scheduling service is up 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Not configured"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if svc.DB != nil {
			dbStatus = "Connected"
			sqlDB, err := svc.DB.DB()
			if err != nil || sqlDB.PingContext(c.UserContext()) != nil {
				dbStatus = "Database connection error"
				serverStatus = "DOWN"
				httpStatus = fiber.StatusServiceUnavailable
			}
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
