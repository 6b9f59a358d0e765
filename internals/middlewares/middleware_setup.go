// file: internals/middlewares/middleware_setup.go
package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"childcare_backend/internals/configs"
	"childcare_backend/internals/helpers/dbtime"
	"childcare_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the global chain, outermost first.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(5*time.Second, dbtime.DefaultLocation()))
	app.Use(logger.LoggerMiddleware(configs.Timezone))
	app.Use(CorsMiddleware(configs.CorsAllowOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(etag.New())
	app.Use(GlobalRateLimiter())
}
