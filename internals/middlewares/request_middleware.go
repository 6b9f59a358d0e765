// file: internals/middlewares/request_middleware.go
package middlewares

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"childcare_backend/internals/helpers/dbtime"
)

const RequestIDHeader = "X-Request-ID"

// RequestContext tags the request with an id, bounds it with timeout
// and pins the configured time zone for date handling.
func RequestContext(timeout time.Duration, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(RequestIDHeader)
		if rid == "" {
			rid = utils.UUIDv4()
		}
		c.Set(RequestIDHeader, rid)
		c.Locals("request_id", rid)

		if c.Locals(dbtime.LocAppLoc) == nil && c.Locals(dbtime.LocAppTimezone) == nil && loc != nil {
			c.Locals(dbtime.LocAppLoc, loc)
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		start := time.Now()
		err := c.Next()
		if d := time.Since(start); d > time.Second {
			log.Printf("[REQ] slow %s %s rid=%s took=%s", c.Method(), c.OriginalURL(), rid, d)
		}
		return err
	}
}
