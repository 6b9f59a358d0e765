// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Locals keys; middleware may override the association default per request.
const (
	LocAppTimezone = "app_timezone" // string, e.g. "Asia/Jakarta"
	LocAppLoc      = "app_loc"      // *time.Location
)

var defaultLoc atomic.Pointer[time.Location]

// SetDefaultLocation is called once from main after configs.LoadEnv.
func SetDefaultLocation(loc *time.Location) {
	if loc != nil {
		defaultLoc.Store(loc)
	}
}

// LoadDefaultLocation resolves an IANA name, falling back to UTC.
func LoadDefaultLocation(name string) *time.Location {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func DefaultLocation() *time.Location {
	if loc := defaultLoc.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

// GetLocation picks the request location:
// 1) c.Locals("app_loc")
// 2) c.Locals("app_timezone") string → LoadLocation (cached back into locals)
// 3) the configured default
func GetLocation(c *fiber.Ctx) *time.Location {
	if c == nil {
		return DefaultLocation()
	}
	if v := c.Locals(LocAppLoc); v != nil {
		if loc, ok := v.(*time.Location); ok && loc != nil {
			return loc
		}
	}
	if v := c.Locals(LocAppTimezone); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			if loc, err := time.LoadLocation(strings.TrimSpace(s)); err == nil {
				c.Locals(LocAppLoc, loc)
				return loc
			}
		}
	}
	return DefaultLocation()
}

// NowIn returns the wall clock in the request location.
func NowIn(c *fiber.Ctx) time.Time {
	return time.Now().In(GetLocation(c))
}

// Today returns local midnight of the current day for the request.
func Today(c *fiber.Ctx) time.Time {
	now := NowIn(c)
	return DateIn(now, now.Location())
}

// QueryDate reads ?key=YYYY-MM-DD. Missing → fallback, malformed → error.
func QueryDate(c *fiber.Ctx, key string, fallback time.Time) (time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	return ParseDate(raw, GetLocation(c))
}

// QueryDatePtr is QueryDate for optional range bounds.
func QueryDatePtr(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	t, err := ParseDate(raw, GetLocation(c))
	if err != nil {
		return nil, err
	}
	return &t, nil
}
