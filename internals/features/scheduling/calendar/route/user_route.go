// file: internals/features/scheduling/calendar/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	asvc "childcare_backend/internals/features/scheduling/assignments/service"
	"childcare_backend/internals/features/scheduling/calendar/controller"
)

func CalendarUserRoutes(user fiber.Router, loader *asvc.RangeLoader) {
	ctl := controller.NewCalendarController(loader)

	grp := user.Group("/calendar")
	grp.Get("/grid", ctl.Grid)   // ?date=YYYY-MM-DD
	grp.Get("/month", ctl.Month) // grid + assignments
}
