// file: internals/features/scheduling/attendance/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"childcare_backend/internals/features/scheduling/attendance/controller"
	"childcare_backend/internals/features/scheduling/attendance/service"
)

func AttendanceUserRoutes(user fiber.Router, svc *service.AttendanceService) {
	ctl := controller.NewAttendanceController(svc)

	grp := user.Group("/attendance")
	grp.Get("/daily", ctl.Daily)
	grp.Get("/weekly", ctl.Weekly)
	grp.Get("/summary", ctl.Summary)
	grp.Get("/month", ctl.Month)
}
