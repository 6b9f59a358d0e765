// file: internals/route/details/scheduling_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"

	"childcare_backend/internals/constants"
	dirRepo "childcare_backend/internals/features/directory/repository"
	directoryRoute "childcare_backend/internals/features/directory/route"
	assignmentRoute "childcare_backend/internals/features/scheduling/assignments/route"
	ledgerService "childcare_backend/internals/features/scheduling/assignments/service"
	attendanceRoute "childcare_backend/internals/features/scheduling/attendance/route"
	attendanceService "childcare_backend/internals/features/scheduling/attendance/service"
	calendarRoute "childcare_backend/internals/features/scheduling/calendar/route"
	"childcare_backend/internals/middlewares/auth"
)

type SchedulingDeps struct {
	Directory   dirRepo.Directory
	Ledger      *ledgerService.LedgerService
	RangeLoader *ledgerService.RangeLoader
	Attendance  *attendanceService.AttendanceService
}

// /api/u/...
// Attendance figures and child records are staff-only; parents see the calendar,
// bookings and the nanny list.
func SchedulingUserRoutes(user fiber.Router, d SchedulingDeps) {
	user.Use("/attendance", auth.OnlyRoles(constants.RoleErrorStaff("attendance"), constants.StaffRoles...))
	user.Use("/children", auth.OnlyRoles(constants.RoleErrorStaff("child records"), constants.StaffRoles...))

	directoryRoute.DirectoryUserRoutes(user, d.Directory)
	calendarRoute.CalendarUserRoutes(user, d.RangeLoader)
	assignmentRoute.AssignmentUserRoutes(user, d.Ledger)
	attendanceRoute.AttendanceUserRoutes(user, d.Attendance)
}

// /api/a/...
func SchedulingAdminRoutes(admin fiber.Router, d SchedulingDeps) {
	assignmentRoute.AssignmentAdminRoutes(admin, d.Ledger)
}
