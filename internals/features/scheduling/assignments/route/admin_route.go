// file: internals/features/scheduling/assignments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"childcare_backend/internals/features/scheduling/assignments/controller"
	"childcare_backend/internals/features/scheduling/assignments/service"
)

// AssignmentAdminRoutes: full CRUD for coordinators.
func AssignmentAdminRoutes(admin fiber.Router, ledger *service.LedgerService) {
	ctl := controller.NewAssignmentController(ledger, nil)

	grp := admin.Group("/assignments")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
