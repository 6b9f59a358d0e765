// file: internals/features/scheduling/assignments/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"childcare_backend/internals/features/scheduling/assignments/controller"
	"childcare_backend/internals/features/scheduling/assignments/service"
)

// AssignmentUserRoutes: read-only ledger access for signed-in staff and parents.
func AssignmentUserRoutes(user fiber.Router, ledger *service.LedgerService) {
	ctl := controller.NewAssignmentController(ledger, nil)

	grp := user.Group("/assignments")
	grp.Get("/", ctl.List)      // ?from=YYYY-MM-DD&to=YYYY-MM-DD&child_id&nanny_id
	grp.Get("/:id", ctl.GetByID)
}
