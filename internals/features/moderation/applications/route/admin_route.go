// file: internals/features/moderation/applications/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"childcare_backend/internals/features/moderation/applications/controller"
	"childcare_backend/internals/features/moderation/applications/service"
)

func ApplicationAdminRoutes(admin fiber.Router, svc *service.ApplicationService, drift controller.Acknowledger) {
	ctl := controller.NewApplicationController(svc, drift, nil)

	grp := admin.Group("/applications")
	grp.Get("/", ctl.List)
	grp.Patch("/:id/decision", ctl.Decide)
}
