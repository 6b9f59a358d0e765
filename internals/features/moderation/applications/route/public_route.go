// file: internals/features/moderation/applications/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"childcare_backend/internals/features/moderation/applications/controller"
	"childcare_backend/internals/features/moderation/applications/service"
)

func ApplicationPublicRoutes(public fiber.Router, svc *service.ApplicationService) {
	ctl := controller.NewApplicationController(svc, nil, nil)
	public.Post("/applications", ctl.Submit)
}
