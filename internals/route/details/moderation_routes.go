// file: internals/route/details/moderation_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"

	applicationRoute "childcare_backend/internals/features/moderation/applications/route"
	appService "childcare_backend/internals/features/moderation/applications/service"
	driftRoute "childcare_backend/internals/features/moderation/drift/route"
	driftService "childcare_backend/internals/features/moderation/drift/service"
	"childcare_backend/internals/middlewares"
)

type ModerationDeps struct {
	Applications *appService.ApplicationService
	Drift        *driftService.Tracker
}

// /api/public/...
func ModerationPublicRoutes(public fiber.Router, d ModerationDeps) {
	form := public.Group("", middlewares.ApplicationRateLimiter())
	applicationRoute.ApplicationPublicRoutes(form, d.Applications)
}

// /api/a/...
func ModerationAdminRoutes(admin fiber.Router, d ModerationDeps) {
	applicationRoute.ApplicationAdminRoutes(admin, d.Applications, d.Drift)
	driftRoute.NoticeAdminRoutes(admin, d.Drift)
}
