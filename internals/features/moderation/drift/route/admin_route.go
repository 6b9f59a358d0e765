// file: internals/features/moderation/drift/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"childcare_backend/internals/features/moderation/drift/controller"
	"childcare_backend/internals/features/moderation/drift/service"
)

func NoticeAdminRoutes(admin fiber.Router, tr *service.Tracker) {
	ctl := controller.NewNoticeController(tr)

	grp := admin.Group("/moderation/notices")
	grp.Get("/", ctl.List)
	grp.Post("/:subject/ack", ctl.Acknowledge)
}
