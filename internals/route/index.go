// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"childcare_backend/internals/configs"
	"childcare_backend/internals/constants"
	"childcare_backend/internals/middlewares/auth"
	routeDetails "childcare_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, svc *Services) {
	startTime = time.Now()

	BaseRoutes(app, svc)

	// ===================== GROUPS =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	log.Println("[INFO] Setting up USER group (Auth + RoleCheck)...")
	user := app.Group("/api/u",
		auth.AuthMiddleware(configs.JWTSecret),
		auth.OnlyRoles(constants.RoleErrorMember("this portal"), constants.AllRoles...),
	)

	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		auth.AuthMiddleware(configs.JWTSecret),
		auth.OnlyRoles(constants.RoleErrorAdmin("admin"), constants.AdminRoles...),
	)

	// ===================== MOUNT ROUTES =====================
	scheduling := routeDetails.SchedulingDeps{
		Directory:   svc.Directory,
		Ledger:      svc.Ledger,
		RangeLoader: svc.RangeLoader,
		Attendance:  svc.Attendance,
	}
	moderation := routeDetails.ModerationDeps{
		Applications: svc.Applications,
		Drift:        svc.Drift,
	}

	log.Println("[INFO] Mounting Scheduling routes...")
	routeDetails.SchedulingUserRoutes(user, scheduling)
	routeDetails.SchedulingAdminRoutes(admin, scheduling)

	log.Println("[INFO] Mounting Moderation routes...")
	routeDetails.ModerationPublicRoutes(public, moderation)
	routeDetails.ModerationAdminRoutes(admin, moderation)
}
