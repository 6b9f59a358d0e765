// file: internals/features/directory/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"childcare_backend/internals/features/directory/controller"
	"childcare_backend/internals/features/directory/repository"
)

func DirectoryUserRoutes(user fiber.Router, repo repository.Directory) {
	ctl := controller.NewDirectoryController(repo)

	user.Get("/children", ctl.ListChildren)
	user.Get("/nannies", ctl.ListNannies)
}
