// file: internals/features/directory/controller/directory_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"childcare_backend/internals/features/directory/dto"
	"childcare_backend/internals/features/directory/model"
	"childcare_backend/internals/features/directory/repository"
	helper "childcare_backend/internals/helpers"
)

type DirectoryController struct {
	Repo repository.Directory
}

func NewDirectoryController(repo repository.Directory) *DirectoryController {
	return &DirectoryController{Repo: repo}
}

// GET /children?include_inactive=true
func (ctl *DirectoryController) ListChildren(c *fiber.Ctx) error {
	all := c.QueryBool("include_inactive", false)
	rows, err := ctl.Repo.ListChildren(c.UserContext(), all)
	if err != nil {
		log.Printf("[Directory] list children: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch children")
	}
	return helper.JsonList(c, "ok", dto.FromChildren(rows), nil)
}

// GET /nannies?availability=available|unavailable|on_leave&q=
func (ctl *DirectoryController) ListNannies(c *fiber.Ctx) error {
	var f repository.NannyFilter
	if v := strings.ToLower(strings.TrimSpace(c.Query("availability"))); v != "" {
		if !model.IsValidAvailability(v) {
			return helper.JsonError(c, fiber.StatusBadRequest, "availability must be available, unavailable or on_leave")
		}
		f.Availability = &v
	}
	f.Search = c.Query("q")

	rows, err := ctl.Repo.ListNannies(c.UserContext(), f)
	if err != nil {
		log.Printf("[Directory] list nannies: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch nannies")
	}
	return helper.JsonList(c, "ok", dto.FromNannies(rows), nil)
}
