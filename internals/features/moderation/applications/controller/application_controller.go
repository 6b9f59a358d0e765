// file: internals/features/moderation/applications/controller/application_controller.go
package controller

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"childcare_backend/internals/features/moderation/applications/dto"
	"childcare_backend/internals/features/moderation/applications/model"
	"childcare_backend/internals/features/moderation/applications/repository"
	"childcare_backend/internals/features/moderation/applications/service"
	helper "childcare_backend/internals/helpers"
)

// Acknowledger resets a drift subject's baseline once an admin has looked at the queue.
type Acknowledger interface {
	AcknowledgeSubject(ctx context.Context, subject string) error
}

type ApplicationController struct {
	Service  *service.ApplicationService
	Drift    Acknowledger
	Validate *validator.Validate
}

func NewApplicationController(svc *service.ApplicationService, drift Acknowledger, v *validator.Validate) *ApplicationController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &ApplicationController{Service: svc, Drift: drift, Validate: v}
}

/* =========================
   POST /public/applications
   ========================= */

func (ctl *ApplicationController) Submit(c *fiber.Ctx) error {
	var req dto.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.Submit(c.UserContext(), req.ToModel())
	if err != nil {
		log.Printf("[Application] submit: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit application")
	}
	return helper.JsonCreated(c, "Application received", dto.SubmittedResponse{
		ApplicationID:     m.ApplicationID,
		ApplicationStatus: m.ApplicationStatus,
	})
}

/* =========================
   GET /a/applications?status=pending&page=&per_page=
   ========================= */

func (ctl *ApplicationController) List(c *fiber.Ctx) error {
	status := strings.ToLower(strings.TrimSpace(c.Query("status", model.StatusPending)))
	var filter *string
	if status != "all" {
		if !model.IsValidStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "status must be pending, approved, rejected or all")
		}
		filter = &status
	}

	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctl.Service.List(c.UserContext(), repository.ListQuery{Status: filter, Offset: p.Offset, Limit: p.Limit})
	if err != nil {
		log.Printf("[Application] list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}

	// looking at the pending queue counts as having seen the new arrivals
	if ctl.Drift != nil && (filter == nil || *filter == model.StatusPending) {
		if err := ctl.Drift.AcknowledgeSubject(c.UserContext(), service.DriftSubject); err != nil {
			log.Printf("[Application] drift ack: %v", err)
		}
	}

	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", dto.FromModels(rows), &pg)
}

/* =========================
   PATCH /a/applications/:id/decision
   ========================= */

func (ctl *ApplicationController) Decide(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.DecideApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctl.Service.Decide(c.UserContext(), id, req.Status, req.Note, helper.UserIDFromLocals(c))
	switch {
	case errors.Is(err, model.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrAlreadyDecided):
		return helper.JsonErrorData(c, fiber.StatusConflict, err.Error(), dto.FromModel(m))
	case err != nil:
		log.Printf("[Application] decide %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record decision")
	}
	return helper.JsonUpdated(c, "Decision recorded", dto.FromModel(m))
}
