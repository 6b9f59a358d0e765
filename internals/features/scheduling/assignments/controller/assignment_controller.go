// file: internals/features/scheduling/assignments/controller/assignment_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"childcare_backend/internals/features/scheduling/assignments/dto"
	"childcare_backend/internals/features/scheduling/assignments/model"
	"childcare_backend/internals/features/scheduling/assignments/repository"
	"childcare_backend/internals/features/scheduling/assignments/service"
	helper "childcare_backend/internals/helpers"
	"childcare_backend/internals/helpers/dbtime"
)

type AssignmentController struct {
	Ledger   *service.LedgerService
	Validate *validator.Validate
}

func NewAssignmentController(ledger *service.LedgerService, v *validator.Validate) *AssignmentController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &AssignmentController{Ledger: ledger, Validate: v}
}

// WriteLedgerError maps ledger error kinds onto the JSON envelope.
func WriteLedgerError(c *fiber.Ctx, err error) error {
	var (
		verr     *model.ValidationError
		conflict *model.ConflictError
		notFound *model.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		return helper.JsonValidationError(c, verr.Fields)
	case errors.As(err, &conflict):
		return helper.JsonErrorData(c, fiber.StatusConflict, conflict.Error(), dto.FromConflict(conflict))
	case errors.As(err, &notFound):
		return helper.JsonError(c, fiber.StatusNotFound, notFound.Error())
	case errors.Is(err, service.ErrSuperseded):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	default:
		log.Printf("[Assignment] unexpected error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process assignment")
	}
}

/* =========================
   GET /assignments?from&to&child_id&nanny_id
   ========================= */

func (ctl *AssignmentController) List(c *fiber.Ctx) error {
	from, err := dbtime.QueryDatePtr(c, "from")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "from: "+err.Error())
	}
	to, err := dbtime.QueryDatePtr(c, "to")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "to: "+err.Error())
	}
	childID, err := helper.ParseUUIDQuery(c, "child_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	nannyID, err := helper.ParseUUIDQuery(c, "nanny_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rows, err := ctl.Ledger.List(c.UserContext(), from, to, repository.Filter{ChildID: childID, NannyID: nannyID})
	if err != nil {
		return WriteLedgerError(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), nil)
}

func (ctl *AssignmentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	m, err := ctl.Ledger.Get(c.UserContext(), id)
	if err != nil {
		return WriteLedgerError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

/* =========================
   POST /assignments
   ========================= */

func (ctl *AssignmentController) Create(c *fiber.Ctx) error {
	m, ok, err := ctl.parseBody(c)
	if !ok {
		return err
	}
	m.AssignmentCreatedBy = helper.UserIDFromLocals(c)

	saved, err := ctl.Ledger.CreateOrUpdate(c.UserContext(), m, nil)
	if err != nil {
		return WriteLedgerError(c, err)
	}
	return helper.JsonCreated(c, "Assignment created", dto.FromModel(saved))
}

/* =========================
   PUT /assignments/:id
   ========================= */

func (ctl *AssignmentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	m, ok, err := ctl.parseBody(c)
	if !ok {
		return err
	}

	saved, err := ctl.Ledger.CreateOrUpdate(c.UserContext(), m, &id)
	if err != nil {
		return WriteLedgerError(c, err)
	}
	return helper.JsonUpdated(c, "Assignment updated", dto.FromModel(saved))
}

/* =========================
   DELETE /assignments/:id
   ========================= */

func (ctl *AssignmentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Ledger.Delete(c.UserContext(), id); err != nil {
		return WriteLedgerError(c, err)
	}
	return helper.JsonDeleted(c, "Assignment deleted", fiber.Map{"assignment_id": id})
}

// parseBody answers the request itself when ok is false; err is then the write result.
func (ctl *AssignmentController) parseBody(c *fiber.Ctx) (model.AssignmentModel, bool, error) {
	var req dto.UpsertAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Assignment] BodyParser error: %v", err)
		return model.AssignmentModel{}, false, helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return model.AssignmentModel{}, false, helper.ValidationError(c, err)
	}
	m, err := req.ToModel(dbtime.GetLocation(c))
	if err != nil {
		return model.AssignmentModel{}, false, WriteLedgerError(c, err)
	}
	return m, true, nil
}
