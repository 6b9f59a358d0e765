// file: internals/features/moderation/drift/controller/notice_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"childcare_backend/internals/features/moderation/drift/dto"
	"childcare_backend/internals/features/moderation/drift/service"
	helper "childcare_backend/internals/helpers"
)

type NoticeController struct {
	Tracker *service.Tracker
}

func NewNoticeController(tr *service.Tracker) *NoticeController {
	return &NoticeController{Tracker: tr}
}

// GET /moderation/notices[?active=true]
func (ctl *NoticeController) List(c *fiber.Ctx) error {
	list := ctl.Tracker.Statuses()
	if c.QueryBool("active", false) {
		kept := list[:0]
		for _, st := range list {
			if st.State.Notice != nil {
				kept = append(kept, st)
			}
		}
		list = kept
	}
	return helper.JsonList(c, "ok", dto.FromStatuses(list), nil)
}

// POST /moderation/notices/:subject/ack
func (ctl *NoticeController) Acknowledge(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Params("subject"))
	if _, err := ctl.Tracker.Acknowledge(c.UserContext(), name); err != nil {
		if errors.Is(err, service.ErrUnknownSubject) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		var transient *service.TransientObservationError
		if errors.As(err, &transient) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Pending count unavailable, try again")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to acknowledge")
	}
	st, _ := ctl.Tracker.Status(name)
	return helper.JsonOK(c, "Acknowledged", dto.FromStatus(st))
}
