// file: internals/features/scheduling/calendar/controller/calendar_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	actl "childcare_backend/internals/features/scheduling/assignments/controller"
	asvc "childcare_backend/internals/features/scheduling/assignments/service"
	attendance "childcare_backend/internals/features/scheduling/attendance/service"
	"childcare_backend/internals/features/scheduling/calendar/dto"
	"childcare_backend/internals/features/scheduling/calendar/service"
	helper "childcare_backend/internals/helpers"
	"childcare_backend/internals/helpers/dbtime"
)

type CalendarController struct {
	Loader *asvc.RangeLoader
}

func NewCalendarController(loader *asvc.RangeLoader) *CalendarController {
	return &CalendarController{Loader: loader}
}

// GET /calendar/grid?date=YYYY-MM-DD
func (ctl *CalendarController) Grid(c *fiber.Ctx) error {
	today := dbtime.Today(c)
	ref, err := dbtime.QueryDate(c, "date", today)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date: "+err.Error())
	}
	weeks := service.BuildMonthGrid(ref, today)
	return helper.JsonOK(c, "ok", dto.FromGrid(ref, weeks, nil))
}

// GET /calendar/month?date=YYYY-MM-DD: grid plus the bookings inside it.
// Rapid month switching by the same viewer drops all but the newest load.
func (ctl *CalendarController) Month(c *fiber.Ctx) error {
	today := dbtime.Today(c)
	ref, err := dbtime.QueryDate(c, "date", today)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date: "+err.Error())
	}

	start, end := service.GridRange(ref)
	rows, err := ctl.Loader.Load(c.UserContext(), viewerKey(c), start, end)
	if err != nil {
		if errors.Is(err, asvc.ErrSuperseded) {
			log.Printf("[Calendar] month %s superseded for viewer=%s", ref.Format("2006-01"), viewerKey(c))
		}
		return actl.WriteLedgerError(c, err)
	}

	weeks := service.BuildMonthGrid(ref, today)
	return helper.JsonOK(c, "ok", dto.FromGrid(ref, weeks, attendance.GroupByDate(rows)))
}

func viewerKey(c *fiber.Ctx) string {
	if id := helper.UserIDFromLocals(c); id != nil {
		return id.String()
	}
	return "ip:" + c.IP()
}
