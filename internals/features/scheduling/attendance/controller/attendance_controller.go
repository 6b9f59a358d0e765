// file: internals/features/scheduling/attendance/controller/attendance_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"childcare_backend/internals/features/scheduling/attendance/dto"
	"childcare_backend/internals/features/scheduling/attendance/service"
	helper "childcare_backend/internals/helpers"
	"childcare_backend/internals/helpers/dbtime"
)

type AttendanceController struct {
	Service *service.AttendanceService
}

func NewAttendanceController(svc *service.AttendanceService) *AttendanceController {
	return &AttendanceController{Service: svc}
}

// GET /attendance/daily?date=YYYY-MM-DD (default today)
func (ctl *AttendanceController) Daily(c *fiber.Ctx) error {
	day, err := dbtime.QueryDate(c, "date", dbtime.Today(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date: "+err.Error())
	}
	snap, err := ctl.Service.Daily(c.UserContext(), day)
	if err != nil {
		log.Printf("[Attendance] daily %s: %v", dbtime.DayKey(day), err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute attendance")
	}
	return helper.JsonOK(c, "ok", dto.FromSnapshot(snap))
}

// GET /attendance/weekly?today=YYYY-MM-DD
func (ctl *AttendanceController) Weekly(c *fiber.Ctx) error {
	today, err := dbtime.QueryDate(c, "today", dbtime.Today(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "today: "+err.Error())
	}
	report, err := ctl.Service.Weekly(c.UserContext(), today)
	if err != nil {
		log.Printf("[Attendance] weekly %s: %v", dbtime.DayKey(today), err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute attendance")
	}
	return helper.JsonOK(c, "ok", dto.FromWeekly(report))
}

// GET /attendance/summary
func (ctl *AttendanceController) Summary(c *fiber.Ctx) error {
	sum, err := ctl.Service.Summary(c.UserContext(), dbtime.Today(c))
	if err != nil {
		log.Printf("[Attendance] summary: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute summary")
	}
	return helper.JsonOK(c, "ok", dto.FromSummary(sum))
}

// GET /attendance/month?date=YYYY-MM-DD: present count per grid cell
func (ctl *AttendanceController) Month(c *fiber.Ctx) error {
	today := dbtime.Today(c)
	ref, err := dbtime.QueryDate(c, "date", today)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date: "+err.Error())
	}
	weeks, err := ctl.Service.Month(c.UserContext(), ref, today)
	if err != nil {
		log.Printf("[Attendance] month %s: %v", dbtime.DayKey(ref), err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute attendance")
	}
	return helper.JsonOK(c, "ok", dto.FromMonth(ref, weeks))
}
