package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"childcare_backend/internals/features/scheduling/assignments/model"
	"childcare_backend/internals/features/scheduling/assignments/repository"
	asvc "childcare_backend/internals/features/scheduling/assignments/service"
	"childcare_backend/internals/features/scheduling/calendar/dto"
)

type gridEnvelope struct {
	Success bool             `json:"success"`
	Data    dto.GridResponse `json:"data"`
}

func getGrid(t *testing.T, app *fiber.App, path string) (int, gridEnvelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	var env gridEnvelope
	if resp.StatusCode == fiber.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return resp.StatusCode, env
}

func TestGridForJuly2026(t *testing.T) {
	ctl := NewCalendarController(asvc.NewRangeLoader(asvc.NewLedgerService(repository.NewMemoryStore(), nil)))
	app := fiber.New()
	app.Get("/calendar/grid", ctl.Grid)

	status, env := getGrid(t, app, "/calendar/grid?date=2026-07-10")
	if status != fiber.StatusOK {
		t.Fatalf("status %d", status)
	}
	g := env.Data
	if g.Month != "2026-07" || g.RangeStart != "2026-06-29" || g.RangeEnd != "2026-08-02" {
		t.Fatalf("unexpected bounds: %+v", g)
	}
	if g.Weeks[0][2].Date != "2026-07-01" || !g.Weeks[0][2].IsInTargetMonth {
		t.Fatalf("first of month misplaced: %+v", g.Weeks[0][2])
	}
	last := g.Weeks[len(g.Weeks)-1]
	if last[4].Date != "2026-07-31" || last[6].IsInTargetMonth {
		t.Fatalf("tail misplaced: %+v", last)
	}
	for _, w := range g.Weeks {
		if len(w) != 7 {
			t.Fatalf("week with %d days", len(w))
		}
	}
}

func TestGridRejectsBadDate(t *testing.T) {
	ctl := NewCalendarController(nil)
	app := fiber.New()
	app.Get("/calendar/grid", ctl.Grid)
	if status, _ := getGrid(t, app, "/calendar/grid?date=2026-13-01"); status != fiber.StatusBadRequest {
		t.Fatalf("want 400, got %d", status)
	}
}

func TestMonthAttachesAssignments(t *testing.T) {
	store := repository.NewMemoryStore()
	ledger := asvc.NewLedgerService(store, nil)
	child := uuid.New()

	var m model.AssignmentModel
	m.AssignmentChildID = child
	m.AssignmentNannyID = uuid.New()
	m.SetDay(time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC))
	if _, err := ledger.CreateOrUpdate(context.Background(), m, nil); err != nil {
		t.Fatal(err)
	}

	ctl := NewCalendarController(asvc.NewRangeLoader(ledger))
	app := fiber.New()
	app.Get("/calendar/month", ctl.Month)

	status, env := getGrid(t, app, "/calendar/month?date=2026-07-01")
	if status != fiber.StatusOK {
		t.Fatalf("status %d", status)
	}
	last := env.Data.Weeks[len(env.Data.Weeks)-1]
	if len(last[4].Assignments) != 1 || last[4].Assignments[0].AssignmentChildID != child {
		t.Fatalf("July 31 should carry the booking: %+v", last[4])
	}
	if len(last[3].Assignments) != 0 {
		t.Fatalf("July 30 should be empty: %+v", last[3])
	}
}
