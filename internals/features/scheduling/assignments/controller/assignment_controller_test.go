package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"childcare_backend/internals/features/scheduling/assignments/repository"
	"childcare_backend/internals/features/scheduling/assignments/service"
)

type allowAll struct{ children, nannies map[uuid.UUID]bool }

func (a allowAll) ChildExists(_ context.Context, id uuid.UUID) (bool, error) { return a.children[id], nil }
func (a allowAll) NannyExists(_ context.Context, id uuid.UUID) (bool, error) { return a.nannies[id], nil }

type envelope struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors"`
	Data      json.RawMessage     `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, uuid.UUID, uuid.UUID) {
	t.Helper()
	child, nanny := uuid.New(), uuid.New()
	dir := allowAll{
		children: map[uuid.UUID]bool{child: true},
		nannies:  map[uuid.UUID]bool{nanny: true},
	}
	ledger := service.NewLedgerService(repository.NewMemoryStore(), dir)
	ctl := NewAssignmentController(ledger, nil)

	app := fiber.New()
	app.Get("/assignments", ctl.List)
	app.Get("/assignments/:id", ctl.GetByID)
	app.Post("/assignments", ctl.Create)
	app.Put("/assignments/:id", ctl.Update)
	app.Delete("/assignments/:id", ctl.Delete)
	return app, child, nanny
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func upsertBody(date string, child, nanny uuid.UUID) string {
	return `{"assignment_date":"` + date + `","assignment_child_id":"` + child.String() +
		`","assignment_nanny_id":"` + nanny.String() + `"}`
}

func TestAssignmentLifecycleOverHTTP(t *testing.T) {
	app, child, nanny := newTestApp(t)

	status, env := do(t, app, http.MethodPost, "/assignments", upsertBody("2026-10-19", child, nanny))
	if status != fiber.StatusCreated || !env.Success {
		t.Fatalf("create: status %d body %+v", status, env)
	}
	var created struct {
		ID   uuid.UUID `json:"assignment_id"`
		Date string    `json:"assignment_date"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.Date != "2026-10-19" {
		t.Fatalf("date round-trip: %q", created.Date)
	}

	status, env = do(t, app, http.MethodPost, "/assignments", upsertBody("2026-10-19", child, nanny))
	if status != fiber.StatusConflict || env.ErrorCode != "CONFLICT" {
		t.Fatalf("duplicate: status %d code %q", status, env.ErrorCode)
	}
	var conflict struct {
		Existing *uuid.UUID `json:"existing_assignment_id"`
	}
	_ = json.Unmarshal(env.Data, &conflict)
	if conflict.Existing == nil || *conflict.Existing != created.ID {
		t.Fatalf("conflict detail should name %s: %s", created.ID, env.Data)
	}

	status, env = do(t, app, http.MethodPut, "/assignments/"+created.ID.String(), upsertBody("2026-10-19", child, nanny))
	if status != fiber.StatusOK {
		t.Fatalf("self update: status %d", status)
	}
	var updated struct {
		UpdatedAt time.Time `json:"assignment_updated_at"`
	}
	if err := json.Unmarshal(env.Data, &updated); err != nil || updated.UpdatedAt.IsZero() {
		t.Fatalf("update response should carry updated_at: %s", env.Data)
	}

	status, env = do(t, app, http.MethodGet, "/assignments?from=2026-10-01&to=2026-10-31", "")
	if status != fiber.StatusOK {
		t.Fatalf("list: status %d", status)
	}
	var rows []json.RawMessage
	_ = json.Unmarshal(env.Data, &rows)
	if len(rows) != 1 {
		t.Fatalf("list: want 1 row, got %d", len(rows))
	}

	status, _ = do(t, app, http.MethodDelete, "/assignments/"+created.ID.String(), "")
	if status != fiber.StatusOK {
		t.Fatalf("delete: status %d", status)
	}
	status, env = do(t, app, http.MethodDelete, "/assignments/"+created.ID.String(), "")
	if status != fiber.StatusNotFound || env.ErrorCode != "NOT_FOUND" {
		t.Fatalf("second delete: status %d code %q", status, env.ErrorCode)
	}
}

func TestAssignmentValidationOverHTTP(t *testing.T) {
	app, child, nanny := newTestApp(t)

	status, env := do(t, app, http.MethodPost, "/assignments", upsertBody("2026-13-40", child, nanny))
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("bad date: status %d", status)
	}
	if len(env.Errors["assignment_date"]) == 0 {
		t.Fatalf("bad date: errors keyed by json field expected, got %v", env.Errors)
	}

	status, env = do(t, app, http.MethodPost, "/assignments", upsertBody("2026-10-19", uuid.New(), nanny))
	if status != fiber.StatusUnprocessableEntity || len(env.Errors["assignment_child_id"]) == 0 {
		t.Fatalf("unknown child: status %d errors %v", status, env.Errors)
	}

	status, _ = do(t, app, http.MethodPut, "/assignments/"+uuid.NewString(), upsertBody("2026-10-19", child, nanny))
	if status != fiber.StatusNotFound {
		t.Fatalf("update unknown: status %d", status)
	}

	status, _ = do(t, app, http.MethodGet, "/assignments?from=yesterday", "")
	if status != fiber.StatusBadRequest {
		t.Fatalf("malformed from: status %d", status)
	}
}
