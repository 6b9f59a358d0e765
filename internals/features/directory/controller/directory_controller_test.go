package controller

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"childcare_backend/internals/features/directory/dto"
	"childcare_backend/internals/features/directory/model"
	"childcare_backend/internals/features/directory/repository"
)

func newApp() (*fiber.App, *repository.MemoryDirectory) {
	dir := repository.NewMemoryDirectory()
	ctl := NewDirectoryController(dir)
	app := fiber.New()
	app.Get("/children", ctl.ListChildren)
	app.Get("/nannies", ctl.ListNannies)
	return app, dir
}

func get[T any](t *testing.T, app *fiber.App, path string) (int, T) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	var env struct {
		Data T `json:"data"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return resp.StatusCode, env.Data
}

func TestListChildrenHidesInactiveByDefault(t *testing.T) {
	app, dir := newApp()
	dir.PutChild(model.ChildModel{ChildName: "Budi", ChildIsActive: true})
	dir.PutChild(model.ChildModel{ChildName: "Ayu", ChildIsActive: false})

	status, rows := get[[]dto.ChildResponse](t, app, "/children")
	if status != fiber.StatusOK || len(rows) != 1 || rows[0].ChildName != "Budi" {
		t.Fatalf("status=%d rows=%+v", status, rows)
	}

	_, rows = get[[]dto.ChildResponse](t, app, "/children?include_inactive=true")
	if len(rows) != 2 || rows[0].ChildName != "Ayu" {
		t.Fatalf("want both children sorted by name, got %+v", rows)
	}
}

func TestListNanniesByAvailability(t *testing.T) {
	app, dir := newApp()
	dir.PutNanny(model.NannyModel{NannyName: "Sari"})
	dir.PutNanny(model.NannyModel{NannyName: "Rina", NannyAvailability: model.NannyOnLeave})

	_, rows := get[[]dto.NannyResponse](t, app, "/nannies?availability=on_leave")
	if len(rows) != 1 || rows[0].NannyName != "Rina" {
		t.Fatalf("got %+v", rows)
	}
	_, rows = get[[]dto.NannyResponse](t, app, "/nannies?q=sa")
	if len(rows) != 1 || rows[0].NannyName != "Sari" {
		t.Fatalf("search: got %+v", rows)
	}

	if status, _ := get[[]dto.NannyResponse](t, app, "/nannies?availability=asleep"); status != fiber.StatusBadRequest {
		t.Fatalf("want 400 for bad availability, got %d", status)
	}
}
