package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"childcare_backend/internals/features/moderation/drift/dto"
	"childcare_backend/internals/features/moderation/drift/service"
)

func TestNoticeListAndAck(t *testing.T) {
	pending := int64(5)
	tr := service.NewTracker(nil)
	tr.Register("applications", service.CountFunc(func(context.Context) (int64, error) { return pending, nil }))
	tr.Observe(context.Background(), "applications")
	pending = 8
	tr.Observe(context.Background(), "applications")

	ctl := NewNoticeController(tr)
	app := fiber.New()
	app.Get("/notices", ctl.List)
	app.Post("/notices/:subject/ack", ctl.Acknowledge)

	resp, err := app.Test(httptest.NewRequest("GET", "/notices?active=true", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	var list struct {
		Data []dto.SubjectResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if len(list.Data) != 1 || list.Data[0].Notice == nil || list.Data[0].Notice.Delta != 3 {
		t.Fatalf("unexpected notices: %+v", list.Data)
	}

	resp, err = app.Test(httptest.NewRequest("POST", "/notices/applications/ack", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	var one struct {
		Data dto.SubjectResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&one); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK || one.Data.Notice != nil || one.Data.Baseline == nil || *one.Data.Baseline != 8 {
		t.Fatalf("status=%d body=%+v", resp.StatusCode, one.Data)
	}

	resp, _ = app.Test(httptest.NewRequest("POST", "/notices/unknown/ack", nil), -1)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}

func TestAckBeforeFirstObservationWithSourceDown(t *testing.T) {
	tr := service.NewTracker(nil)
	tr.Register("applications", service.CountFunc(func(context.Context) (int64, error) {
		return 0, errors.New("db down")
	}))
	ctl := NewNoticeController(tr)
	app := fiber.New()
	app.Post("/notices/:subject/ack", ctl.Acknowledge)

	resp, err := app.Test(httptest.NewRequest("POST", "/notices/applications/ack", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("want 503, got %d", resp.StatusCode)
	}
	if st, _ := tr.Status("applications"); st.State.Armed {
		t.Fatalf("subject armed by failed ack: %+v", st.State)
	}
}
