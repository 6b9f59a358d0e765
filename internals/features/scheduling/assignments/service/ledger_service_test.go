package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	dirModel "childcare_backend/internals/features/directory/model"
	dirRepo "childcare_backend/internals/features/directory/repository"
	"childcare_backend/internals/features/scheduling/assignments/model"
	"childcare_backend/internals/features/scheduling/assignments/repository"
)

type fakeDirectory struct {
	children map[uuid.UUID]bool
	nannies  map[uuid.UUID]bool
}

func (d fakeDirectory) ChildExists(_ context.Context, id uuid.UUID) (bool, error) {
	return d.children[id], nil
}

func (d fakeDirectory) NannyExists(_ context.Context, id uuid.UUID) (bool, error) {
	return d.nannies[id], nil
}

type fixture struct {
	svc    *LedgerService
	store  *repository.MemoryStore
	childA uuid.UUID
	childB uuid.UUID
	nanny  uuid.UUID
}

func newFixture() fixture {
	f := fixture{
		store:  repository.NewMemoryStore(),
		childA: uuid.New(),
		childB: uuid.New(),
		nanny:  uuid.New(),
	}
	dir := fakeDirectory{
		children: map[uuid.UUID]bool{f.childA: true, f.childB: true},
		nannies:  map[uuid.UUID]bool{f.nanny: true},
	}
	f.svc = NewLedgerService(f.store, dir)
	return f
}

func booking(child, nanny uuid.UUID, day time.Time) model.AssignmentModel {
	var m model.AssignmentModel
	m.AssignmentChildID = child
	m.AssignmentNannyID = nanny
	m.SetDay(day)
	return m
}

var d1 = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func TestCreateOrUpdateRejectsSecondBookingSameChildSameDay(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	first, err := f.svc.CreateOrUpdate(ctx, booking(f.childA, f.nanny, d1), nil)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if first.AssignmentID == uuid.Nil {
		t.Fatalf("persisted assignment has no id")
	}

	_, err = f.svc.CreateOrUpdate(ctx, booking(f.childA, f.nanny, d1.Add(14*time.Hour)), nil)
	var conflict *model.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("want ConflictError, got %v", err)
	}
	if conflict.ExistingID != first.AssignmentID {
		t.Fatalf("conflict should reference %s, got %s", first.AssignmentID, conflict.ExistingID)
	}

	rows, _ := f.store.ListRange(ctx, nil, nil, repository.Filter{})
	if len(rows) != 1 {
		t.Fatalf("conflict must not write; have %d rows", len(rows))
	}

	// a different child on the same day is fine
	if _, err := f.svc.CreateOrUpdate(ctx, booking(f.childB, f.nanny, d1), nil); err != nil {
		t.Fatalf("other child same day: %v", err)
	}
}

func TestCreateOrUpdateSelfExclusionOnUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	saved, err := f.svc.CreateOrUpdate(ctx, booking(f.childA, f.nanny, d1), nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	note := "pick-up by grandma"
	upd := booking(f.childA, f.nanny, d1)
	upd.AssignmentNote = &note
	id := saved.AssignmentID

	got, err := f.svc.CreateOrUpdate(ctx, upd, &id)
	if err != nil {
		t.Fatalf("self update must succeed: %v", err)
	}
	if got.AssignmentID != id || got.AssignmentNote == nil || *got.AssignmentNote != note {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestCreateOrUpdateUpdateIntoConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	d2 := d1.AddDate(0, 0, 1)

	if _, err := f.svc.CreateOrUpdate(ctx, booking(f.childA, f.nanny, d1), nil); err != nil {
		t.Fatalf("create d1: %v", err)
	}
	moving, err := f.svc.CreateOrUpdate(ctx, booking(f.childA, f.nanny, d2), nil)
	if err != nil {
		t.Fatalf("create d2: %v", err)
	}

	id := moving.AssignmentID
	_, err = f.svc.CreateOrUpdate(ctx, booking(f.childA, f.nanny, d1), &id)
	var conflict *model.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("want ConflictError moving onto d1, got %v", err)
	}
	still, _ := f.store.Get(ctx, id)
	if still.DayKey() != "2026-10-20" {
		t.Fatalf("conflicting update was written: %s", still.DayKey())
	}
}

func TestCreateOrUpdateUnknownExistingID(t *testing.T) {
	f := newFixture()
	missing := uuid.New()
	_, err := f.svc.CreateOrUpdate(context.Background(), booking(f.childA, f.nanny, d1), &missing)
	var nf *model.NotFoundError
	if !errors.As(err, &nf) || nf.ID != missing {
		t.Fatalf("want NotFoundError for %s, got %v", missing, err)
	}
}

func TestCreateOrUpdateValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.svc.CreateOrUpdate(ctx, model.AssignmentModel{}, nil)
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	for _, field := range []string{"assignment_date", "assignment_child_id", "assignment_nanny_id"} {
		if len(verr.Fields[field]) == 0 {
			t.Fatalf("missing error for %s: %v", field, verr.Fields)
		}
	}

	_, err = f.svc.CreateOrUpdate(ctx, booking(uuid.New(), f.nanny, d1), nil)
	if !errors.As(err, &verr) || len(verr.Fields["assignment_child_id"]) == 0 {
		t.Fatalf("unknown child should fail fast, got %v", err)
	}
	_, err = f.svc.CreateOrUpdate(ctx, booking(f.childA, uuid.New(), d1), nil)
	if !errors.As(err, &verr) || len(verr.Fields["assignment_nanny_id"]) == 0 {
		t.Fatalf("unknown nanny should fail fast, got %v", err)
	}
}

func TestDeleteUnknownIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	var nf *model.NotFoundError
	if err := f.svc.Delete(ctx, uuid.New()); !errors.As(err, &nf) {
		t.Fatalf("want NotFoundError, got %v", err)
	}

	saved, _ := f.svc.CreateOrUpdate(ctx, booking(f.childA, f.nanny, d1), nil)
	if err := f.svc.Delete(ctx, saved.AssignmentID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := f.svc.Delete(ctx, saved.AssignmentID); !errors.As(err, &nf) {
		t.Fatalf("second delete: want NotFoundError, got %v", err)
	}
}

func TestListRejectsInvertedRange(t *testing.T) {
	f := newFixture()
	from, to := d1, d1.AddDate(0, 0, -1)
	_, err := f.svc.List(context.Background(), &from, &to, repository.Filter{})
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

// racyStore hides existing rows from the fast-path scan, so only the store's own
// uniqueness check can catch the duplicate.
type racyStore struct {
	*repository.MemoryStore
}

func (racyStore) FindByChildAndDate(context.Context, uuid.UUID, time.Time) ([]model.AssignmentModel, error) {
	return nil, nil
}

func TestStoreRejectionSurfacesAsConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.svc.Store = racyStore{f.store}

	if _, err := f.svc.CreateOrUpdate(ctx, booking(f.childA, f.nanny, d1), nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := f.svc.CreateOrUpdate(ctx, booking(f.childA, f.nanny, d1), nil)
	var conflict *model.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("store-level rejection should be ConflictError, got %v", err)
	}
}

func TestCreateOrUpdateRejectsInactiveChild(t *testing.T) {
	ctx := context.Background()
	dir := dirRepo.NewMemoryDirectory()
	active := dir.PutChild(dirModel.ChildModel{ChildName: "Raka", ChildIsActive: true})
	inactive := dir.PutChild(dirModel.ChildModel{ChildName: "Sari"})
	nanny := dir.PutNanny(dirModel.NannyModel{NannyName: "Bu Ani"})
	svc := NewLedgerService(repository.NewMemoryStore(), dir)

	if _, err := svc.CreateOrUpdate(ctx, booking(active.ChildID, nanny.NannyID, d1), nil); err != nil {
		t.Fatalf("active child: %v", err)
	}
	_, err := svc.CreateOrUpdate(ctx, booking(inactive.ChildID, nanny.NannyID, d1), nil)
	var verr *model.ValidationError
	if !errors.As(err, &verr) || len(verr.Fields["assignment_child_id"]) == 0 {
		t.Fatalf("inactive child should be rejected, got %v", err)
	}
}
