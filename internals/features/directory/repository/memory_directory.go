// file: internals/features/directory/repository/memory_directory.go
package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"childcare_backend/internals/features/directory/model"
)

// MemoryDirectory backs handler tests and local runs without Postgres.
type MemoryDirectory struct {
	mu       sync.RWMutex
	children map[uuid.UUID]model.ChildModel
	nannies  map[uuid.UUID]model.NannyModel
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		children: map[uuid.UUID]model.ChildModel{},
		nannies:  map[uuid.UUID]model.NannyModel{},
	}
}

func (d *MemoryDirectory) PutChild(c model.ChildModel) model.ChildModel {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c.ChildID == uuid.Nil {
		c.ChildID = uuid.New()
	}
	d.children[c.ChildID] = c
	return c
}

func (d *MemoryDirectory) PutNanny(n model.NannyModel) model.NannyModel {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n.NannyID == uuid.Nil {
		n.NannyID = uuid.New()
	}
	if n.NannyAvailability == "" {
		n.NannyAvailability = model.NannyAvailable
	}
	d.nannies[n.NannyID] = n
	return n
}

func (d *MemoryDirectory) ChildExists(_ context.Context, id uuid.UUID) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.children[id]
	return ok && c.ChildIsActive, nil
}

func (d *MemoryDirectory) NannyExists(_ context.Context, id uuid.UUID) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.nannies[id]
	return ok, nil
}

func (d *MemoryDirectory) CountChildren(_ context.Context) (int64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var n int64
	for _, c := range d.children {
		if c.ChildIsActive {
			n++
		}
	}
	return n, nil
}

func (d *MemoryDirectory) ActiveChildIDs(_ context.Context) ([]uuid.UUID, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(d.children))
	for id, c := range d.children {
		if c.ChildIsActive {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (d *MemoryDirectory) CountActiveNannies(_ context.Context) (int64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var n int64
	for _, x := range d.nannies {
		if x.NannyAvailability == model.NannyAvailable {
			n++
		}
	}
	return n, nil
}

func (d *MemoryDirectory) ListChildren(_ context.Context, includeInactive bool) ([]model.ChildModel, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.ChildModel, 0, len(d.children))
	for _, c := range d.children {
		if c.ChildIsActive || includeInactive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChildName < out[j].ChildName })
	return out, nil
}

func (d *MemoryDirectory) ListNannies(_ context.Context, f NannyFilter) ([]model.NannyModel, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]model.NannyModel, 0, len(d.nannies))
	for _, n := range d.nannies {
		if f.Availability != nil && n.NannyAvailability != *f.Availability {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(n.NannyName), search) {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NannyName < out[j].NannyName })
	return out, nil
}
