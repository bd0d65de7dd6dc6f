package devices

import (
	"context"
	"sync"

	"github.com/azarovs/parkd/internal/common"
	"github.com/azarovs/parkd/internal/models"
)

// MemoryRepository is a map-backed Repository used by tests and the
// in-memory manager.
type MemoryRepository struct {
	mu    sync.Mutex
	byID  map[string]*models.Device
	order []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*models.Device)}
}

func (r *MemoryRepository) Create(_ context.Context, device *models.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := cloneDevice(device)
	r.byID[device.ID] = c
	r.order = append(r.order, device.ID)
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneDevice(d), nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*models.Device, error) {
	return r.collect(func(*models.Device) bool { return true }), nil
}

func (r *MemoryRepository) ListByOwner(_ context.Context, userID string) ([]*models.Device, error) {
	return r.collect(func(d *models.Device) bool {
		return d.OwnerID != nil && *d.OwnerID == userID
	}), nil
}

func (r *MemoryRepository) Update(_ context.Context, device *models.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[device.ID]
	if !ok {
		return common.ErrorNotFound
	}
	c := cloneDevice(device)
	c.OwnerID = cur.OwnerID // ownership changes go through SetOwner
	r.byID[device.ID] = c
	return nil
}

func (r *MemoryRepository) SetOwner(_ context.Context, id string, ownerID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	if ownerID == nil {
		d.OwnerID = nil
	} else {
		v := *ownerID
		d.OwnerID = &v
	}
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryRepository) collect(match func(*models.Device) bool) []*models.Device {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Device, 0, len(r.order))
	for _, id := range r.order {
		if d := r.byID[id]; match(d) {
			out = append(out, cloneDevice(d))
		}
	}
	return out
}

func cloneDevice(d *models.Device) *models.Device {
	c := *d
	if d.OwnerID != nil {
		v := *d.OwnerID
		c.OwnerID = &v
	}
	return &c
}
