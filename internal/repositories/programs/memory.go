package programs

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
	byID  map[string]*models.Program
	order []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*models.Program)}
}

func (r *MemoryRepository) Create(_ context.Context, program *models.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[program.ID] = cloneProgram(program)
	r.order = append(r.order, program.ID)
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.Program, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneProgram(p), nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*models.Program, error) {
	return r.collect(func(*models.Program) bool { return true }), nil
}

func (r *MemoryRepository) ListByDevice(_ context.Context, deviceID string) ([]*models.Program, error) {
	return r.collect(func(p *models.Program) bool {
		return p.DeviceID != nil && *p.DeviceID == deviceID
	}), nil
}

func (r *MemoryRepository) Update(_ context.Context, program *models.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[program.ID]
	if !ok {
		return common.ErrorNotFound
	}
	c := cloneProgram(program)
	c.DeviceID = cur.DeviceID // placement changes go through SetDevice
	r.byID[program.ID] = c
	return nil
}

func (r *MemoryRepository) SetDevice(_ context.Context, id string, deviceID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	if deviceID == nil {
		p.DeviceID = nil
	} else {
		v := *deviceID
		p.DeviceID = &v
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

func (r *MemoryRepository) collect(match func(*models.Program) bool) []*models.Program {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Program, 0, len(r.order))
	for _, id := range r.order {
		if p := r.byID[id]; match(p) {
			out = append(out, cloneProgram(p))
		}
	}
	return out
}

func cloneProgram(p *models.Program) *models.Program {
	c := *p
	if p.DeviceID != nil {
		v := *p.DeviceID
		c.DeviceID = &v
	}
	return &c
}
