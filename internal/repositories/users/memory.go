package users

import (
	"context"
	"sync"

	"github.com/azarovs/parkd/internal/common"
	"github.com/azarovs/parkd/internal/models"
)

// MemoryRepository is a map-backed Repository used by tests and the
// in-memory manager. Records are kept in insertion order.
type MemoryRepository struct {
	mu    sync.Mutex
	byID  map[string]*models.User
	order []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*models.User)}
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := common.NewValidationError()
	for _, u := range r.byID {
		if u.Email == user.Email {
			v.Add("email", "is already taken")
		}
		if u.Username == user.Username {
			v.Add("username", "is already taken")
		}
	}
	if err := v.Err(); err != nil {
		return err
	}

	c := *user
	r.byID[user.ID] = &c
	r.order = append(r.order, user.ID)
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r *MemoryRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Username == username })
}

func (r *MemoryRepository) List(_ context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.User, 0, len(r.order))
	for _, id := range r.order {
		c := *r.byID[id]
		out = append(out, &c)
	}
	return out, nil
}

func (r *MemoryRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[user.ID]; !ok {
		return common.ErrorNotFound
	}
	c := *user
	r.byID[user.ID] = &c
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

func (r *MemoryRepository) find(match func(*models.User) bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if u := r.byID[id]; match(u) {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}
