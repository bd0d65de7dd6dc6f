// Package devices persists Device records, including the nullable owner
// reference to a user.
package devices

import (
	"context"

	"github.com/azarovs/parkd/internal/models"
)

type Repository interface {
	Create(ctx context.Context, device *models.Device) error
	GetByID(ctx context.Context, id string) (*models.Device, error)
	// List returns all devices in insertion order.
	List(ctx context.Context) ([]*models.Device, error)
	// ListByOwner returns the devices currently owned by the user.
	ListByOwner(ctx context.Context, userID string) ([]*models.Device, error)
	Update(ctx context.Context, device *models.Device) error
	// SetOwner updates only the owner reference; nil clears it.
	SetOwner(ctx context.Context, id string, ownerID *string) error
	Delete(ctx context.Context, id string) error
}
