// Package programs persists Program records, including the nullable device
// reference.
package programs

import (
	"context"

	"github.com/azarovs/parkd/internal/models"
)

type Repository interface {
	Create(ctx context.Context, program *models.Program) error
	GetByID(ctx context.Context, id string) (*models.Program, error)
	// List returns all programs in insertion order.
	List(ctx context.Context) ([]*models.Program, error)
	// ListByDevice returns the programs currently placed on the device.
	ListByDevice(ctx context.Context, deviceID string) ([]*models.Program, error)
	Update(ctx context.Context, program *models.Program) error
	// SetDevice updates only the device reference; nil clears it.
	SetDevice(ctx context.Context, id string, deviceID *string) error
	Delete(ctx context.Context, id string) error
}
