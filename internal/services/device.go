package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/azarovs/parkd/internal/logging"
	"github.com/azarovs/parkd/internal/models"
	"github.com/azarovs/parkd/internal/repositories/repomanager"
)

// DeviceService handles device registration and editing. Devices are always
// created unassigned; ownership is the AssignmentService's business.
type DeviceService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	log   logging.Logger
}

func NewDeviceService(db *sql.DB, repos repomanager.RepositoryManager, log logging.Logger) *DeviceService {
	return &DeviceService{db: db, repos: repos, log: log}
}

func (s *DeviceService) Create(ctx context.Context, input *models.NewDevice) (*models.Device, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Validate guarantees the code parses.
	deviceType, _ := models.ParseDeviceType(input.Type)

	device := &models.Device{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Type:        deviceType,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repos.Devices(s.db).Create(ctx, device); err != nil {
		s.log.Error(ctx, "device creation failed", "error", err)
		return nil, err
	}

	s.log.Info(ctx, "device created", "device_id", device.ID, "type", string(device.Type))
	return device, nil
}

func (s *DeviceService) Update(ctx context.Context, id string, input *models.DeviceUpdate) (*models.Device, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	deviceType, _ := models.ParseDeviceType(input.Type)

	repo := s.repos.Devices(s.db)
	device, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	device.Name = input.Name
	device.Description = input.Description
	device.Type = deviceType

	if err := repo.Update(ctx, device); err != nil {
		s.log.Error(ctx, "device update failed", "device_id", id, "error", err)
		return nil, err
	}

	return device, nil
}
