package services

import (
	"context"
	"database/sql"

	"github.com/azarovs/parkd/internal/models"
	"github.com/azarovs/parkd/internal/repositories/repomanager"
)

// DirectoryService exposes the read side: full listings in insertion order,
// lookups by ID, and the device-type catalogue.
type DirectoryService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewDirectoryService(db *sql.DB, repos repomanager.RepositoryManager) *DirectoryService {
	return &DirectoryService{db: db, repos: repos}
}

func (s *DirectoryService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.repos.Users(s.db).List(ctx)
}

func (s *DirectoryService) ListDevices(ctx context.Context) ([]*models.Device, error) {
	return s.repos.Devices(s.db).List(ctx)
}

func (s *DirectoryService) ListPrograms(ctx context.Context) ([]*models.Program, error) {
	return s.repos.Programs(s.db).List(ctx)
}

func (s *DirectoryService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.repos.Users(s.db).GetByID(ctx, id)
}

func (s *DirectoryService) GetDevice(ctx context.Context, id string) (*models.Device, error) {
	return s.repos.Devices(s.db).GetByID(ctx, id)
}

func (s *DirectoryService) GetProgram(ctx context.Context, id string) (*models.Program, error) {
	return s.repos.Programs(s.db).GetByID(ctx, id)
}

// AvailableDeviceTypes returns the closed set of recognized device-type
// codes. No store round-trip is involved.
func (s *DirectoryService) AvailableDeviceTypes() []models.DeviceType {
	return models.AvailableDeviceTypes()
}

// DeviceTypeDisplayNames returns the code-to-label mapping for the
// recognized set.
func (s *DirectoryService) DeviceTypeDisplayNames() map[models.DeviceType]string {
	return models.DeviceTypeDisplayNames()
}
