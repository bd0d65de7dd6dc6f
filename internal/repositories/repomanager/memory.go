package repomanager

import (
	"context"
	"database/sql"

	"github.com/azarovs/parkd/internal/dbx"
	"github.com/azarovs/parkd/internal/repositories/devices"
	"github.com/azarovs/parkd/internal/repositories/programs"
	"github.com/azarovs/parkd/internal/repositories/users"
)

// InMemoryRepositoryManager serves the same shared map-backed repositories
// regardless of the DBTX passed in. Transactionality is not simulated; tests
// that need rollback behavior assert against the sql mock instead.
type InMemoryRepositoryManager struct {
	users    *users.MemoryRepository
	devices  *devices.MemoryRepository
	programs *programs.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		devices:  devices.NewMemoryRepository(),
		programs: programs.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Devices(dbx.DBTX) devices.Repository {
	return m.devices
}

func (m *InMemoryRepositoryManager) Programs(dbx.DBTX) programs.Repository {
	return m.programs
}
