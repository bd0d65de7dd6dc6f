package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/azarovs/parkd/internal/dbx"
	"github.com/azarovs/parkd/internal/logging"
	"github.com/azarovs/parkd/internal/models"
	"github.com/azarovs/parkd/internal/repositories/devices"
	"github.com/azarovs/parkd/internal/repositories/programs"
	"github.com/azarovs/parkd/internal/repositories/repomanager"
	"github.com/azarovs/parkd/internal/repositories/users"
)

// Services run their transactions against a sqlmock connection while the
// repositories come from the in-memory manager, so Begin/Commit/Rollback can
// be asserted without a real database.

func newServiceDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func expectCommit(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectCommit()
}

func expectRollback(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectRollback()
}

func seedUser(t *testing.T, repos repomanager.RepositoryManager, id, email, username string) *models.User {
	t.Helper()
	u := &models.User{
		ID:           id,
		Email:        email,
		Username:     username,
		FirstName:    "First",
		LastName:     "Last",
		PasswordHash: "hashed",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repos.Users(nil).Create(context.Background(), u))
	return u
}

func seedDevice(t *testing.T, repos repomanager.RepositoryManager, id, name string) *models.Device {
	t.Helper()
	d := &models.Device{
		ID:        id,
		Name:      name,
		Type:      models.DeviceTypeTemp,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repos.Devices(nil).Create(context.Background(), d))
	return d
}

func seedProgram(t *testing.T, repos repomanager.RepositoryManager, id, name string) *models.Program {
	t.Helper()
	p := &models.Program{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repos.Programs(nil).Create(context.Background(), p))
	return p
}

func nopLog() logging.Logger { return logging.NewNopLogger() }

// fakeHasher marks the input instead of hashing it, so tests can assert the
// stored value without computing argon2.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Verify(password, encoded string) (bool, error) {
	return encoded == "hashed:"+password, nil
}

// overrideManager lets a single repository be swapped for a failing fake.
type overrideManager struct {
	repomanager.RepositoryManager
	devices devices.Repository
}

func (m *overrideManager) Devices(db dbx.DBTX) devices.Repository {
	if m.devices != nil {
		return m.devices
	}
	return m.RepositoryManager.Devices(db)
}

// failingDevices wraps a real repository and fails SetOwner.
type failingDevices struct {
	devices.Repository
	setOwnerErr error
}

func (f *failingDevices) SetOwner(ctx context.Context, id string, ownerID *string) error {
	if f.setOwnerErr != nil {
		return f.setOwnerErr
	}
	return f.Repository.SetOwner(ctx, id, ownerID)
}

var (
	_ users.Repository    = (*users.MemoryRepository)(nil)
	_ devices.Repository  = (*devices.MemoryRepository)(nil)
	_ programs.Repository = (*programs.MemoryRepository)(nil)
)
