package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azarovs/parkd/internal/common"
	"github.com/azarovs/parkd/internal/models"
	"github.com/azarovs/parkd/internal/repositories/repomanager"
)

func TestDeviceCreate(t *testing.T) {
	db, _ := newServiceDB(t)
	repos := repomanager.NewInMemoryRepositoryManager()
	svc := NewDeviceService(db, repos, nopLog())
	ctx := context.Background()

	device, err := svc.Create(ctx, &models.NewDevice{Name: "sensor-1", Type: "temp"})
	require.NoError(t, err)

	assert.NotEmpty(t, device.ID)
	assert.Equal(t, models.DeviceTypeTemp, device.Type)
	// devices are born unassigned
	assert.Nil(t, device.OwnerID)

	stored, err := repos.Devices(nil).GetByID(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, "sensor-1", stored.Name)
}

func TestDeviceCreate_UnknownType(t *testing.T) {
	db, _ := newServiceDB(t)
	repos := repomanager.NewInMemoryRepositoryManager()
	svc := NewDeviceService(db, repos, nopLog())

	_, err := svc.Create(context.Background(), &models.NewDevice{Name: "sensor-1", Type: "quantum"})

	var verr *common.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "type")

	// nothing was stored
	devices, err := repos.Devices(nil).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestDeviceUpdate(t *testing.T) {
	db, _ := newServiceDB(t)
	repos := repomanager.NewInMemoryRepositoryManager()
	svc := NewDeviceService(db, repos, nopLog())
	ctx := context.Background()

	device, err := svc.Create(ctx, &models.NewDevice{Name: "sensor-1", Type: "temp"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, device.ID, &models.DeviceUpdate{Name: "sensor-1b", Type: "hum", Description: "relocated"})
	require.NoError(t, err)

	assert.Equal(t, "sensor-1b", updated.Name)
	assert.Equal(t, models.DeviceTypeHum, updated.Type)
}

func TestDeviceUpdate_UnknownTypeRejected(t *testing.T) {
	db, _ := newServiceDB(t)
	repos := repomanager.NewInMemoryRepositoryManager()
	svc := NewDeviceService(db, repos, nopLog())
	ctx := context.Background()

	device, err := svc.Create(ctx, &models.NewDevice{Name: "sensor-1", Type: "temp"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, device.ID, &models.DeviceUpdate{Name: "sensor-1", Type: "quantum"})

	var verr *common.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "type")

	// the stored device kept its type
	stored, err := repos.Devices(nil).GetByID(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DeviceTypeTemp, stored.Type)
}

func TestDeviceUpdate_DeviceMissing(t *testing.T) {
	db, _ := newServiceDB(t)
	repos := repomanager.NewInMemoryRepositoryManager()
	svc := NewDeviceService(db, repos, nopLog())

	_, err := svc.Update(context.Background(), "ghost", &models.DeviceUpdate{Name: "x", Type: "temp"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestProgramCreateAndUpdate(t *testing.T) {
	db, _ := newServiceDB(t)
	repos := repomanager.NewInMemoryRepositoryManager()
	svc := NewProgramService(db, repos, nopLog())
	ctx := context.Background()

	program, err := svc.Create(ctx, &models.NewProgram{Name: "p1"})
	require.NoError(t, err)
	assert.Nil(t, program.DeviceID)

	updated, err := svc.Update(ctx, program.ID, &models.ProgramUpdate{Name: "p1-renamed", Description: "telemetry"})
	require.NoError(t, err)
	assert.Equal(t, "p1-renamed", updated.Name)
}

func TestProgramCreate_MissingName(t *testing.T) {
	db, _ := newServiceDB(t)
	repos := repomanager.NewInMemoryRepositoryManager()
	svc := NewProgramService(db, repos, nopLog())

	_, err := svc.Create(context.Background(), &models.NewProgram{})

	var verr *common.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "name")
}
