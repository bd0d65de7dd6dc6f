package services

import (
	"context"
	"database/sql"

	"github.com/azarovs/parkd/internal/dbx"
	"github.com/azarovs/parkd/internal/logging"
	"github.com/azarovs/parkd/internal/repositories/repomanager"
)

// AssignmentService owns the User-Device and Device-Program relationships.
// Every operation runs as one transaction: the cascade on delete either
// fully applies or leaves nothing changed.
type AssignmentService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	log   logging.Logger
}

func NewAssignmentService(db *sql.DB, repos repomanager.RepositoryManager, log logging.Logger) *AssignmentService {
	return &AssignmentService{db: db, repos: repos, log: log}
}

// AssignDevice sets the device's owner. Both the device and the user must
// exist. Reassigning a device to its current owner is a permitted no-op.
func (s *AssignmentService) AssignDevice(ctx context.Context, deviceID, userID string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repos.Users(tx).GetByID(ctx, userID); err != nil {
			return err
		}
		return s.repos.Devices(tx).SetOwner(ctx, deviceID, &userID)
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "device assigned", "device_id", deviceID, "user_id", userID)
	return nil
}

// UnassignDevice clears the device's owner. Unassigning an already
// unassigned device is not an error.
func (s *AssignmentService) UnassignDevice(ctx context.Context, deviceID string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repos.Devices(tx).SetOwner(ctx, deviceID, nil)
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "device unassigned", "device_id", deviceID)
	return nil
}

// AssignProgram places the program on a device. Both must exist.
func (s *AssignmentService) AssignProgram(ctx context.Context, programID, deviceID string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repos.Devices(tx).GetByID(ctx, deviceID); err != nil {
			return err
		}
		return s.repos.Programs(tx).SetDevice(ctx, programID, &deviceID)
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "program assigned", "program_id", programID, "device_id", deviceID)
	return nil
}

// UnassignProgram takes the program off its device. Idempotent.
func (s *AssignmentService) UnassignProgram(ctx context.Context, programID string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repos.Programs(tx).SetDevice(ctx, programID, nil)
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "program unassigned", "program_id", programID)
	return nil
}

// DeleteUser unassigns every device the user owns and removes the user, all
// inside one transaction. A failure anywhere rolls the whole cascade back.
func (s *AssignmentService) DeleteUser(ctx context.Context, userID string) error {
	var unassigned int
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		usersRepo := s.repos.Users(tx)
		if _, err := usersRepo.GetByID(ctx, userID); err != nil {
			return err
		}

		devicesRepo := s.repos.Devices(tx)
		owned, err := devicesRepo.ListByOwner(ctx, userID)
		if err != nil {
			return err
		}
		for _, d := range owned {
			if err := devicesRepo.SetOwner(ctx, d.ID, nil); err != nil {
				return err
			}
		}
		unassigned = len(owned)

		return usersRepo.Delete(ctx, userID)
	})
	if err != nil {
		s.log.Error(ctx, "user deletion failed", "user_id", userID, "error", err)
		return err
	}

	s.log.Info(ctx, "user deleted", "user_id", userID, "devices_unassigned", unassigned)
	return nil
}

// DeleteDevice unassigns every program placed on the device and removes the
// device, all inside one transaction. Dangling program references cannot
// survive this operation.
func (s *AssignmentService) DeleteDevice(ctx context.Context, deviceID string) error {
	var unassigned int
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		devicesRepo := s.repos.Devices(tx)
		if _, err := devicesRepo.GetByID(ctx, deviceID); err != nil {
			return err
		}

		programsRepo := s.repos.Programs(tx)
		placed, err := programsRepo.ListByDevice(ctx, deviceID)
		if err != nil {
			return err
		}
		for _, p := range placed {
			if err := programsRepo.SetDevice(ctx, p.ID, nil); err != nil {
				return err
			}
		}
		unassigned = len(placed)

		return devicesRepo.Delete(ctx, deviceID)
	})
	if err != nil {
		s.log.Error(ctx, "device deletion failed", "device_id", deviceID, "error", err)
		return err
	}

	s.log.Info(ctx, "device deleted", "device_id", deviceID, "programs_unassigned", unassigned)
	return nil
}

// DeleteProgram removes a program. Programs are leaves, nothing cascades.
func (s *AssignmentService) DeleteProgram(ctx context.Context, programID string) error {
	if err := s.repos.Programs(s.db).Delete(ctx, programID); err != nil {
		return err
	}

	s.log.Info(ctx, "program deleted", "program_id", programID)
	return nil
}
