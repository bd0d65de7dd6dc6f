package models

import (
	"time"

	"github.com/azarovs/parkd/internal/common"
)

// Program is a workload that can run on at most one device. DeviceID is nil
// while the program is unassigned.
type Program struct {
	ID          string
	Name        string
	Description string
	DeviceID    *string
	CreatedAt   time.Time
}

// Assigned reports whether the program is currently placed on a device.
func (p *Program) Assigned() bool {
	return p.DeviceID != nil
}

// NewProgram is the registration input.
type NewProgram struct {
	Name        string
	Description string
}

func (n *NewProgram) Validate() error {
	v := common.NewValidationError()
	validateRequired(v, "name", n.Name)
	return v.Err()
}

// ProgramUpdate is the edit input. Placement is not editable here.
type ProgramUpdate struct {
	Name        string
	Description string
}

func (u *ProgramUpdate) Validate() error {
	v := common.NewValidationError()
	validateRequired(v, "name", u.Name)
	return v.Err()
}
