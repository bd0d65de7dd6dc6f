package models

import (
	"time"

	"github.com/azarovs/parkd/internal/common"
)

// Device is a managed piece of hardware. OwnerID is nil while the device is
// unassigned; when set it must reference an existing User.
type Device struct {
	ID          string
	Name        string
	Description string
	Type        DeviceType
	OwnerID     *string
	CreatedAt   time.Time
}

// Assigned reports whether the device currently has an owner.
func (d *Device) Assigned() bool {
	return d.OwnerID != nil
}

// NewDevice is the registration input. Type arrives as a raw code and is
// checked against the recognized set.
type NewDevice struct {
	Name        string
	Description string
	Type        string
}

func (n *NewDevice) Validate() error {
	v := common.NewValidationError()
	validateRequired(v, "name", n.Name)
	validateDeviceType(v, n.Type)
	return v.Err()
}

// DeviceUpdate is the edit input. Ownership is not editable here; the
// assignment service owns that transition.
type DeviceUpdate struct {
	Name        string
	Description string
	Type        string
}

func (u *DeviceUpdate) Validate() error {
	v := common.NewValidationError()
	validateRequired(v, "name", u.Name)
	validateDeviceType(v, u.Type)
	return v.Err()
}

func validateDeviceType(v *common.ValidationError, code string) {
	if code == "" {
		v.Add("type", "is required")
		return
	}
	if _, err := ParseDeviceType(code); err != nil {
		v.Add("type", "is not a recognized device type")
	}
}
