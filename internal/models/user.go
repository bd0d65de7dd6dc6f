// Package models defines the persisted entities (User, Device, Program) and
// the validated input DTOs that are mapped onto them. Entities never hold
// plaintext passwords; services hash before mapping.
package models

import (
	"net/mail"
	"strings"
	"time"

	"github.com/azarovs/parkd/internal/common"
)

// User is an administrator-managed account. A user owns zero or more devices
// through Device.OwnerID.
type User struct {
	ID           string
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser is the registration input. Password is plaintext here and only
// here; it is hashed before a User is built.
type NewUser struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// Validate checks field shape only. Uniqueness is checked by the service
// against the store inside the same transaction.
func (n *NewUser) Validate() error {
	v := common.NewValidationError()
	validateEmail(v, n.Email)
	validateRequired(v, "username", n.Username)
	validateRequired(v, "first_name", n.FirstName)
	validateRequired(v, "last_name", n.LastName)
	if strings.TrimSpace(n.Password) == "" {
		v.Add("password", "is required")
	}
	return v.Err()
}

// UserUpdate is the edit input. Password is optional: empty means keep the
// current hash.
type UserUpdate struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

func (u *UserUpdate) Validate() error {
	v := common.NewValidationError()
	validateEmail(v, u.Email)
	validateRequired(v, "username", u.Username)
	validateRequired(v, "first_name", u.FirstName)
	validateRequired(v, "last_name", u.LastName)
	return v.Err()
}

func validateRequired(v *common.ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

func validateEmail(v *common.ValidationError, email string) {
	if strings.TrimSpace(email) == "" {
		v.Add("email", "is required")
		return
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		v.Add("email", "is not a valid email address")
	}
}
