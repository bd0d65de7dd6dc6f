// Package fixtures seeds the initial data an empty installation needs:
// a single super-admin account.
package fixtures

import (
	"context"
	"errors"

	"github.com/azarovs/parkd/internal/common"
	"github.com/azarovs/parkd/internal/logging"
	"github.com/azarovs/parkd/internal/models"
	"github.com/azarovs/parkd/internal/services"
)

const (
	adminEmail    = "admin@sent.com"
	adminUsername = "super_admin"
)

// Load registers the super-admin user with the given password. Loading is
// idempotent: if the account already exists the call logs and succeeds.
func Load(ctx context.Context, usersSvc *services.UserService, log logging.Logger, password string) error {
	admin := &models.NewUser{
		Email:     adminEmail,
		Username:  adminUsername,
		FirstName: "Super",
		LastName:  "Admin",
		Password:  password,
	}

	_, err := usersSvc.Register(ctx, admin)
	if err != nil {
		var verr *common.ValidationError
		if errors.As(err, &verr) && taken(verr) {
			log.Info(ctx, "fixtures already loaded", "username", adminUsername)
			return nil
		}
		return err
	}

	log.Info(ctx, "fixtures loaded", "username", adminUsername)
	return nil
}

// taken reports whether the only violations are uniqueness conflicts, i.e.
// the admin account is already present.
func taken(verr *common.ValidationError) bool {
	if len(verr.Fields) == 0 {
		return false
	}
	for field := range verr.Fields {
		if field != "email" && field != "username" {
			return false
		}
	}
	return true
}
