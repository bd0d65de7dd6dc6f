// Package services contains the business logic of the administration
// backend: catalog services for creating and editing entities, the
// assignment service owning the relationship lifecycle, and the read-only
// directory service.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/azarovs/parkd/internal/common"
	"github.com/azarovs/parkd/internal/dbx"
	"github.com/azarovs/parkd/internal/hashing"
	"github.com/azarovs/parkd/internal/logging"
	"github.com/azarovs/parkd/internal/models"
	"github.com/azarovs/parkd/internal/repositories/repomanager"
	"github.com/azarovs/parkd/internal/repositories/users"
)

// UserService handles account registration and editing. Passwords are hashed
// through the injected Hasher before anything touches a repository.
type UserService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	hasher hashing.Hasher
	log    logging.Logger
}

func NewUserService(db *sql.DB, repos repomanager.RepositoryManager, hasher hashing.Hasher, log logging.Logger) *UserService {
	return &UserService{db: db, repos: repos, hasher: hasher, log: log}
}

// Register validates the input, enforces email/username uniqueness inside
// the same transaction as the insert, and persists the new user.
func (s *UserService) Register(ctx context.Context, input *models.NewUser) (*models.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Users(tx)
		if err := checkUnique(ctx, repo, input.Email, input.Username, ""); err != nil {
			return err
		}
		return repo.Create(ctx, user)
	})
	if err != nil {
		var perr *common.PersistenceError
		if errors.As(err, &perr) {
			s.log.Error(ctx, "user registration failed", "op", perr.Op, "error", err)
		}
		return nil, err
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Update re-validates the edit input and rewrites the user. An empty
// password keeps the current hash; a non-empty one is re-hashed.
func (s *UserService) Update(ctx context.Context, id string, input *models.UserUpdate) (*models.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Users(tx)

		user, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := checkUnique(ctx, repo, input.Email, input.Username, id); err != nil {
			return err
		}

		user.Email = input.Email
		user.Username = input.Username
		user.FirstName = input.FirstName
		user.LastName = input.LastName
		if input.Password != "" {
			hash, err := s.hasher.Hash(input.Password)
			if err != nil {
				return fmt.Errorf("hashing password: %w", err)
			}
			user.PasswordHash = hash
		}
		user.UpdatedAt = time.Now().UTC()

		if err := repo.Update(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user updated", "user_id", id)
	return updated, nil
}

// checkUnique reports email/username collisions as a per-field
// ValidationError. excludeID skips the record being edited.
func checkUnique(ctx context.Context, repo users.Repository, email, username, excludeID string) error {
	v := common.NewValidationError()

	existing, err := repo.GetByEmail(ctx, email)
	if err == nil {
		if existing.ID != excludeID {
			v.Add("email", "is already taken")
		}
	} else if !errors.Is(err, common.ErrorNotFound) {
		return err
	}

	existing, err = repo.GetByUsername(ctx, username)
	if err == nil {
		if existing.ID != excludeID {
			v.Add("username", "is already taken")
		}
	} else if !errors.Is(err, common.ErrorNotFound) {
		return err
	}

	return v.Err()
}
