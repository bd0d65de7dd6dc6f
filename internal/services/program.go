package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/azarovs/parkd/internal/logging"
	"github.com/azarovs/parkd/internal/models"
	"github.com/azarovs/parkd/internal/repositories/repomanager"
)

// ProgramService handles program registration and editing. Programs are
// always created unassigned.
type ProgramService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	log   logging.Logger
}

func NewProgramService(db *sql.DB, repos repomanager.RepositoryManager, log logging.Logger) *ProgramService {
	return &ProgramService{db: db, repos: repos, log: log}
}

func (s *ProgramService) Create(ctx context.Context, input *models.NewProgram) (*models.Program, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	program := &models.Program{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repos.Programs(s.db).Create(ctx, program); err != nil {
		s.log.Error(ctx, "program creation failed", "error", err)
		return nil, err
	}

	s.log.Info(ctx, "program created", "program_id", program.ID)
	return program, nil
}

func (s *ProgramService) Update(ctx context.Context, id string, input *models.ProgramUpdate) (*models.Program, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	repo := s.repos.Programs(s.db)
	program, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	program.Name = input.Name
	program.Description = input.Description

	if err := repo.Update(ctx, program); err != nil {
		s.log.Error(ctx, "program update failed", "program_id", id, "error", err)
		return nil, err
	}

	return program, nil
}
