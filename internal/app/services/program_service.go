package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kaan/degreeplan/internal/app/models"
	"github.com/kaan/degreeplan/internal/app/repositories"
)

// ProgramService provides read access to degree programs
type ProgramService struct {
	programRepo *repositories.ProgramRepository
	logger      zerolog.Logger
}

// NewProgramService creates a new ProgramService
func NewProgramService(programRepo *repositories.ProgramRepository, logger zerolog.Logger) *ProgramService {
	return &ProgramService{
		programRepo: programRepo,
		logger:      logger,
	}
}

// ListPrograms retrieves all degree programs
func (s *ProgramService) ListPrograms(ctx context.Context) ([]*models.DegreeProgram, error) {
	return s.programRepo.List(ctx)
}

// GetProgram retrieves a degree program by ID
func (s *ProgramService) GetProgram(ctx context.Context, id int64) (*models.DegreeProgram, error) {
	return s.programRepo.GetByID(ctx, id)
}
