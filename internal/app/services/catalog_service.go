package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kaan/degreeplan/internal/app/models"
	"github.com/kaan/degreeplan/internal/app/repositories"
	"github.com/kaan/degreeplan/internal/pkg/apperrors"
)

// CatalogService provides read access to catalog courses
type CatalogService struct {
	courseRepo *repositories.CourseRepository
	logger     zerolog.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(courseRepo *repositories.CourseRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// GetCourse retrieves a single catalog course by code
func (s *CatalogService) GetCourse(ctx context.Context, code string) (*models.Course, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: course code cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.courseRepo.GetByCode(ctx, code)
}

// ListCourses retrieves catalog courses with optional subject and search
// filters. Page numbering starts at 1.
func (s *CatalogService) ListCourses(ctx context.Context, subject, search string, page, pageSize int) ([]*models.Course, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	return s.courseRepo.List(ctx, strings.ToUpper(strings.TrimSpace(subject)), strings.TrimSpace(search), pageSize, offset)
}
