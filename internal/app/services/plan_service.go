package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kaan/degreeplan/internal/app/models"
	"github.com/kaan/degreeplan/internal/app/models/dto"
	"github.com/kaan/degreeplan/internal/app/repositories"
	"github.com/kaan/degreeplan/internal/pkg/apperrors"
	"github.com/kaan/degreeplan/internal/planning"
)

// PlanService owns the degree plan lifecycle: editing the schedule, running
// the prerequisite resolver on every add, and computing GPA and requirement
// progress. All operations are scoped to the plan's owner.
type PlanService struct {
	planRepo    *repositories.PlanRepository
	courseRepo  *repositories.CourseRepository
	programRepo *repositories.ProgramRepository
	logger      zerolog.Logger
}

// NewPlanService creates a new PlanService
func NewPlanService(
	planRepo *repositories.PlanRepository,
	courseRepo *repositories.CourseRepository,
	programRepo *repositories.ProgramRepository,
	logger zerolog.Logger,
) *PlanService {
	return &PlanService{
		planRepo:    planRepo,
		courseRepo:  courseRepo,
		programRepo: programRepo,
		logger:      logger,
	}
}

// CreatePlan creates a new, empty degree plan for the user
func (s *PlanService) CreatePlan(ctx context.Context, userID int64, req *dto.CreatePlanRequest) (*models.Plan, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: plan name cannot be empty", apperrors.ErrValidationFailed)
	}

	if req.ProgramID != nil {
		if _, err := s.programRepo.GetByID(ctx, *req.ProgramID); err != nil {
			return nil, err
		}
	}

	plan := &models.Plan{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      strings.TrimSpace(req.Name),
		ProgramID: req.ProgramID,
		Schedule:  planning.NewPlan(),
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.Info().Str("planID", plan.ID).Int64("userID", userID).Msg("Plan created")
	return plan, nil
}

// ListPlans retrieves the user's plans without schedules
func (s *PlanService) ListPlans(ctx context.Context, userID int64) ([]*models.Plan, error) {
	return s.planRepo.ListByUser(ctx, userID)
}

// GetPlan retrieves one of the user's plans with its full schedule
func (s *PlanService) GetPlan(ctx context.Context, userID int64, planID string) (*models.Plan, error) {
	return s.loadOwnedPlan(ctx, userID, planID)
}

// DeletePlan removes one of the user's plans
func (s *PlanService) DeletePlan(ctx context.Context, userID int64, planID string) error {
	if _, err := s.loadOwnedPlan(ctx, userID, planID); err != nil {
		return err
	}
	return s.planRepo.Delete(ctx, planID)
}

// AddTerm appends a new term to the plan. The term's identifier is derived
// from season and year and stays stable for the plan's lifetime.
func (s *PlanService) AddTerm(ctx context.Context, userID int64, planID string, req *dto.AddTermRequest) (*models.Plan, error) {
	season := planning.Season(strings.ToUpper(strings.TrimSpace(req.Season)))
	if !season.IsValid() {
		return nil, apperrors.ErrInvalidSeason
	}

	plan, err := s.loadOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	term := &planning.Term{
		ID:         termKey(season, req.Year),
		Year:       req.Year,
		Season:     season,
		MaxCredits: req.MaxCredits,
	}
	if err := plan.Schedule.AddTerm(term); err != nil {
		return nil, mapScheduleError(err)
	}

	if err := s.planRepo.SaveSchedule(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// RemoveTerm deletes a term and every course scheduled in it
func (s *PlanService) RemoveTerm(ctx context.Context, userID int64, planID, termID string) (*models.Plan, error) {
	plan, err := s.loadOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	if err := plan.Schedule.RemoveTerm(termID); err != nil {
		return nil, mapScheduleError(err)
	}

	if err := s.planRepo.SaveSchedule(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// AddCourse runs the prerequisite resolver for the catalog course and, when
// the verdict allows it, schedules the course into the term. A rejecting
// verdict is a normal response, not an error.
func (s *PlanService) AddCourse(ctx context.Context, userID int64, planID, termID string, req *dto.AddCourseRequest) (*dto.AddCourseResponse, error) {
	plan, err := s.loadOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}
	if plan.Schedule.Term(termID) == nil {
		return nil, apperrors.ErrPlanTermNotFound
	}

	course, err := s.courseRepo.GetByCode(ctx, strings.TrimSpace(req.Code))
	if err != nil {
		return nil, err
	}

	verdict := planning.CheckCourse(course.ToPlanning(), plan.Schedule)
	if !verdict.CanAdd {
		return &dto.AddCourseResponse{
			Verdict:             verdict,
			PrerequisiteCourses: s.prerequisiteDetails(ctx, course),
		}, nil
	}

	entry := planning.PlannedCourse{
		Code:    course.Code,
		Credits: course.Credits,
		Status:  planning.StatusPlanned,
	}
	if err := plan.Schedule.AddCourse(termID, entry); err != nil {
		return nil, mapScheduleError(err)
	}

	if term := plan.Schedule.Term(termID); term != nil && term.Overloaded() {
		verdict.Warnings = append(verdict.Warnings,
			fmt.Sprintf("Term %s exceeds its credit limit (%d scheduled, %d allowed)",
				term.ID, term.ScheduledCredits(), term.MaxCredits))
		verdict.IsBlocked = true
	}

	if err := s.planRepo.SaveSchedule(ctx, plan); err != nil {
		return nil, err
	}

	return &dto.AddCourseResponse{Verdict: verdict, Plan: plan}, nil
}

// prerequisiteDetails batch-resolves the catalog rows referenced by the
// course's prerequisite expressions. A lookup failure only degrades the
// payload, never the verdict.
func (s *PlanService) prerequisiteDetails(ctx context.Context, course *models.Course) []*models.Course {
	codes := planning.PrerequisiteCodes(course.ToPlanning())
	if len(codes) == 0 {
		return nil
	}
	byCode, err := s.courseRepo.GetByCodes(ctx, codes)
	if err != nil {
		s.logger.Warn().Err(err).Str("course", course.Code).Msg("Failed to resolve prerequisite course details")
		return nil
	}
	details := make([]*models.Course, 0, len(codes))
	for _, code := range codes {
		if c, ok := byCode[code]; ok {
			details = append(details, c)
		}
	}
	return details
}

// ValidateCourse runs the prerequisite resolver without touching the plan
func (s *PlanService) ValidateCourse(ctx context.Context, userID int64, planID, code string) (*planning.Verdict, error) {
	plan, err := s.loadOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return nil, err
	}

	verdict := planning.CheckCourse(course.ToPlanning(), plan.Schedule)
	return &verdict, nil
}

// RemoveCourse removes a course from a term
func (s *PlanService) RemoveCourse(ctx context.Context, userID int64, planID, termID, code string) (*models.Plan, error) {
	plan, err := s.loadOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	if err := plan.Schedule.RemoveCourse(termID, code); err != nil {
		return nil, mapScheduleError(err)
	}

	if err := s.planRepo.SaveSchedule(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// MoveCourse relocates a course between terms, preserving its status and grade
func (s *PlanService) MoveCourse(ctx context.Context, userID int64, planID string, req *dto.MoveCourseRequest) (*models.Plan, error) {
	plan, err := s.loadOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	if err := plan.Schedule.MoveCourse(req.FromTermID, req.ToTermID, req.Code); err != nil {
		return nil, mapScheduleError(err)
	}

	if err := s.planRepo.SaveSchedule(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// UpdateCourse changes a planned course's status or records its final grade
func (s *PlanService) UpdateCourse(ctx context.Context, userID int64, planID, termID, code string, req *dto.UpdateCourseRequest) (*models.Plan, error) {
	plan, err := s.loadOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	if req.Grade != "" {
		grade := planning.Grade(strings.ToUpper(req.Grade))
		if !grade.IsValid() {
			return nil, apperrors.ErrInvalidGrade
		}
		if err := plan.Schedule.SetGrade(termID, code, grade); err != nil {
			return nil, mapScheduleError(err)
		}
	} else if req.Status != "" {
		status := planning.Status(strings.ToUpper(req.Status))
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		if err := plan.Schedule.SetStatus(termID, code, status); err != nil {
			return nil, mapScheduleError(err)
		}
	} else {
		return nil, fmt.Errorf("%w: either status or grade must be provided", apperrors.ErrValidationFailed)
	}

	if err := s.planRepo.SaveSchedule(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// GetGPA computes semester GPAs and the cumulative GPA over completed courses
func (s *PlanService) GetGPA(ctx context.Context, userID int64, planID string) (*dto.GPAResponse, error) {
	plan, err := s.loadOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	terms := plan.Schedule.SortedTerms()
	resp := &dto.GPAResponse{
		Terms:      make([]dto.TermGPAResponse, 0, len(terms)),
		Cumulative: planning.CumulativeGPA(terms),
	}
	for _, term := range terms {
		resp.Terms = append(resp.Terms, dto.TermGPAResponse{
			TermID:  term.ID,
			Year:    term.Year,
			Season:  string(term.Season),
			Credits: term.ScheduledCredits(),
			GPA:     planning.TermGPA(term.Courses),
		})
	}

	return resp, nil
}

// GetProgress evaluates the plan against its degree program's requirements
func (s *PlanService) GetProgress(ctx context.Context, userID int64, planID string) (*planning.ProgressReport, error) {
	plan, err := s.loadOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}
	if plan.ProgramID == nil {
		return nil, apperrors.ErrPlanHasNoProgram
	}

	program, err := s.programRepo.GetByID(ctx, *plan.ProgramID)
	if err != nil {
		return nil, err
	}

	report := planning.EvaluateProgress(program.Categories, plan.Schedule)
	return &report, nil
}

// loadOwnedPlan fetches a plan and verifies it belongs to the user. Plans of
// other users are reported as forbidden, not as missing, so a user can tell
// their own stale link from someone else's plan.
func (s *PlanService) loadOwnedPlan(ctx context.Context, userID int64, planID string) (*models.Plan, error) {
	if _, err := uuid.Parse(planID); err != nil {
		return nil, fmt.Errorf("%w: invalid plan ID", apperrors.ErrValidationFailed)
	}

	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, apperrors.ErrPermissionDenied
	}
	return plan, nil
}

// termKey derives the stable term identifier from season and year
func termKey(season planning.Season, year int) string {
	return fmt.Sprintf("%s%d", strings.ToLower(string(season)), year)
}

// mapScheduleError translates engine errors into API error sentinels
func mapScheduleError(err error) error {
	switch {
	case errors.Is(err, planning.ErrTermNotFound):
		return apperrors.ErrPlanTermNotFound
	case errors.Is(err, planning.ErrTermAlreadyExists):
		return apperrors.ErrTermAlreadyExists
	case errors.Is(err, planning.ErrCourseNotInTerm):
		return apperrors.ErrCourseNotInPlan
	case errors.Is(err, planning.ErrCourseInTerm):
		return apperrors.ErrCourseInTerm
	default:
		return err
	}
}
