package dto

import (
	"github.com/kaan/degreeplan/internal/app/models"
	"github.com/kaan/degreeplan/internal/planning"
)

// CreatePlanRequest represents a request to create a new degree plan
type CreatePlanRequest struct {
	Name      string `json:"name" binding:"required"`
	ProgramID *int64 `json:"programId,omitempty" binding:"omitempty,min=1"`
}

// AddTermRequest represents a request to add a term to a plan
type AddTermRequest struct {
	Year       int    `json:"year" binding:"required,min=2000,max=2100"`
	Season     string `json:"season" binding:"required" example:"FALL" enums:"FALL,SPRING,SUMMER"`
	MaxCredits int    `json:"maxCredits,omitempty" binding:"omitempty,min=1,max=30"`
}

// AddCourseRequest represents a request to add a catalog course to a term
type AddCourseRequest struct {
	Code string `json:"code" binding:"required" example:"CS 1332"`
}

// MoveCourseRequest represents a request to move a course between terms
type MoveCourseRequest struct {
	Code       string `json:"code" binding:"required" example:"CS 1332"`
	FromTermID string `json:"fromTermId" binding:"required"`
	ToTermID   string `json:"toTermId" binding:"required"`
}

// UpdateCourseRequest represents a status/grade update for a planned course.
// Setting a grade implies completed status.
type UpdateCourseRequest struct {
	Status string `json:"status,omitempty" example:"COMPLETED" enums:"COMPLETED,IN_PROGRESS,PLANNED"`
	Grade  string `json:"grade,omitempty" example:"A" enums:"A,B,C,D,F"`
}

// AddCourseResponse pairs the resolver's verdict with the updated plan. The
// plan is nil when the verdict rejected the add; in that case
// PrerequisiteCourses carries the catalog rows behind the course's
// prerequisite expressions so the client can render titles and credits next
// to the missing requirements.
type AddCourseResponse struct {
	Verdict             planning.Verdict `json:"verdict"`
	Plan                interface{}      `json:"plan,omitempty"`
	PrerequisiteCourses []*models.Course `json:"prerequisiteCourses,omitempty"`
}

// TermGPAResponse reports one term's GPA
type TermGPAResponse struct {
	TermID  string  `json:"termId"`
	Year    int     `json:"year"`
	Season  string  `json:"season"`
	Credits int     `json:"credits"`
	GPA     float64 `json:"gpa"`
}

// GPAResponse reports semester and cumulative GPA for a plan
type GPAResponse struct {
	Terms      []TermGPAResponse `json:"terms"`
	Cumulative float64           `json:"cumulative"`
}
