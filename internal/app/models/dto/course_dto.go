package dto

import (
	"github.com/kaan/degreeplan/internal/app/models"
)

// CourseListResponse represents a page of catalog courses
type CourseListResponse struct {
	Courses  []*models.Course `json:"courses"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}
