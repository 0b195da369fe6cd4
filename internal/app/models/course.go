package models

import (
	"github.com/kaan/degreeplan/internal/planning"
)

// Course represents a catalog course as stored in the 'courses' table. The
// prerequisite and corequisite expression trees live in jsonb columns.
type Course struct {
	ID            int64           `json:"id" db:"id"`
	Code          string          `json:"code" db:"code" example:"CS 1331"`
	Subject       string          `json:"subject" db:"subject" example:"CS"`
	Title         string          `json:"title" db:"title" example:"Introduction to Object-Oriented Programming"`
	Description   *string         `json:"description,omitempty" db:"description"` // Nullable
	Credits       int             `json:"credits" db:"credits" example:"3"`
	Prerequisites []planning.Expr `json:"prerequisites,omitempty" db:"prerequisites"`
	Corequisites  []planning.Expr `json:"corequisites,omitempty" db:"corequisites"`
}

// ToPlanning converts the catalog row into the engine's course record.
func (c *Course) ToPlanning() planning.Course {
	return planning.Course{
		Code:          c.Code,
		Title:         c.Title,
		Credits:       c.Credits,
		Prerequisites: c.Prerequisites,
		Corequisites:  c.Corequisites,
	}
}
