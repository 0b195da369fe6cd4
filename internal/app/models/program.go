package models

import (
	"github.com/kaan/degreeplan/internal/planning"
)

// DegreeProgram represents a degree program and its requirement categories as
// stored in the 'degree_programs' table. Categories are read-only reference
// data held in a jsonb column.
type DegreeProgram struct {
	ID           int64               `json:"id" db:"id"`
	Code         string              `json:"code" db:"code" example:"BSCS"`
	Name         string              `json:"name" db:"name" example:"Bachelor of Science in Computer Science"`
	TotalCredits int                 `json:"totalCredits" db:"total_credits" example:"122"`
	Categories   []planning.Category `json:"categories" db:"categories"`
}
