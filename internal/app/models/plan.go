package models

import (
	"time"

	"github.com/kaan/degreeplan/internal/planning"
)

// Plan represents one student's degree plan as stored in the 'plans' table
// plus its terms and courses from 'plan_terms' and 'plan_courses'. Schedule
// is the in-memory plan state the engine evaluates.
type Plan struct {
	ID        string         `json:"id" db:"id"`
	UserID    int64          `json:"userId" db:"user_id"`
	Name      string         `json:"name" db:"name" example:"Four year plan"`
	ProgramID *int64         `json:"programId,omitempty" db:"program_id"` // Nullable
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt" db:"updated_at"`
	Schedule  *planning.Plan `json:"schedule"`

	// Relation (populated when needed)
	Program *DegreeProgram `json:"program,omitempty"`
}
