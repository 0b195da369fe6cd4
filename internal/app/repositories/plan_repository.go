package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kaan/degreeplan/internal/app/models"
	"github.com/kaan/degreeplan/internal/db"
	"github.com/kaan/degreeplan/internal/pkg/apperrors"
	"github.com/kaan/degreeplan/internal/pkg/dberrors"
	"github.com/kaan/degreeplan/internal/planning"
)

// PlanRepository handles degree plan database operations. A plan row owns its
// terms and planned courses; schedule writes replace the term rows inside a
// transaction so a stored plan is always a consistent snapshot.
type PlanRepository struct {
	db *db.PostgresDB
}

// NewPlanRepository creates a new PlanRepository
func NewPlanRepository(database *db.PostgresDB) *PlanRepository {
	return &PlanRepository{db: database}
}

// Create inserts a new, empty plan
func (r *PlanRepository) Create(ctx context.Context, plan *models.Plan) error {
	now := time.Now()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO plans (id, user_id, name, program_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		plan.ID, plan.UserID, plan.Name, plan.ProgramID, plan.CreatedAt, plan.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "plans_pkey") {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error creating plan: %w", err)
	}

	return nil
}

// GetByID retrieves a plan together with its full schedule
func (r *PlanRepository) GetByID(ctx context.Context, id string) (*models.Plan, error) {
	plan := &models.Plan{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, user_id, name, program_id, created_at, updated_at
		FROM plans
		WHERE id = $1`, id).Scan(
		&plan.ID, &plan.UserID, &plan.Name, &plan.ProgramID, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, fmt.Errorf("error retrieving plan: %w", err)
	}

	schedule, err := r.loadSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	plan.Schedule = schedule

	return plan, nil
}

// ListByUser retrieves a user's plans without their schedules, newest first
func (r *PlanRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Plan, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, user_id, name, program_id, created_at, updated_at
		FROM plans
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*models.Plan
	for rows.Next() {
		plan := &models.Plan{}
		err := rows.Scan(&plan.ID, &plan.UserID, &plan.Name, &plan.ProgramID,
			&plan.CreatedAt, &plan.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning plan: %w", err)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plans: %w", err)
	}

	return plans, nil
}

// Delete removes a plan and, through cascading constraints, its schedule
func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting plan: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlanNotFound
	}
	return nil
}

// SaveSchedule persists the plan's current schedule, replacing whatever was
// stored before. The plan's metadata (name, program) is written in the same
// transaction.
func (r *PlanRepository) SaveSchedule(ctx context.Context, plan *models.Plan) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE plans
			SET name = $1, program_id = $2, updated_at = $3
			WHERE id = $4`,
			plan.Name, plan.ProgramID, time.Now(), plan.ID)
		if err != nil {
			return fmt.Errorf("error updating plan: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrPlanNotFound
		}

		// Cascade removes the term's planned courses as well.
		if _, err := tx.Exec(ctx, `DELETE FROM plan_terms WHERE plan_id = $1`, plan.ID); err != nil {
			return fmt.Errorf("error clearing plan terms: %w", err)
		}

		if plan.Schedule == nil {
			return nil
		}

		for _, term := range plan.Schedule.Terms {
			var termRowID int64
			err := tx.QueryRow(ctx, `
				INSERT INTO plan_terms (plan_id, term_key, year, season, max_credits)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id`,
				plan.ID, term.ID, term.Year, term.Season, term.MaxCredits).Scan(&termRowID)
			if err != nil {
				return fmt.Errorf("error inserting plan term %s: %w", term.ID, err)
			}

			for _, course := range term.Courses {
				_, err := tx.Exec(ctx, `
					INSERT INTO plan_courses (plan_term_id, code, credits, earned_credits, status, grade)
					VALUES ($1, $2, $3, $4, $5, $6)`,
					termRowID, course.Code, course.Credits, course.EarnedCredits,
					course.Status, course.Grade)
				if err != nil {
					return fmt.Errorf("error inserting planned course %s: %w", course.Code, err)
				}
			}
		}

		return nil
	})
}

// loadSchedule reads the terms and planned courses belonging to a plan
func (r *PlanRepository) loadSchedule(ctx context.Context, planID string) (*planning.Plan, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT t.term_key, t.year, t.season, t.max_credits,
		       c.code, c.credits, c.earned_credits, c.status, c.grade
		FROM plan_terms t
		LEFT JOIN plan_courses c ON c.plan_term_id = t.id
		WHERE t.plan_id = $1
		ORDER BY t.id, c.id`, planID)
	if err != nil {
		return nil, fmt.Errorf("error loading plan schedule: %w", err)
	}
	defer rows.Close()

	schedule := planning.NewPlan()
	terms := make(map[string]*planning.Term)

	for rows.Next() {
		var termKey, season string
		var year, maxCredits int
		var code, status, grade *string
		var credits, earnedCredits *int

		err := rows.Scan(&termKey, &year, &season, &maxCredits,
			&code, &credits, &earnedCredits, &status, &grade)
		if err != nil {
			return nil, fmt.Errorf("error scanning plan schedule row: %w", err)
		}

		term, ok := terms[termKey]
		if !ok {
			term = &planning.Term{
				ID:         termKey,
				Year:       year,
				Season:     planning.Season(season),
				MaxCredits: maxCredits,
			}
			terms[termKey] = term
			schedule.Terms = append(schedule.Terms, term)
		}

		if code == nil {
			continue // term without courses
		}

		course := planning.PlannedCourse{
			Code:   *code,
			Status: planning.StatusPlanned,
		}
		if credits != nil {
			course.Credits = *credits
		}
		if earnedCredits != nil {
			course.EarnedCredits = *earnedCredits
		}
		if status != nil {
			course.Status = planning.Status(*status)
		}
		if grade != nil {
			course.Grade = planning.Grade(*grade)
		}
		term.Courses = append(term.Courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plan schedule: %w", err)
	}

	return schedule, nil
}
