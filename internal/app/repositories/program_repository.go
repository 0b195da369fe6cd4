package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaan/degreeplan/internal/app/models"
	"github.com/kaan/degreeplan/internal/pkg/apperrors"
	"github.com/kaan/degreeplan/internal/pkg/dberrors"
)

// ProgramRepository handles degree program database operations. Requirement
// categories are stored as a jsonb column since they are read-only reference
// data evaluated as a whole.
type ProgramRepository struct {
	db *pgxpool.Pool
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{db: db}
}

// Create inserts a degree program and returns its ID
func (r *ProgramRepository) Create(ctx context.Context, program *models.DegreeProgram) (int64, error) {
	categories, err := json.Marshal(program.Categories)
	if err != nil {
		return 0, fmt.Errorf("error encoding categories for %s: %w", program.Code, err)
	}

	var id int64
	err = r.db.QueryRow(ctx, `
		INSERT INTO degree_programs (code, name, total_credits, categories)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		program.Code, program.Name, program.TotalCredits, categories).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "degree_programs_code_key") {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		return 0, fmt.Errorf("error creating program: %w", err)
	}

	return id, nil
}

// GetByID retrieves a program by ID
func (r *ProgramRepository) GetByID(ctx context.Context, id int64) (*models.DegreeProgram, error) {
	return r.scanProgram(r.db.QueryRow(ctx, `
		SELECT id, code, name, total_credits, categories
		FROM degree_programs
		WHERE id = $1`, id))
}

// GetByCode retrieves a program by its short code
func (r *ProgramRepository) GetByCode(ctx context.Context, code string) (*models.DegreeProgram, error) {
	return r.scanProgram(r.db.QueryRow(ctx, `
		SELECT id, code, name, total_credits, categories
		FROM degree_programs
		WHERE code = $1`, code))
}

// List retrieves all degree programs ordered by code
func (r *ProgramRepository) List(ctx context.Context) ([]*models.DegreeProgram, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, code, name, total_credits, categories
		FROM degree_programs
		ORDER BY code ASC`)
	if err != nil {
		return nil, fmt.Errorf("error listing programs: %w", err)
	}
	defer rows.Close()

	var programs []*models.DegreeProgram
	for rows.Next() {
		program, err := r.scanProgram(rows)
		if err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating programs: %w", err)
	}

	return programs, nil
}

func (r *ProgramRepository) scanProgram(row pgx.Row) (*models.DegreeProgram, error) {
	program := &models.DegreeProgram{}
	var categories []byte
	err := row.Scan(&program.ID, &program.Code, &program.Name, &program.TotalCredits, &categories)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}

	if len(categories) > 0 {
		if err := json.Unmarshal(categories, &program.Categories); err != nil {
			return nil, fmt.Errorf("error decoding categories for %s: %w", program.Code, err)
		}
	}

	return program, nil
}
