package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaan/degreeplan/internal/app/models"
	"github.com/kaan/degreeplan/internal/pkg/apperrors"
	"github.com/kaan/degreeplan/internal/pkg/dberrors"
	"github.com/kaan/degreeplan/internal/pkg/logger"
	"github.com/kaan/degreeplan/internal/planning"
)

// CourseRepository handles catalog course database operations. Prerequisite
// and corequisite expression trees are stored as jsonb.
type CourseRepository struct {
	db    *pgxpool.Pool
	sb    squirrel.StatementBuilderType
	cache *CatalogCache
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool, cache *CatalogCache) *CourseRepository {
	return &CourseRepository{
		db:    db,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		cache: cache,
	}
}

// Create inserts a catalog course and returns its ID
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	prereqs, coreqs, err := marshalExprs(course)
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.db.QueryRow(ctx, `
		INSERT INTO courses (code, subject, title, description, credits, prerequisites, corequisites)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		course.Code, course.Subject, course.Title, course.Description,
		course.Credits, prereqs, coreqs).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	if r.cache.Enabled() {
		r.cache.InvalidateCourse(ctx, course.Code)
	}

	return id, nil
}

// GetByCode retrieves a course by its catalog code, consulting the cache first
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	if course, err := r.cache.GetCourse(ctx, code); err == nil {
		return course, nil
	} else if !errors.Is(err, ErrCacheMiss) {
		// Cache trouble must not take down catalog reads.
		logger.Warn().Err(err).Str("code", code).Msg("Course cache lookup failed")
	}

	course, err := r.scanCourse(r.db.QueryRow(ctx, `
		SELECT id, code, subject, title, description, credits, prerequisites, corequisites
		FROM courses
		WHERE code = $1`, code))
	if err != nil {
		return nil, err
	}

	r.cache.SetCourse(ctx, course)
	return course, nil
}

// List retrieves catalog courses, optionally filtered by subject prefix or a
// case-insensitive search over code and title
func (r *CourseRepository) List(ctx context.Context, subject, search string, limit, offset int) ([]*models.Course, int, error) {
	base := r.sb.Select("id", "code", "subject", "title", "description", "credits", "prerequisites", "corequisites").
		From("courses")
	countQ := r.sb.Select("COUNT(*)").From("courses")

	if subject != "" {
		base = base.Where(squirrel.Eq{"subject": subject})
		countQ = countQ.Where(squirrel.Eq{"subject": subject})
	}
	if search != "" {
		like := "%" + search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"code": like},
			squirrel.ILike{"title": like},
		}
		base = base.Where(cond)
		countQ = countQ.Where(cond)
	}

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build course count query: %w", err)
	}
	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	sql, args, err := base.OrderBy("code ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build course list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := r.scanCourse(rows)
		if err != nil {
			return nil, 0, err
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating courses: %w", err)
	}

	return courses, total, nil
}

// GetByCodes retrieves the catalog rows for a set of codes, keyed by code.
// Codes without a catalog row are simply absent from the result.
func (r *CourseRepository) GetByCodes(ctx context.Context, codes []string) (map[string]*models.Course, error) {
	result := make(map[string]*models.Course, len(codes))
	if len(codes) == 0 {
		return result, nil
	}

	sql, args, err := r.sb.Select("id", "code", "subject", "title", "description", "credits", "prerequisites", "corequisites").
		From("courses").
		Where(squirrel.Eq{"code": codes}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build courses by codes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses by codes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		course, err := r.scanCourse(rows)
		if err != nil {
			return nil, err
		}
		result[course.Code] = course
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}

	return result, nil
}

func (r *CourseRepository) scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	var prereqs, coreqs []byte
	err := row.Scan(
		&course.ID, &course.Code, &course.Subject, &course.Title,
		&course.Description, &course.Credits, &prereqs, &coreqs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	if err := unmarshalExprs(prereqs, &course.Prerequisites); err != nil {
		return nil, fmt.Errorf("error decoding prerequisites for %s: %w", course.Code, err)
	}
	if err := unmarshalExprs(coreqs, &course.Corequisites); err != nil {
		return nil, fmt.Errorf("error decoding corequisites for %s: %w", course.Code, err)
	}

	return course, nil
}

func marshalExprs(course *models.Course) ([]byte, []byte, error) {
	prereqs, err := json.Marshal(course.Prerequisites)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding prerequisites for %s: %w", course.Code, err)
	}
	coreqs, err := json.Marshal(course.Corequisites)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding corequisites for %s: %w", course.Code, err)
	}
	return prereqs, coreqs, nil
}

func unmarshalExprs(data []byte, dest *[]planning.Expr) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}
