package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/erenyalcin/campushare/internal/app/models"
	"github.com/erenyalcin/campushare/internal/pkg/logger"
)

// ErrCourseNotFound is returned when a course is not found.
var ErrCourseNotFound = ErrNotFound

// CourseRepository handles course database operations. The backing table is
// named "cource"; the misspelling is a schema-compatibility artifact of the
// system this replaces and must stay.
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateCourse creates a new course
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("cource").
		Columns("name").
		Values(course.Name).
		Suffix("RETURNING id, uid, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&course.ID, &course.UID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetCourseByID retrieves a course by internal id
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return r.getCourse(ctx, squirrel.Eq{"id": id})
}

// GetCourseByUID retrieves a course by external uid
func (r *CourseRepository) GetCourseByUID(ctx context.Context, uid uuid.UUID) (*models.Course, error) {
	return r.getCourse(ctx, squirrel.Eq{"uid": uid})
}

func (r *CourseRepository) getCourse(ctx context.Context, pred squirrel.Eq) (*models.Course, error) {
	sql, args, err := r.sb.Select("id", "uid", "name", "created_at", "updated_at").
		From("cource").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&course.ID, &course.UID, &course.Name, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course: %w", err)
	}

	return course, nil
}

// GetAllCourses retrieves all courses ordered by name
func (r *CourseRepository) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.sb.Select("id", "uid", "name", "created_at", "updated_at").
		From("cource").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.UID, &course.Name, &course.CreatedAt, &course.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}
