package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/erenyalcin/campushare/internal/app/models"
	"github.com/erenyalcin/campushare/internal/pkg/logger"
)

// ErrSubjectNotFound is returned when a subject is not found.
var ErrSubjectNotFound = ErrNotFound

// SubjectRepository handles subject database operations
type SubjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateSubject creates a new subject, optionally attached to a course.
func (r *SubjectRepository) CreateSubject(ctx context.Context, subject *models.Subject) error {
	sql, args, err := r.sb.Insert("subject").
		Columns("name", "course_id").
		Values(subject.Name, subject.CourseID).
		Suffix("RETURNING id, uid, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create subject query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&subject.ID, &subject.UID, &subject.CreatedAt, &subject.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create subject query")
		return fmt.Errorf("error creating subject: %w", err)
	}

	return nil
}

// GetSubjectByID retrieves a subject by internal id
func (r *SubjectRepository) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	sql, args, err := r.sb.Select("id", "uid", "name", "course_id", "created_at", "updated_at").
		From("subject").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get subject query: %w", err)
	}

	subject := &models.Subject{}
	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&subject.ID, &subject.UID, &subject.Name, &subject.CourseID, &subject.CreatedAt, &subject.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubjectNotFound
		}
		logger.Error().Err(err).Msg("Error scanning subject row")
		return nil, fmt.Errorf("error getting subject: %w", err)
	}

	return subject, nil
}

// GetAllSubjects retrieves all subjects ordered by name for display.
func (r *SubjectRepository) GetAllSubjects(ctx context.Context) ([]*models.Subject, error) {
	sql, args, err := r.sb.Select("id", "uid", "name", "course_id", "created_at", "updated_at").
		From("subject").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all subjects query")
		return nil, fmt.Errorf("error querying subjects: %w", err)
	}
	defer rows.Close()

	subjects := []*models.Subject{}
	for rows.Next() {
		subject := &models.Subject{}
		if err := rows.Scan(&subject.ID, &subject.UID, &subject.Name, &subject.CourseID, &subject.CreatedAt, &subject.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subject rows: %w", err)
	}

	return subjects, nil
}
