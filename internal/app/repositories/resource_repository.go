package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/erenyalcin/campushare/internal/app/models"
	"github.com/erenyalcin/campushare/internal/db"
	"github.com/erenyalcin/campushare/internal/pkg/logger"
)

// ErrResourceNotFound is returned when a resource is not found.
var ErrResourceNotFound = ErrNotFound

// ResourceDetails is a resource row joined with its taxonomy and uploader,
// flattened to the names the read API exposes.
type ResourceDetails struct {
	ID          int64                   `db:"id"`
	UID         uuid.UUID               `db:"uid"`
	Name        string                  `db:"name"`
	Description *string                 `db:"description"`
	File        *string                 `db:"file"`
	URL         *string                 `db:"url"`
	Category    models.ResourceCategory `db:"category"`
	Type        models.ResourceType     `db:"type"`
	Semester    models.Semester         `db:"semester"`
	CourseName  string                  `db:"course_name"`
	SubjectName string                  `db:"subject_name"`
	SessionName string                  `db:"session_name"`
	CreatorName string                  `db:"creator_name"`
	CreatedAt   time.Time               `db:"created_at"`
	UpdatedAt   time.Time               `db:"updated_at"`
	TagNames    []string
}

// ListResourcesParams holds the optional conjunctive filter predicates.
// UIDs address taxonomy entities; Semester is the stored literal.
type ListResourcesParams struct {
	CourseUID  *uuid.UUID
	SubjectUID *uuid.UUID
	SessionUID *uuid.UUID
	Semester   *string
}

// ResourceRepository handles resource database operations
type ResourceRepository struct {
	db      *pgxpool.Pool
	tagRepo *TagRepository
	sb      squirrel.StatementBuilderType
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(pool *pgxpool.Pool, tagRepo *TagRepository) *ResourceRepository {
	return &ResourceRepository{
		db:      pool,
		tagRepo: tagRepo,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateWithTags persists a resource and its tag associations as a single
// unit of work. Existing tag ids that do not resolve are skipped; new tag
// names are upserted. On any failure the whole creation is rolled back.
func (r *ResourceRepository) CreateWithTags(ctx context.Context, resource *models.Resource, existingTagIDs []int64, newTagNames []string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("resource").
			Columns("name", "description", "file", "url", "category", "type", "semester",
				"course_id", "subject_id", "session_id", "created_by").
			Values(resource.Name, resource.Description, resource.File, resource.URL,
				resource.Category, resource.Type, resource.Semester,
				resource.CourseID, resource.SubjectID, resource.SessionID, resource.CreatedBy).
			Suffix("RETURNING id, uid, created_at, updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create resource query: %w", err)
		}

		err = tx.QueryRow(ctx, sql, args...).
			Scan(&resource.ID, &resource.UID, &resource.CreatedAt, &resource.UpdatedAt)
		if err != nil {
			logger.Error().Err(err).Msg("Error executing create resource query")
			return fmt.Errorf("error creating resource: %w", err)
		}

		tagIDs, err := r.tagRepo.FilterExistingIDs(ctx, tx, existingTagIDs)
		if err != nil {
			return err
		}

		for _, name := range newTagNames {
			tag, err := r.tagRepo.Resolve(ctx, tx, name)
			if err != nil {
				return err
			}
			tagIDs = append(tagIDs, tag.ID)
		}

		for _, tagID := range tagIDs {
			// Re-adding an existing association is a no-op.
			_, err := tx.Exec(ctx,
				`INSERT INTO resource_tags (resource_id, tag_id) VALUES ($1, $2)
				 ON CONFLICT (resource_id, tag_id) DO NOTHING`,
				resource.ID, tagID)
			if err != nil {
				return fmt.Errorf("error attaching tag %d: %w", tagID, err)
			}
		}

		return nil
	})
}

// selectResourceDetailsQuery builds the joined select the read API is
// served from.
func (r *ResourceRepository) selectResourceDetailsQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"r.id", "r.uid", "r.name", "r.description", "r.file", "r.url",
		"r.category", "r.type", "r.semester",
		"c.name AS course_name", "sub.name AS subject_name", "s.name AS session_name",
		"u.username AS creator_name",
		"r.created_at", "r.updated_at",
	).From("resource r").
		Join("cource c ON r.course_id = c.id").
		Join("subject sub ON r.subject_id = sub.id").
		Join("session s ON r.session_id = s.id").
		Join("users u ON r.created_by = u.id")
}

// buildListQuery applies one WHERE conjunct per supplied predicate and the
// storage-level default ordering; the service must not reorder.
func (r *ResourceRepository) buildListQuery(params ListResourcesParams) squirrel.SelectBuilder {
	builder := r.selectResourceDetailsQuery()

	if params.CourseUID != nil {
		builder = builder.Where(squirrel.Eq{"c.uid": *params.CourseUID})
	}
	if params.SubjectUID != nil {
		builder = builder.Where(squirrel.Eq{"sub.uid": *params.SubjectUID})
	}
	if params.SessionUID != nil {
		builder = builder.Where(squirrel.Eq{"s.uid": *params.SessionUID})
	}
	if params.Semester != nil {
		builder = builder.Where(squirrel.Eq{"r.semester": *params.Semester})
	}

	return builder.OrderBy("r.created_at DESC")
}

// ListDetails retrieves resources matching every supplied predicate,
// newest first. Predicates that match nothing simply produce an empty
// list.
func (r *ResourceRepository) ListDetails(ctx context.Context, params ListResourcesParams) ([]*ResourceDetails, error) {
	sqlStr, args, err := r.buildListQuery(params).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list resources query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list resources query")
		return nil, fmt.Errorf("error querying resources: %w", err)
	}
	defer rows.Close()

	details := make([]*ResourceDetails, 0)
	for rows.Next() {
		d := &ResourceDetails{}
		err := rows.Scan(
			&d.ID, &d.UID, &d.Name, &d.Description, &d.File, &d.URL,
			&d.Category, &d.Type, &d.Semester,
			&d.CourseName, &d.SubjectName, &d.SessionName,
			&d.CreatorName,
			&d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning resource row: %w", err)
		}
		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resource rows: %w", err)
	}

	if err := r.loadTagNames(ctx, details); err != nil {
		return nil, err
	}

	return details, nil
}

// loadTagNames fills TagNames for all rows with one query instead of one
// per resource.
func (r *ResourceRepository) loadTagNames(ctx context.Context, details []*ResourceDetails) error {
	if len(details) == 0 {
		return nil
	}

	byID := make(map[int64]*ResourceDetails, len(details))
	ids := make([]int64, 0, len(details))
	for _, d := range details {
		d.TagNames = []string{}
		byID[d.ID] = d
		ids = append(ids, d.ID)
	}

	rows, err := r.db.Query(ctx,
		`SELECT rt.resource_id, t.name
		 FROM resource_tags rt
		 JOIN tag t ON rt.tag_id = t.id
		 WHERE rt.resource_id = ANY($1)
		 ORDER BY t.name ASC`, ids)
	if err != nil {
		return fmt.Errorf("error querying resource tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var resourceID int64
		var name string
		if err := rows.Scan(&resourceID, &name); err != nil {
			return fmt.Errorf("error scanning resource tag row: %w", err)
		}
		if d, ok := byID[resourceID]; ok {
			d.TagNames = append(d.TagNames, name)
		}
	}

	return rows.Err()
}
