package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/erenyalcin/campushare/internal/app/models"
	"github.com/erenyalcin/campushare/internal/pkg/logger"
)

// TagRepository handles tag database operations
type TagRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *pgxpool.Pool) *TagRepository {
	return &TagRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// resolveTagSQL upserts by name and returns the winning row either way.
// DO UPDATE instead of DO NOTHING so the conflicting row is returned.
const resolveTagSQL = `INSERT INTO tag (name) VALUES ($1)
	ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
	RETURNING id, uid, name, created_at, updated_at`

// Resolve returns the tag with the given name, creating it if absent. The
// single upsert statement relies on the unique constraint on tag.name, so
// concurrent callers resolving the same name end up with the same row; the
// check-then-create race has no window here. Runs on q so callers can place
// it inside their own transaction.
func (r *TagRepository) Resolve(ctx context.Context, q Querier, name string) (*models.Tag, error) {
	if q == nil {
		q = r.db
	}

	tag := &models.Tag{}
	err := q.QueryRow(ctx, resolveTagSQL, name).
		Scan(&tag.ID, &tag.UID, &tag.Name, &tag.CreatedAt, &tag.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Str("name", name).Msg("Error resolving tag")
		return nil, fmt.Errorf("error resolving tag %q: %w", name, err)
	}

	return tag, nil
}

// FilterExistingIDs returns the subset of ids that exist as tag rows.
// Unknown ids are dropped, not errors; the upload workflow skips them.
func (r *TagRepository) FilterExistingIDs(ctx context.Context, q Querier, ids []int64) ([]int64, error) {
	if q == nil {
		q = r.db
	}
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := q.Query(ctx, `SELECT id FROM tag WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("error filtering tag ids: %w", err)
	}
	defer rows.Close()

	found := make([]int64, 0, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning tag id: %w", err)
		}
		found = append(found, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag ids: %w", err)
	}

	return found, nil
}

// GetAllTags retrieves all tags ordered by name
func (r *TagRepository) GetAllTags(ctx context.Context) ([]*models.Tag, error) {
	sql, args, err := r.sb.Select("id", "uid", "name", "created_at", "updated_at").
		From("tag").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all tags query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all tags query")
		return nil, fmt.Errorf("error querying tags: %w", err)
	}
	defer rows.Close()

	tags := []*models.Tag{}
	for rows.Next() {
		tag := &models.Tag{}
		if err := rows.Scan(&tag.ID, &tag.UID, &tag.Name, &tag.CreatedAt, &tag.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning tag row: %w", err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}

	return tags, nil
}
