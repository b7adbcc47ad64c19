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

// ErrSessionNotFound is returned when a session is not found.
var ErrSessionNotFound = ErrNotFound

// SessionRepository handles session database operations
type SessionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateSession creates a new session
func (r *SessionRepository) CreateSession(ctx context.Context, session *models.Session) error {
	sql, args, err := r.sb.Insert("session").
		Columns("name").
		Values(session.Name).
		Suffix("RETURNING id, uid, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create session query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&session.ID, &session.UID, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create session query")
		return fmt.Errorf("error creating session: %w", err)
	}

	return nil
}

// GetSessionByID retrieves a session by internal id
func (r *SessionRepository) GetSessionByID(ctx context.Context, id int64) (*models.Session, error) {
	sql, args, err := r.sb.Select("id", "uid", "name", "created_at", "updated_at").
		From("session").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get session query: %w", err)
	}

	session := &models.Session{}
	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&session.ID, &session.UID, &session.Name, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		logger.Error().Err(err).Msg("Error scanning session row")
		return nil, fmt.Errorf("error getting session: %w", err)
	}

	return session, nil
}

// GetAllSessions retrieves all sessions ordered by name
func (r *SessionRepository) GetAllSessions(ctx context.Context) ([]*models.Session, error) {
	sql, args, err := r.sb.Select("id", "uid", "name", "created_at", "updated_at").
		From("session").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all sessions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all sessions query")
		return nil, fmt.Errorf("error querying sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*models.Session{}
	for rows.Next() {
		session := &models.Session{}
		if err := rows.Scan(&session.ID, &session.UID, &session.Name, &session.CreatedAt, &session.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning session row: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}

	return sessions, nil
}
