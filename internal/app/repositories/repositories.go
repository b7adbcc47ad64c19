package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared storage-level not-found error.
var ErrNotFound = errors.New("record not found")

// Querier is the subset of pgx operations shared by *pgxpool.Pool and
// pgx.Tx. Repository methods that must run inside a caller-owned
// transaction take a Querier instead of using the pool directly.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     *UserRepository
	CourseRepository   *CourseRepository
	SubjectRepository  *SubjectRepository
	SessionRepository  *SessionRepository
	TagRepository      *TagRepository
	ResourceRepository *ResourceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	tagRepo := NewTagRepository(db)
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		CourseRepository:   NewCourseRepository(db),
		SubjectRepository:  NewSubjectRepository(db),
		SessionRepository:  NewSessionRepository(db),
		TagRepository:      tagRepo,
		ResourceRepository: NewResourceRepository(db, tagRepo),
	}
}
