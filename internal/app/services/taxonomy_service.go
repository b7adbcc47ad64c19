package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/erenyalcin/campushare/internal/app/models"
	"github.com/erenyalcin/campushare/internal/app/models/dto"
	"github.com/erenyalcin/campushare/internal/app/repositories"
	"github.com/erenyalcin/campushare/internal/pkg/apperrors"
	"github.com/erenyalcin/campushare/internal/pkg/dberrors"
)

// CourseStore is the course persistence surface the taxonomy service needs.
type CourseStore interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourseByUID(ctx context.Context, uid uuid.UUID) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
}

// SubjectStore is the subject persistence surface the taxonomy service needs.
type SubjectStore interface {
	CreateSubject(ctx context.Context, subject *models.Subject) error
	GetAllSubjects(ctx context.Context) ([]*models.Subject, error)
}

// SessionStore is the session persistence surface the taxonomy service needs.
type SessionStore interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetAllSessions(ctx context.Context) ([]*models.Session, error)
}

// TagStore is the tag persistence surface the taxonomy service needs.
type TagStore interface {
	GetAllTags(ctx context.Context) ([]*models.Tag, error)
}

// TaxonomyService manages the classification entities resources hang off:
// courses, subjects, sessions and tags.
type TaxonomyService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	ListCourses(ctx context.Context) ([]dto.CourseResponse, error)
	CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error)
	ListSubjects(ctx context.Context) ([]dto.SubjectResponse, error)
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	ListSessions(ctx context.Context) ([]dto.SessionResponse, error)
	ListTags(ctx context.Context) ([]dto.TagName, error)
	Choices() *dto.ChoicesResponse
}

// taxonomyServiceImpl implements TaxonomyService
type taxonomyServiceImpl struct {
	courses  CourseStore
	subjects SubjectStore
	sessions SessionStore
	tags     TagStore
}

// NewTaxonomyService creates a new TaxonomyService
func NewTaxonomyService(courses CourseStore, subjects SubjectStore, sessions SessionStore, tags TagStore) TaxonomyService {
	return &taxonomyServiceImpl{
		courses:  courses,
		subjects: subjects,
		sessions: sessions,
		tags:     tags,
	}
}

// CreateCourse creates a course. Names are unique.
func (s *taxonomyServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("Course name is required.")
	}

	course := &models.Course{Name: name}
	if err := s.courses.CreateCourse(ctx, course); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrCourseAlreadyExists
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return &dto.CourseResponse{UID: course.UID.String(), Name: course.Name}, nil
}

// ListCourses returns all courses ordered by name.
func (s *taxonomyServiceImpl) ListCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.courses.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		responses = append(responses, dto.CourseResponse{UID: c.UID.String(), Name: c.Name})
	}
	return responses, nil
}

// CreateSubject creates a subject, attached to a course when a course uid
// is supplied.
func (s *taxonomyServiceImpl) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("Subject name is required.")
	}

	subject := &models.Subject{Name: name}
	response := &dto.SubjectResponse{Name: name}

	if req.CourseUID != "" {
		courseUID, err := uuid.Parse(req.CourseUID)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid course reference.")
		}
		course, err := s.courses.GetCourseByUID(ctx, courseUID)
		if err != nil {
			if err == repositories.ErrNotFound {
				return nil, apperrors.ErrCourseNotFound
			}
			return nil, fmt.Errorf("error resolving course: %w", err)
		}
		subject.CourseID = &course.ID
		response.CourseUID = course.UID.String()
	}

	if err := s.subjects.CreateSubject(ctx, subject); err != nil {
		return nil, fmt.Errorf("error creating subject: %w", err)
	}

	response.UID = subject.UID.String()
	return response, nil
}

// ListSubjects returns all subjects ordered by name, each carrying its
// parent course uid when attached.
func (s *taxonomyServiceImpl) ListSubjects(ctx context.Context) ([]dto.SubjectResponse, error) {
	subjects, err := s.subjects.GetAllSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}

	courseUIDs, err := s.courseUIDsByID(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SubjectResponse, 0, len(subjects))
	for _, sub := range subjects {
		resp := dto.SubjectResponse{UID: sub.UID.String(), Name: sub.Name}
		if sub.CourseID != nil {
			resp.CourseUID = courseUIDs[*sub.CourseID]
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *taxonomyServiceImpl) courseUIDsByID(ctx context.Context) (map[int64]string, error) {
	courses, err := s.courses.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	uids := make(map[int64]string, len(courses))
	for _, c := range courses {
		uids[c.ID] = c.UID.String()
	}
	return uids, nil
}

// CreateSession creates an academic session. Names are unique.
func (s *taxonomyServiceImpl) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("Session name is required.")
	}

	session := &models.Session{Name: name}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrSessionAlreadyExists
		}
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	return &dto.SessionResponse{UID: session.UID.String(), Name: session.Name}, nil
}

// ListSessions returns all sessions ordered by name.
func (s *taxonomyServiceImpl) ListSessions(ctx context.Context) ([]dto.SessionResponse, error) {
	sessions, err := s.sessions.GetAllSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}

	responses := make([]dto.SessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		responses = append(responses, dto.SessionResponse{UID: sess.UID.String(), Name: sess.Name})
	}
	return responses, nil
}

// ListTags returns all tag names.
func (s *taxonomyServiceImpl) ListTags(ctx context.Context) ([]dto.TagName, error) {
	tags, err := s.tags.GetAllTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing tags: %w", err)
	}

	responses := make([]dto.TagName, 0, len(tags))
	for _, t := range tags {
		responses = append(responses, dto.TagName{Name: t.Name})
	}
	return responses, nil
}

// Choices returns the closed enumerations of the resource model.
func (s *taxonomyServiceImpl) Choices() *dto.ChoicesResponse {
	return &dto.ChoicesResponse{
		Categories: categoryStrings(),
		Types:      typeStrings(),
		Semesters:  semesterStrings(),
	}
}

func categoryStrings() []string {
	values := models.ResourceCategories()
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

func typeStrings() []string {
	values := models.ResourceTypes()
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

func semesterStrings() []string {
	values := models.Semesters()
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}
