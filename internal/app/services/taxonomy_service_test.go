package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erenyalcin/campushare/internal/app/models"
	"github.com/erenyalcin/campushare/internal/app/models/dto"
	"github.com/erenyalcin/campushare/internal/app/repositories"
	"github.com/erenyalcin/campushare/internal/pkg/apperrors"
)

type fakeCourseStore struct {
	courses []*models.Course
}

func (f *fakeCourseStore) CreateCourse(ctx context.Context, course *models.Course) error {
	course.ID = int64(len(f.courses) + 1)
	course.UID = uuid.New()
	f.courses = append(f.courses, course)
	return nil
}

func (f *fakeCourseStore) GetCourseByUID(ctx context.Context, uid uuid.UUID) (*models.Course, error) {
	for _, c := range f.courses {
		if c.UID == uid {
			return c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCourseStore) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return f.courses, nil
}

type fakeSubjectStore struct {
	subjects []*models.Subject
}

func (f *fakeSubjectStore) CreateSubject(ctx context.Context, subject *models.Subject) error {
	subject.ID = int64(len(f.subjects) + 1)
	subject.UID = uuid.New()
	f.subjects = append(f.subjects, subject)
	return nil
}

func (f *fakeSubjectStore) GetAllSubjects(ctx context.Context) ([]*models.Subject, error) {
	return f.subjects, nil
}

type fakeSessionStore struct {
	sessions []*models.Session
}

func (f *fakeSessionStore) CreateSession(ctx context.Context, session *models.Session) error {
	session.ID = int64(len(f.sessions) + 1)
	session.UID = uuid.New()
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionStore) GetAllSessions(ctx context.Context) ([]*models.Session, error) {
	return f.sessions, nil
}

type fakeTagStore struct {
	tags []*models.Tag
}

func (f *fakeTagStore) GetAllTags(ctx context.Context) ([]*models.Tag, error) {
	return f.tags, nil
}

func newTaxonomyFixture() (TaxonomyService, *fakeCourseStore, *fakeSubjectStore) {
	courses := &fakeCourseStore{}
	subjects := &fakeSubjectStore{}
	service := NewTaxonomyService(courses, subjects, &fakeSessionStore{}, &fakeTagStore{})
	return service, courses, subjects
}

func TestCreateCourse_TrimsAndValidates(t *testing.T) {
	service, courses, _ := newTaxonomyFixture()

	resp, err := service.CreateCourse(context.Background(), &dto.CreateCourseRequest{Name: "  CS101  "})
	require.NoError(t, err)
	assert.Equal(t, "CS101", resp.Name)
	assert.NotEmpty(t, resp.UID)
	require.Len(t, courses.courses, 1)

	_, err = service.CreateCourse(context.Background(), &dto.CreateCourseRequest{Name: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateSubject_AttachedToCourse(t *testing.T) {
	service, courses, _ := newTaxonomyFixture()

	course, err := service.CreateCourse(context.Background(), &dto.CreateCourseRequest{Name: "CS101"})
	require.NoError(t, err)

	subject, err := service.CreateSubject(context.Background(), &dto.CreateSubjectRequest{
		Name:      "Algorithms",
		CourseUID: course.UID,
	})
	require.NoError(t, err)
	assert.Equal(t, course.UID, subject.CourseUID)
	require.Len(t, courses.courses, 1)
}

func TestCreateSubject_UnknownCourse(t *testing.T) {
	service, _, _ := newTaxonomyFixture()

	_, err := service.CreateSubject(context.Background(), &dto.CreateSubjectRequest{
		Name:      "Algorithms",
		CourseUID: uuid.New().String(),
	})
	assert.Error(t, err)
}

func TestCreateSubject_Unattached(t *testing.T) {
	service, _, subjects := newTaxonomyFixture()

	subject, err := service.CreateSubject(context.Background(), &dto.CreateSubjectRequest{Name: "General Study Skills"})
	require.NoError(t, err)
	assert.Empty(t, subject.CourseUID)
	require.Len(t, subjects.subjects, 1)
	assert.Nil(t, subjects.subjects[0].CourseID)
}

func TestListSubjects_ResolvesCourseUIDs(t *testing.T) {
	service, _, _ := newTaxonomyFixture()

	course, err := service.CreateCourse(context.Background(), &dto.CreateCourseRequest{Name: "CS101"})
	require.NoError(t, err)
	_, err = service.CreateSubject(context.Background(), &dto.CreateSubjectRequest{Name: "Algorithms", CourseUID: course.UID})
	require.NoError(t, err)
	_, err = service.CreateSubject(context.Background(), &dto.CreateSubjectRequest{Name: "Electives"})
	require.NoError(t, err)

	listed, err := service.ListSubjects(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, course.UID, listed[0].CourseUID)
	assert.Empty(t, listed[1].CourseUID)
}

func TestChoices_ClosedSets(t *testing.T) {
	service, _, _ := newTaxonomyFixture()

	choices := service.Choices()
	assert.Equal(t, []string{"note", "question paper", "presentation", "other"}, choices.Categories)
	assert.Contains(t, choices.Types, "pdf")
	assert.Contains(t, choices.Types, "video")
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, choices.Semesters)
}
