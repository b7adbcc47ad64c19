package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/erenyalcin/campushare/internal/app/models"
	"github.com/erenyalcin/campushare/internal/app/models/dto"
	"github.com/erenyalcin/campushare/internal/app/repositories"
	"github.com/erenyalcin/campushare/internal/pkg/apperrors"
	"github.com/erenyalcin/campushare/internal/pkg/filestorage"
	"github.com/erenyalcin/campushare/internal/pkg/logger"
	"github.com/erenyalcin/campushare/internal/pkg/validation"
)

// MaxUploadSize is the inclusive upper bound for uploaded files (10 MiB).
const MaxUploadSize = 10 << 20

// resourceFilesDir is the storage subdirectory for resource uploads.
const resourceFilesDir = "resources"

// allowedUploadTypes is the set of accepted declared content types for
// uploaded files: document and archive formats only.
var allowedUploadTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.ms-powerpoint":                                           {},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
	"application/zip": {},
}

// CourseGetter resolves courses by their internal id.
type CourseGetter interface {
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
}

// SubjectGetter resolves subjects by their internal id.
type SubjectGetter interface {
	GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error)
}

// SessionGetter resolves sessions by their internal id.
type SessionGetter interface {
	GetSessionByID(ctx context.Context, id int64) (*models.Session, error)
}

// ResourceCreator is the write side of the resource store.
type ResourceCreator interface {
	CreateWithTags(ctx context.Context, resource *models.Resource, existingTagIDs []int64, newTagNames []string) error
}

// ResourceService defines the upload workflow.
type ResourceService interface {
	CreateResource(ctx context.Context, req *dto.CreateResourceRequest, file *multipart.FileHeader, createdBy int64) (*models.Resource, error)
}

// resourceServiceImpl implements ResourceService
type resourceServiceImpl struct {
	resources ResourceCreator
	courses   CourseGetter
	subjects  SubjectGetter
	sessions  SessionGetter
	storage   filestorage.FileStorage
	sanitizer *bluemonday.Policy
}

// NewResourceService creates a new ResourceService
func NewResourceService(
	resources ResourceCreator,
	courses CourseGetter,
	subjects SubjectGetter,
	sessions SessionGetter,
	storage filestorage.FileStorage,
) ResourceService {
	return &resourceServiceImpl{
		resources: resources,
		courses:   courses,
		subjects:  subjects,
		sessions:  sessions,
		storage:   storage,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// CreateResource validates and persists one uploaded resource. Checks run
// in a fixed order: attachment presence, file constraints, then referenced
// taxonomy entities. The record and its tag associations are written as a
// single unit; a stored file is removed again if that write fails.
func (s *resourceServiceImpl) CreateResource(ctx context.Context, req *dto.CreateResourceRequest, file *multipart.FileHeader, createdBy int64) (*models.Resource, error) {
	title := strings.TrimSpace(s.sanitizer.Sanitize(req.Title))
	if !validation.IsValidTitle(title) {
		return nil, apperrors.NewValidationError("Title is required.")
	}
	description := strings.TrimSpace(s.sanitizer.Sanitize(req.Description))
	link := strings.TrimSpace(req.URL)

	hasFile := file != nil
	hasLink := link != ""
	switch {
	case !hasFile && !hasLink:
		return nil, apperrors.ErrMissingAttachment
	case hasFile && hasLink:
		return nil, apperrors.ErrConflictingAttach
	}

	if hasFile {
		if err := validateUploadFile(file); err != nil {
			return nil, err
		}
	}

	if err := s.resolveReferences(ctx, req); err != nil {
		return nil, err
	}

	// Past this point the attachment is a single tagged value; the
	// two-nullable-columns shape exists only at the storage boundary.
	var attachment models.Attachment
	if hasLink {
		attachment = models.Attachment{Kind: models.AttachmentLink, Ref: link}
	} else {
		ref, err := s.storage.SaveFile(ctx, file, resourceFilesDir)
		if err != nil {
			logger.Error().Err(err).Str("filename", file.Filename).Msg("Failed to store uploaded file")
			return nil, fmt.Errorf("error storing uploaded file: %w", err)
		}
		attachment = models.Attachment{Kind: models.AttachmentFile, Ref: ref}
	}

	resource := &models.Resource{
		Name:      title,
		File:      attachment.FileRef(),
		URL:       attachment.LinkRef(),
		Category:  req.Category,
		Type:      req.Type,
		Semester:  req.Semester,
		CourseID:  req.CourseID,
		SubjectID: req.SubjectID,
		SessionID: req.SessionID,
		CreatedBy: createdBy,
	}
	if description != "" {
		resource.Description = &description
	}

	err := s.resources.CreateWithTags(ctx, resource, req.Tags.ExistingIDs, req.Tags.NewNames)
	if err != nil {
		if resource.File != nil {
			if delErr := s.storage.DeleteFile(ctx, *resource.File); delErr != nil {
				logger.Warn().Err(delErr).Str("file", *resource.File).Msg("Failed to clean up stored file after create failure")
			}
		}
		return nil, err
	}

	logger.Info().
		Str("uid", resource.UID.String()).
		Str("title", resource.Name).
		Int64("createdBy", createdBy).
		Msg("Resource created")

	return resource, nil
}

// validateUploadFile enforces the size ceiling and the declared content
// type allowlist. The 10 MiB boundary itself is accepted.
func validateUploadFile(file *multipart.FileHeader) error {
	if file.Size > MaxUploadSize {
		return apperrors.ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if _, ok := allowedUploadTypes[contentType]; !ok {
		return apperrors.ErrUnsupportedFileType
	}

	return nil
}

// resolveReferences checks that the referenced course, subject and session
// exist. All failures collapse to the same related-entity error so the
// outward message never reveals which lookup missed.
func (s *resourceServiceImpl) resolveReferences(ctx context.Context, req *dto.CreateResourceRequest) error {
	if _, err := s.courses.GetCourseByID(ctx, req.CourseID); err != nil {
		return relatedEntityError(err, "course", req.CourseID)
	}
	if _, err := s.subjects.GetSubjectByID(ctx, req.SubjectID); err != nil {
		return relatedEntityError(err, "subject", req.SubjectID)
	}
	if _, err := s.sessions.GetSessionByID(ctx, req.SessionID); err != nil {
		return relatedEntityError(err, "session", req.SessionID)
	}
	return nil
}

func relatedEntityError(err error, entity string, id int64) error {
	if errors.Is(err, repositories.ErrNotFound) {
		logger.Warn().Str("entity", entity).Int64("id", id).Msg("Upload referenced a missing entity")
		return apperrors.NewRelatedEntityNotFoundError("Invalid data submitted.")
	}
	return fmt.Errorf("error resolving %s: %w", entity, err)
}
