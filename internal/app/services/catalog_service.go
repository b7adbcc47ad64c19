package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/erenyalcin/campushare/internal/app/models/dto"
	"github.com/erenyalcin/campushare/internal/app/repositories"
)

// ResourceLister is the read side of the resource store.
type ResourceLister interface {
	ListDetails(ctx context.Context, params repositories.ListResourcesParams) ([]*repositories.ResourceDetails, error)
}

// CatalogService defines the read-only catalog query operations.
type CatalogService interface {
	ListResources(ctx context.Context, filter *dto.CatalogFilter) ([]dto.ResourceResponse, error)
}

// catalogServiceImpl implements CatalogService
type catalogServiceImpl struct {
	resources ResourceLister
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(resources ResourceLister) CatalogService {
	return &catalogServiceImpl{resources: resources}
}

// ListResources returns the resources matching every supplied filter,
// newest first. Filtering is permissive: a malformed or unknown uid matches
// nothing and yields an empty list, never an error.
func (s *catalogServiceImpl) ListResources(ctx context.Context, filter *dto.CatalogFilter) ([]dto.ResourceResponse, error) {
	params := repositories.ListResourcesParams{}

	if filter != nil {
		if filter.Course != nil {
			uid, err := uuid.Parse(*filter.Course)
			if err != nil {
				return []dto.ResourceResponse{}, nil
			}
			params.CourseUID = &uid
		}
		if filter.Subject != nil {
			uid, err := uuid.Parse(*filter.Subject)
			if err != nil {
				return []dto.ResourceResponse{}, nil
			}
			params.SubjectUID = &uid
		}
		if filter.Session != nil {
			uid, err := uuid.Parse(*filter.Session)
			if err != nil {
				return []dto.ResourceResponse{}, nil
			}
			params.SessionUID = &uid
		}
		params.Semester = filter.Semester
	}

	details, err := s.resources.ListDetails(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}

	responses := make([]dto.ResourceResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, toResourceResponse(d))
	}

	return responses, nil
}

// toResourceResponse flattens a joined row to the transport shape. The
// internal id and updated_at stay internal.
func toResourceResponse(d *repositories.ResourceDetails) dto.ResourceResponse {
	tags := make([]dto.TagName, 0, len(d.TagNames))
	for _, name := range d.TagNames {
		tags = append(tags, dto.TagName{Name: name})
	}

	return dto.ResourceResponse{
		UID:         d.UID.String(),
		CreatedAt:   d.CreatedAt,
		Name:        d.Name,
		Description: stringOrEmpty(d.Description),
		File:        stringOrEmpty(d.File),
		URL:         stringOrEmpty(d.URL),
		Category:    string(d.Category),
		Type:        string(d.Type),
		Course:      d.CourseName,
		Semester:    string(d.Semester),
		Subject:     d.SubjectName,
		Session:     d.SessionName,
		Tags:        tags,
		CreatedBy:   d.CreatorName,
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
