package dto

import (
	"time"

	"github.com/erenyalcin/campushare/internal/app/models"
)

// TagName is the transport shape of a tag on a resource: the name only,
// never the id or uid.
type TagName struct {
	Name string `json:"name" example:"midterm"`
}

// ResourceResponse is the transport representation of a catalog resource.
// Relations are flattened to human-readable names and the internal numeric
// id and updated_at are never exposed. Keys are snake_case for
// compatibility with existing clients.
type ResourceResponse struct {
	UID         string    `json:"uid" example:"6f1c8f0a-0f64-4f9e-9f06-5b2ad1f0c6e2"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name" example:"Algorithms midterm notes"`
	Description string    `json:"description"`
	File        string    `json:"file"`
	URL         string    `json:"url"`
	Category    string    `json:"category" example:"note"`
	Type        string    `json:"type" example:"pdf"`
	Course      string    `json:"course" example:"CS101"`
	Semester    string    `json:"semester" example:"3"`
	Subject     string    `json:"subject" example:"Algorithms"`
	Session     string    `json:"session" example:"2023-24"`
	Tags        []TagName `json:"tags"`
	CreatedBy   string    `json:"created_by" example:"alice"`
}

// CatalogFilter carries the optional conjunctive predicates of the read
// API. Course/Subject/Session hold uids; Semester holds the literal value.
type CatalogFilter struct {
	Course   *string
	Subject  *string
	Session  *string
	Semester *string
}

// TagInput is the discriminated form of the tags[] tokens: pre-existing tag
// ids and literal new names, separated at the boundary.
type TagInput struct {
	ExistingIDs []int64
	NewNames    []string
}

// CreateResourceRequest is the service-level input of the upload workflow,
// produced by the controller from the multipart form.
type CreateResourceRequest struct {
	Title       string
	Description string
	Type        models.ResourceType
	Category    models.ResourceCategory
	Semester    models.Semester
	CourseID    int64
	SubjectID   int64
	SessionID   int64
	URL         string
	Tags        TagInput
}

// UploadForm mirrors the multipart field names of the legacy upload entry.
// The file part and repeated tags field are handled separately.
type UploadForm struct {
	Title        string `form:"title"`
	ResourceType string `form:"resource_type"`
	Course       string `form:"course"`
	Subject      string `form:"subject"`
	Session      string `form:"session"`
	Category     string `form:"category"`
	Description  string `form:"description"`
	Semester     string `form:"semester"`
	URL          string `form:"url"`
}
