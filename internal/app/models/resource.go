package models

import (
	"time"

	"github.com/google/uuid"
)

// Resource is a catalog record for one shareable academic artifact.
// Exactly one of File/URL is populated; this is enforced by the upload
// workflow, not by the schema.
type Resource struct {
	ID          int64            `db:"id" json:"id"`
	UID         uuid.UUID        `db:"uid" json:"uid"`
	Name        string           `db:"name" json:"name"`
	Description *string          `db:"description" json:"description,omitempty"`
	File        *string          `db:"file" json:"file,omitempty"`
	URL         *string          `db:"url" json:"url,omitempty"`
	Category    ResourceCategory `db:"category" json:"category"`
	Type        ResourceType     `db:"type" json:"type"`
	Semester    Semester         `db:"semester" json:"semester"`
	CourseID    int64            `db:"course_id" json:"courseId"`
	SubjectID   int64            `db:"subject_id" json:"subjectId"`
	SessionID   int64            `db:"session_id" json:"sessionId"`
	CreatedBy   int64            `db:"created_by" json:"createdBy"`
	CreatedAt   time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time        `db:"updated_at" json:"updatedAt"`

	// Relations (populated when needed)
	Tags []*Tag `json:"tags,omitempty"`
}

// Attachment is the discriminated form of the file-XOR-url pair.
type AttachmentKind int

const (
	AttachmentNone AttachmentKind = iota
	AttachmentFile
	AttachmentLink
)

// Attachment carries either a stored file reference or an external link.
type Attachment struct {
	Kind AttachmentKind
	// Ref is the stored file path for AttachmentFile, the external URL
	// for AttachmentLink, empty for AttachmentNone.
	Ref string
}

// FileRef returns the stored file reference or nil.
func (a Attachment) FileRef() *string {
	if a.Kind == AttachmentFile {
		ref := a.Ref
		return &ref
	}
	return nil
}

// LinkRef returns the external URL or nil.
func (a Attachment) LinkRef() *string {
	if a.Kind == AttachmentLink {
		ref := a.Ref
		return &ref
	}
	return nil
}
