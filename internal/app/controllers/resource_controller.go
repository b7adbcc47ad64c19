package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/erenyalcin/campushare/internal/app/models"
	"github.com/erenyalcin/campushare/internal/app/models/dto"
	"github.com/erenyalcin/campushare/internal/app/services"
	"github.com/erenyalcin/campushare/internal/middleware"
	"github.com/erenyalcin/campushare/internal/pkg/apperrors"
	"github.com/erenyalcin/campushare/internal/pkg/logger"
)

// resourcesFetchedMessage is part of the read-API envelope contract.
const resourcesFetchedMessage = "Resources fetched successfully"

// ResourceController serves the public catalog and the upload entry.
type ResourceController struct {
	catalogService  services.CatalogService
	resourceService services.ResourceService
	// catalogPath is where a successful upload redirects to.
	catalogPath string
}

// NewResourceController creates a new ResourceController
func NewResourceController(catalogService services.CatalogService, resourceService services.ResourceService, catalogPath string) *ResourceController {
	return &ResourceController{
		catalogService:  catalogService,
		resourceService: resourceService,
		catalogPath:     catalogPath,
	}
}

// ListResources handles GET /resources/. All filters are optional and
// combine conjunctively; course, subject and session take uids, semester
// the literal value.
func (c *ResourceController) ListResources(ctx *gin.Context) {
	filter := &dto.CatalogFilter{
		Course:   optionalQuery(ctx, "course"),
		Subject:  optionalQuery(ctx, "subject"),
		Session:  optionalQuery(ctx, "session"),
		Semester: optionalQuery(ctx, "semester"),
	}

	resources, err := c.catalogService.ListResources(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListEnvelope(resourcesFetchedMessage, resources))
}

// UploadResource handles POST /upload/. The entry is form-backed: success
// redirects to the catalog, a failed check answers 400 with an
// error_message body naming the first failing validation.
func (c *ResourceController) UploadResource(ctx *gin.Context) {
	var form dto.UploadForm
	if err := ctx.ShouldBind(&form); err != nil {
		formError(ctx, "Invalid form submission.")
		return
	}

	req, msg := c.buildCreateRequest(ctx, &form)
	if msg != "" {
		formError(ctx, msg)
		return
	}

	file := uploadedFile(ctx)
	createdBy := ctx.GetInt64(middleware.ContextUserID)

	_, err := c.resourceService.CreateResource(ctx, req, file, createdBy)
	if err != nil {
		formError(ctx, uploadErrorMessage(ctx, err))
		return
	}

	ctx.Redirect(http.StatusFound, c.catalogPath+"?uploaded=1")
}

// buildCreateRequest translates raw form values into the typed service
// request. A non-empty message means a failed boundary check.
func (c *ResourceController) buildCreateRequest(ctx *gin.Context, form *dto.UploadForm) (*dto.CreateResourceRequest, string) {
	resourceType, ok := models.ParseResourceType(form.ResourceType)
	if !ok {
		return nil, "Select a valid resource type."
	}
	category, ok := models.ParseResourceCategory(form.Category)
	if !ok {
		return nil, "Select a valid category."
	}
	semester, ok := models.ParseSemester(form.Semester)
	if !ok {
		return nil, "Select a valid semester."
	}

	courseID, err := strconv.ParseInt(form.Course, 10, 64)
	if err != nil {
		return nil, "Invalid data submitted."
	}
	subjectID, err := strconv.ParseInt(form.Subject, 10, 64)
	if err != nil {
		return nil, "Invalid data submitted."
	}
	sessionID, err := strconv.ParseInt(form.Session, 10, 64)
	if err != nil {
		return nil, "Invalid data submitted."
	}

	return &dto.CreateResourceRequest{
		Title:       form.Title,
		Description: form.Description,
		Type:        resourceType,
		Category:    category,
		Semester:    semester,
		CourseID:    courseID,
		SubjectID:   subjectID,
		SessionID:   sessionID,
		URL:         form.URL,
		Tags:        normalizeTagTokens(ctx.PostFormArray("tags")),
	}, ""
}

// normalizeTagTokens splits the repeated tags field into existing tag ids
// and new tag names. Numeric tokens address existing tags; anything else is
// a name to create. Blank tokens are dropped.
func normalizeTagTokens(tokens []string) dto.TagInput {
	input := dto.TagInput{}
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if id, err := strconv.ParseInt(token, 10, 64); err == nil {
			input.ExistingIDs = append(input.ExistingIDs, id)
		} else {
			input.NewNames = append(input.NewNames, token)
		}
	}
	return input
}

// uploadedFile returns the file part or nil when none was sent.
func uploadedFile(ctx *gin.Context) *multipart.FileHeader {
	file, err := ctx.FormFile("file")
	if err != nil {
		return nil
	}
	return file
}

// uploadErrorMessage maps upload workflow errors to the human-readable
// error_message contract. Unexpected errors are logged in full and
// collapse to a generic message.
func uploadErrorMessage(ctx *gin.Context, err error) string {
	switch {
	case errors.Is(err, apperrors.ErrMissingAttachment):
		return "Either a file or a URL is required."
	case errors.Is(err, apperrors.ErrConflictingAttach):
		return "Provide a file or a URL, not both."
	case errors.Is(err, apperrors.ErrFileTooLarge):
		return "File must be 10 MB or smaller."
	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		return "Unsupported file type."
	case errors.Is(err, apperrors.ErrRelatedEntityNotFound):
		return "Invalid data submitted."
	case errors.Is(err, apperrors.ErrValidationFailed):
		var customErr *apperrors.CustomError
		if errors.As(err, &customErr) && customErr.Message != "" {
			return customErr.Message
		}
		return "Invalid data submitted."
	default:
		logger.Error().Err(err).Str("path", ctx.Request.URL.Path).Msg("Upload failed")
		return "Something went wrong. Please try again."
	}
}

func formError(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.FormErrorResponse{ErrorMessage: message})
}

func optionalQuery(ctx *gin.Context, key string) *string {
	if value := ctx.Query(key); value != "" {
		return &value
	}
	return nil
}
