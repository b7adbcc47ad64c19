package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erenyalcin/campushare/internal/app/models/dto"
	"github.com/erenyalcin/campushare/internal/app/services"
	"github.com/erenyalcin/campushare/internal/middleware"
	"github.com/erenyalcin/campushare/internal/pkg/apperrors"
)

// TaxonomyController serves the classification entities: courses, subjects,
// sessions, tags and the closed form choices.
type TaxonomyController struct {
	taxonomyService services.TaxonomyService
}

// NewTaxonomyController creates a new TaxonomyController
func NewTaxonomyController(taxonomyService services.TaxonomyService) *TaxonomyController {
	return &TaxonomyController{taxonomyService: taxonomyService}
}

// ListCourses handles GET /api/v1/courses
func (c *TaxonomyController) ListCourses(ctx *gin.Context) {
	courses, err := c.taxonomyService.ListCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses, "Courses retrieved successfully"))
}

// CreateCourse handles POST /api/v1/courses
func (c *TaxonomyController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Course name is required."))
		return
	}

	course, err := c.taxonomyService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course, "Course created successfully"))
}

// ListSubjects handles GET /api/v1/subjects
func (c *TaxonomyController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.taxonomyService.ListSubjects(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subjects, "Subjects retrieved successfully"))
}

// CreateSubject handles POST /api/v1/subjects
func (c *TaxonomyController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Subject name is required."))
		return
	}

	subject, err := c.taxonomyService.CreateSubject(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(subject, "Subject created successfully"))
}

// ListSessions handles GET /api/v1/sessions
func (c *TaxonomyController) ListSessions(ctx *gin.Context) {
	sessions, err := c.taxonomyService.ListSessions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(sessions, "Sessions retrieved successfully"))
}

// CreateSession handles POST /api/v1/sessions
func (c *TaxonomyController) CreateSession(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Session name is required."))
		return
	}

	session, err := c.taxonomyService.CreateSession(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(session, "Session created successfully"))
}

// ListTags handles GET /api/v1/tags
func (c *TaxonomyController) ListTags(ctx *gin.Context) {
	tags, err := c.taxonomyService.ListTags(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tags, "Tags retrieved successfully"))
}

// GetChoices handles GET /api/v1/choices. It exposes the closed
// enumerations so upload forms need not hardcode them.
func (c *TaxonomyController) GetChoices(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.taxonomyService.Choices(), "Choices retrieved successfully"))
}
