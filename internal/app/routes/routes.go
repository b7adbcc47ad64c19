package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/erenyalcin/campushare/internal/app/controllers"
	"github.com/erenyalcin/campushare/internal/middleware"
)

// Legacy entry paths. The trailing slashes are part of the interop
// contract with existing clients.
const (
	CatalogPath = "/resources/"
	UploadPath  = "/upload/"
	LoginPath   = "/api/v1/auth/login"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	resourceController *controllers.ResourceController,
	taxonomyController *controllers.TaxonomyController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Legacy entries (root level, trailing slash) ---
	router.GET(CatalogPath, resourceController.ListResources)

	// The upload entry is navigation-oriented: failing the staff gate
	// redirects to login instead of returning a JSON error.
	upload := router.Group(UploadPath)
	upload.Use(authMiddleware.StaffGate())
	{
		upload.POST("", resourceController.UploadResource)
	}

	// --- Versioned API ---
	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Public read access to the classification entities.
	v1.GET("/courses", taxonomyController.ListCourses)
	v1.GET("/subjects", taxonomyController.ListSubjects)
	v1.GET("/sessions", taxonomyController.ListSessions)
	v1.GET("/tags", taxonomyController.ListTags)
	v1.GET("/choices", taxonomyController.GetChoices)

	// Staff-only taxonomy management.
	staff := v1.Group("")
	staff.Use(authMiddleware.JWTAuth(), authMiddleware.StaffRequired())
	{
		staff.POST("/courses", taxonomyController.CreateCourse)
		staff.POST("/subjects", taxonomyController.CreateSubject)
		staff.POST("/sessions", taxonomyController.CreateSession)
	}
}
