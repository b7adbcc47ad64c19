package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erenyalcin/campushare/internal/app/models/dto"
	"github.com/erenyalcin/campushare/internal/app/services"
	"github.com/erenyalcin/campushare/internal/middleware"
	"github.com/erenyalcin/campushare/internal/pkg/apperrors"
)

// AuthController handles registration and login.
type AuthController struct {
	authService  services.AuthService
	secureCookie bool
}

// NewAuthController creates a new AuthController. secureCookie marks the
// access token cookie Secure so it only travels over TLS.
func NewAuthController(authService services.AuthService, secureCookie bool) *AuthController {
	return &AuthController{authService: authService, secureCookie: secureCookie}
}

// Register handles POST /api/v1/auth/register
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Username, email and password are required."))
		return
	}

	user, err := c.authService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(user, "User registered successfully"))
}

// Login handles POST /api/v1/auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Username and password are required."))
		return
	}

	token, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// The cookie lets the browser-driven upload entry authenticate.
	ctx.SetCookie("access_token", token.AccessToken, token.ExpiresIn, "/", "", c.secureCookie, true)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(token, "Login successful"))
}
