package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erenyalcin/campushare/internal/app/models/dto"
	"github.com/erenyalcin/campushare/internal/pkg/auth"
	"github.com/erenyalcin/campushare/internal/pkg/logger"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextIsStaff  = "isStaff"
)

// accessTokenCookie lets browser-driven form posts authenticate without an
// Authorization header.
const accessTokenCookie = "access_token"

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	// loginPath is where unauthenticated navigation requests are sent.
	loginPath string
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, loginPath string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		loginPath:  loginPath,
	}
}

// JWTAuth validates the bearer token and stores the claims on the request
// context. API surface: failures return structured 401 bodies.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.resolveClaims(c)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			if errors.Is(err, auth.ErrExpiredToken) {
				errorDetail = dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// StaffRequired allows only staff accounts through. Must run after JWTAuth.
func (m *AuthMiddleware) StaffRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsStaff) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Staff access required")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}

// StaffGate protects the browser-facing upload entry. Any failure — no
// token, bad token, non-staff account — redirects to the login entry
// instead of answering with a JSON error.
func (m *AuthMiddleware) StaffGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.resolveClaims(c)
		if err != nil || !claims.IsStaff {
			if err != nil {
				logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Unauthenticated upload attempt")
			}
			c.Redirect(http.StatusFound, m.loginPath)
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// resolveClaims extracts the token from the Authorization header or the
// access token cookie and validates it.
func (m *AuthMiddleware) resolveClaims(c *gin.Context) (*auth.Claims, error) {
	tokenString := ""

	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		extracted, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			return nil, err
		}
		tokenString = extracted
	} else if cookie, err := c.Cookie(accessTokenCookie); err == nil && cookie != "" {
		tokenString = cookie
	}

	if tokenString == "" {
		return nil, auth.ErrInvalidToken
	}

	return m.jwtService.ValidateToken(tokenString)
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextUsername, claims.Username)
	c.Set(ContextIsStaff, claims.IsStaff)
}
