package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erenyalcin/campushare/internal/app/models"
	"github.com/erenyalcin/campushare/internal/pkg/auth"
)

const testLoginPath = "/api/v1/auth/login"

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campushare-test",
	})
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, isStaff bool) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken(&models.User{
		ID:       1,
		Username: "alice",
		IsStaff:  isStaff,
	})
	require.NoError(t, err)
	return token
}

func newGateRouter(m *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/upload/", m.StaffGate(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/api/protected", m.JWTAuth(), m.StaffRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestStaffGate_NoTokenRedirectsToLogin(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(), testLoginPath)
	router := newGateRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, testLoginPath, w.Header().Get("Location"))
}

func TestStaffGate_NonStaffRedirectsToLogin(t *testing.T) {
	jwtService := newTestJWTService()
	m := NewAuthMiddleware(jwtService, testLoginPath)
	router := newGateRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, false))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, testLoginPath, w.Header().Get("Location"))
}

func TestStaffGate_InvalidTokenRedirectsToLogin(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(), testLoginPath)
	router := newGateRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
}

func TestStaffGate_StaffPasses(t *testing.T) {
	jwtService := newTestJWTService()
	m := NewAuthMiddleware(jwtService, testLoginPath)
	router := newGateRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, true))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaffGate_AcceptsCookieToken(t *testing.T) {
	jwtService := newTestJWTService()
	m := NewAuthMiddleware(jwtService, testLoginPath)
	router := newGateRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload/", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: tokenFor(t, jwtService, true)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_NoTokenIsStructured401(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(), testLoginPath)
	router := newGateRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_004")
	assert.Empty(t, w.Header().Get("Location"), "API routes never redirect")
}

func TestStaffRequired_NonStaffIs403(t *testing.T) {
	jwtService := newTestJWTService()
	m := NewAuthMiddleware(jwtService, testLoginPath)
	router := newGateRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, false))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_005")
}

func TestStaffRequired_StaffPasses(t *testing.T) {
	jwtService := newTestJWTService()
	m := NewAuthMiddleware(jwtService, testLoginPath)
	router := newGateRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, true))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
