package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erenyalcin/campushare/internal/app/models/dto"
)

type stubAuthService struct {
	token *dto.TokenResponse
}

func (s *stubAuthService) Register(_ context.Context, _ *dto.RegisterRequest) (*dto.UserResponse, error) {
	return &dto.UserResponse{Username: "alice"}, nil
}

func (s *stubAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return s.token, nil
}

func loginCookie(t *testing.T, secureCookie bool) *http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)
	controller := NewAuthController(&stubAuthService{
		token: &dto.TokenResponse{AccessToken: "issued-token", TokenType: "Bearer", ExpiresIn: 3600},
	}, secureCookie)

	router := gin.New()
	router.POST("/api/v1/auth/login", controller.Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"alice","password":"changeme123"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestLogin_CookieSecureInRelease(t *testing.T) {
	cookie := loginCookie(t, true)

	assert.Equal(t, "access_token", cookie.Name)
	assert.Equal(t, "issued-token", cookie.Value)
	assert.True(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly)
}

func TestLogin_CookiePlainInDebug(t *testing.T) {
	cookie := loginCookie(t, false)

	assert.Equal(t, "access_token", cookie.Name)
	assert.False(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 3600, cookie.MaxAge)
}
