package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/erenyalcin/campushare/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/resources", nil)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIError_MapsKnownErrors(t *testing.T) {
	cases := map[string]struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		"course not found":    {apperrors.ErrCourseNotFound, http.StatusNotFound, "RES_001"},
		"invalid credentials": {apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "AUTH_001"},
		"duplicate course":    {apperrors.ErrCourseAlreadyExists, http.StatusConflict, "RES_002"},
		"validation failed":   {apperrors.NewValidationError("Title is required."), http.StatusBadRequest, "VAL_001"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := handleError(t, tc.err)
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantCode)
		})
	}
}

func TestHandleAPIError_RelatedEntityStaysGeneric(t *testing.T) {
	w := handleError(t, apperrors.NewRelatedEntityNotFoundError("course 42 does not exist"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid data submitted.")
	assert.NotContains(t, w.Body.String(), "course 42", "internal detail must not leak")
}

func TestHandleAPIError_UnknownErrorCollapsesTo500(t *testing.T) {
	w := handleError(t, errors.New("pool exhausted"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SRV_001")
	assert.NotContains(t, w.Body.String(), "pool exhausted")
}
