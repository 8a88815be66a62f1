package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursereg/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "single violation",
			err:        (&apperrors.ValidationError{}).Add("first_name", apperrors.CodeFirstNameRequired),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error_code":"STUDENT002","error_message":"First Name is required"}`,
		},
		{
			name: "several violations",
			err: (&apperrors.ValidationError{}).
				Add("roll_number", apperrors.CodeRollNumberRequired).
				Add("first_name", apperrors.CodeFirstNameRequired),
			wantStatus: http.StatusBadRequest,
			wantBody: `[{"error_code":"STUDENT001","error_message":"Roll Number required"},
				{"error_code":"STUDENT002","error_message":"First Name is required"}]`,
		},
		{
			name:       "not found",
			err:        apperrors.NewResourceNotFoundError(apperrors.CodeCourseNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error_code":"COURSE004","error_message":"Course not found"}`,
		},
		{
			name:       "wrapped conflict",
			err:        fmt.Errorf("creating: %w", apperrors.NewConflictError(apperrors.CodeAlreadyEnrolled)),
			wantStatus: http.StatusConflict,
			wantBody:   `{"error_code":"ENROLLMENT005","error_message":"Student is already enrolled in this course"}`,
		},
		{
			name:       "invalid student",
			err:        apperrors.NewInvalidStudentError(),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error_code":"ENROLLMENT002","error_message":"Student does not exist"}`,
		},
		{
			name:       "bad request",
			err:        apperrors.NewBadRequestError("first_name must be at most 100 characters"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error_code":"BAD_REQUEST","error_message":"first_name must be at most 100 characters"}`,
		},
		{
			name:       "unknown error hides details",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error_code":"INTERNAL_ERROR","error_message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.True(t, c.IsAborted())
		})
	}
}

func TestBindJSON_ReportsJSONFieldNames(t *testing.T) {
	type request struct {
		FirstName string `json:"first_name" binding:"max=3"`
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"first_name":"Augusta"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req request
	assert.False(t, BindJSON(c, &req))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error_code":"BAD_REQUEST","error_message":"first_name must be at most 3 characters"}`, w.Body.String())
}

func TestParseIDParam(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "student_id", Value: "12"}}

	id, ok := ParseIDParam(c, "student_id")
	require.True(t, ok)
	assert.EqualValues(t, 12, id)

	c.Params = gin.Params{{Key: "student_id", Value: "twelve"}}
	_, ok = ParseIDParam(c, "student_id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecovery_RendersInternalError(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error_code":"INTERNAL_ERROR","error_message":"Internal server error"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}
