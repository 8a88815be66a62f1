package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursereg/internal/app/controllers"
	"github.com/yigit/coursereg/internal/app/routes"
	"github.com/yigit/coursereg/internal/app/services"
	"github.com/yigit/coursereg/internal/middleware"
	"github.com/yigit/coursereg/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type api struct {
	t      *testing.T
	router *gin.Engine
}

func newAPI(t *testing.T) *api {
	t.Helper()
	database := testutil.NewSQLiteDB(t)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Recovery())
	routes.SetupRouter(router,
		controllers.NewStudentController(services.NewStudentService(database)),
		controllers.NewCourseController(services.NewCourseService(database)),
		controllers.NewEnrollmentController(services.NewEnrollmentService(database)),
		controllers.NewHealthController(database),
	)
	return &api{t: t, router: router}
}

func (a *api) do(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// create posts body and returns the id field of the created record
func (a *api) create(path, body, idField string) int64 {
	a.t.Helper()
	w := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	var out map[string]interface{}
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &out))
	return int64(out[idField].(float64))
}

func errorBody(code, message string) string {
	return fmt.Sprintf(`{"error_code":%q,"error_message":%q}`, code, message)
}

func TestStudentEndpoints(t *testing.T) {
	a := newAPI(t)

	w := a.do(http.MethodPost, "/api/student", `{"roll_number":"A1","first_name":"Ada","last_name":"Lovelace"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Successfully Created", w.Header().Get("X-Message"))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.JSONEq(t, `{"student_id":1,"roll_number":"A1","first_name":"Ada","last_name":"Lovelace"}`, w.Body.String())

	w = a.do(http.MethodPost, "/api/student", `{"roll_number":"A1","first_name":"Bob"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, errorBody("STUDENT003", "Student already exist"), w.Body.String())

	// numeric roll numbers are stored as text
	w = a.do(http.MethodPost, "/api/student", `{"roll_number":42,"first_name":"Bob"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"student_id":2,"roll_number":"42","first_name":"Bob","last_name":null}`, w.Body.String())

	w = a.do(http.MethodGet, "/api/student", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Request Successful", w.Header().Get("X-Message"))
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	w = a.do(http.MethodGet, "/api/student/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"student_id":1,"roll_number":"A1","first_name":"Ada","last_name":"Lovelace"}`, w.Body.String())

	w = a.do(http.MethodPut, "/api/student/1", `{"roll_number":"A1","first_name":"Augusta"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Successfully updated", w.Header().Get("X-Message"))
	assert.JSONEq(t, `{"student_id":1,"roll_number":"A1","first_name":"Augusta","last_name":null}`, w.Body.String())

	w = a.do(http.MethodPut, "/api/student/1", `{"roll_number":"42","first_name":"Augusta"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = a.do(http.MethodDelete, "/api/student/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Successfully Deleted"}`, w.Body.String())

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w = a.do(method, "/api/student/2", "")
		assert.Equal(t, http.StatusNotFound, w.Code, method)
		assert.JSONEq(t, errorBody("STUDENT004", "Student not found"), w.Body.String())
	}
	w = a.do(http.MethodPut, "/api/student/2", `{"roll_number":"Z","first_name":"Zed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudentEndpoints_Validation(t *testing.T) {
	a := newAPI(t)

	tests := []struct {
		name     string
		body     string
		wantJSON string
	}{
		{
			name: "every field missing renders an array",
			body: `{}`,
			wantJSON: "[" + errorBody("STUDENT001", "Roll Number required") + "," +
				errorBody("STUDENT002", "First Name is required") + "]",
		},
		{
			name:     "empty body counts as no fields",
			body:     "",
			wantJSON: "[" + errorBody("STUDENT001", "Roll Number required") + "," + errorBody("STUDENT002", "First Name is required") + "]",
		},
		{
			name:     "single missing field renders an object",
			body:     `{"roll_number":"A1","first_name":"   "}`,
			wantJSON: errorBody("STUDENT002", "First Name is required"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := a.do(http.MethodPost, "/api/student", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, tt.wantJSON, w.Body.String())
		})
	}

	badRequests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"malformed json", http.MethodPost, "/api/student", `{"roll_number":`},
		{"over-long field", http.MethodPost, "/api/student", `{"roll_number":"A1","first_name":"` + strings.Repeat("x", 101) + `"}`},
		{"non-numeric id", http.MethodGet, "/api/student/abc", ""},
		{"roll number of wrong type", http.MethodPost, "/api/student", `{"roll_number":true,"first_name":"Ada"}`},
	}
	for _, tt := range badRequests {
		t.Run(tt.name, func(t *testing.T) {
			w := a.do(tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			var detail map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
			assert.Equal(t, "BAD_REQUEST", detail["error_code"])
			assert.NotEmpty(t, detail["error_message"])
		})
	}

	w := a.do(http.MethodGet, "/api/student", "")
	assert.JSONEq(t, `[]`, w.Body.String(), "no request above wrote anything")
}

func TestCourseEndpoints(t *testing.T) {
	a := newAPI(t)

	w := a.do(http.MethodPost, "/api/course", `{"course_name":"CS101","course_code":"C1","course_description":"intro"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"course_id":1,"course_name":"CS101","course_code":"C1","course_description":"intro"}`, w.Body.String())

	w = a.do(http.MethodPost, "/api/course", `{"course_name":"Other","course_code":"C1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, errorBody("COURSE003", "course_code already exist"), w.Body.String())

	w = a.do(http.MethodPost, "/api/course", `{"course_code":"C2"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, errorBody("COURSE001", "Course Name is Required"), w.Body.String())

	w = a.do(http.MethodPut, "/api/course/1", `{"course_name":"CS101","course_code":"C9"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"course_id":1,"course_name":"CS101","course_code":"C9","course_description":null}`, w.Body.String())

	w = a.do(http.MethodGet, "/api/course/7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, errorBody("COURSE004", "Course not found"), w.Body.String())

	w = a.do(http.MethodDelete, "/api/course/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Successfully Deleted", w.Header().Get("X-Message"))

	w = a.do(http.MethodGet, "/api/course", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestEnrollmentEndpoints(t *testing.T) {
	a := newAPI(t)
	student := a.create("/api/student", `{"roll_number":"A1","first_name":"Ada"}`, "student_id")
	course := a.create("/api/course", `{"course_name":"CS101","course_code":"C1"}`, "course_id")

	studentCourses := fmt.Sprintf("/api/student/%d/course", student)
	courseStudents := fmt.Sprintf("/api/course/%d/student", course)
	withdraw := fmt.Sprintf("/api/student/%d/course/%d", student, course)

	w := a.do(http.MethodGet, studentCourses, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, errorBody("ENROLLMENT003", "Student is not enrolled in any course"), w.Body.String())

	w = a.do(http.MethodPost, studentCourses, `{"course_id":999}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, errorBody("ENROLLMENT001", "Course does not exist"), w.Body.String())

	w = a.do(http.MethodPost, "/api/student/999/course", fmt.Sprintf(`{"course_id":%d}`, course))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, errorBody("ENROLLMENT002", "Student does not exist"), w.Body.String())

	w = a.do(http.MethodPost, studentCourses, fmt.Sprintf(`{"course_id":%d}`, course))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"enrollment_id":1,"student_id":%d,"course_id":%d}`, student, course), w.Body.String())

	w = a.do(http.MethodPost, studentCourses, fmt.Sprintf(`{"course_id":%d}`, course))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, errorBody("ENROLLMENT005", "Student is already enrolled in this course"), w.Body.String())

	w = a.do(http.MethodGet, studentCourses, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`[{"enrollment_id":1,"student_id":%d,"course_id":%d}]`, student, course), w.Body.String())

	w = a.do(http.MethodGet, courseStudents, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`[{"enrollment_id":1,"student_id":%d,"course_id":%d}]`, student, course), w.Body.String())

	w = a.do(http.MethodDelete, withdraw, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Successfully Deleted"}`, w.Body.String())

	w = a.do(http.MethodDelete, withdraw, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, errorBody("ENROLLMENT004", "Enrollment for the student not found"), w.Body.String())

	w = a.do(http.MethodGet, courseStudents, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, errorBody("ENROLLMENT006", "No students enrolled in this course"), w.Body.String())
}

func TestStudentCreateWithCourses(t *testing.T) {
	a := newAPI(t)
	c1 := a.create("/api/course", `{"course_name":"CS101","course_code":"C1"}`, "course_id")
	c2 := a.create("/api/course", `{"course_name":"Algorithms","course_code":"C2"}`, "course_id")

	body := fmt.Sprintf(`{"roll_number":"A1","first_name":"Ada","course_ids":[%d,%d]}`, c1, c2)
	student := a.create("/api/student", body, "student_id")

	w := a.do(http.MethodGet, fmt.Sprintf("/api/student/%d/course", student), "")
	require.Equal(t, http.StatusOK, w.Code)
	var enrollments []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &enrollments))
	assert.Len(t, enrollments, 2)

	// deleting a course cascades to its enrollments
	w = a.do(http.MethodDelete, fmt.Sprintf("/api/course/%d", c1), "")
	require.Equal(t, http.StatusOK, w.Code)
	w = a.do(http.MethodGet, fmt.Sprintf("/api/student/%d/course", student), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &enrollments))
	assert.Len(t, enrollments, 1)
}

func TestHealthEndpoints(t *testing.T) {
	a := newAPI(t)

	w := a.do(http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())

	w = a.do(http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, w.Body.String())
}

func TestRequestIDIsEchoed(t *testing.T) {
	a := newAPI(t)
	req := httptest.NewRequest(http.MethodGet, "/ping", bytes.NewReader(nil))
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
}
