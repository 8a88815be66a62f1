package dto

// EnrollRequest is the body of an enroll request. A missing course_id is
// reported as a course that does not exist.
type EnrollRequest struct {
	CourseID int64 `json:"course_id" example:"1"`
}
