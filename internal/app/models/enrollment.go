package models

import "github.com/yigit/coursereg/internal/pkg/apperrors"

// Enrollment links one student to one course
type Enrollment struct {
	ID        int64 `json:"enrollment_id" db:"enrollment_id"`
	StudentID int64 `json:"student_id" db:"student_id"`
	CourseID  int64 `json:"course_id" db:"course_id"`
}

// NewEnrollment builds an Enrollment for a student/course pair. Ids must be
// positive; whether they resolve is checked against the store by the caller.
func NewEnrollment(studentID, courseID int64) (*Enrollment, error) {
	if courseID <= 0 {
		return nil, apperrors.NewInvalidCourseError()
	}
	if studentID <= 0 {
		return nil, apperrors.NewInvalidStudentError()
	}
	return &Enrollment{StudentID: studentID, CourseID: courseID}, nil
}
