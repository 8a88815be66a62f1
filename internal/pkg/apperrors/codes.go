package apperrors

// ErrorCode is a stable, client-facing error identifier.
type ErrorCode string

// Course codes
const (
	CodeCourseNameRequired ErrorCode = "COURSE001"
	CodeCourseCodeRequired ErrorCode = "COURSE002"
	CodeCourseCodeExists   ErrorCode = "COURSE003"
	CodeCourseNotFound     ErrorCode = "COURSE004"
)

// Student codes
const (
	CodeRollNumberRequired ErrorCode = "STUDENT001"
	CodeFirstNameRequired  ErrorCode = "STUDENT002"
	CodeStudentExists      ErrorCode = "STUDENT003"
	CodeStudentNotFound    ErrorCode = "STUDENT004"
)

// Enrollment codes
const (
	CodeEnrollmentCourseMissing  ErrorCode = "ENROLLMENT001"
	CodeEnrollmentStudentMissing ErrorCode = "ENROLLMENT002"
	CodeStudentNotEnrolled       ErrorCode = "ENROLLMENT003"
	CodeEnrollmentNotFound       ErrorCode = "ENROLLMENT004"
	CodeAlreadyEnrolled          ErrorCode = "ENROLLMENT005"
	CodeCourseHasNoStudents      ErrorCode = "ENROLLMENT006"
)

// Generic codes
const (
	CodeBadRequest ErrorCode = "BAD_REQUEST"
	CodeInternal   ErrorCode = "INTERNAL_ERROR"
)

var codeMessages = map[ErrorCode]string{
	CodeCourseNameRequired: "Course Name is Required",
	CodeCourseCodeRequired: "Course Code is Required",
	CodeCourseCodeExists:   "course_code already exist",
	CodeCourseNotFound:     "Course not found",

	CodeRollNumberRequired: "Roll Number required",
	CodeFirstNameRequired:  "First Name is required",
	CodeStudentExists:      "Student already exist",
	CodeStudentNotFound:    "Student not found",

	CodeEnrollmentCourseMissing:  "Course does not exist",
	CodeEnrollmentStudentMissing: "Student does not exist",
	CodeStudentNotEnrolled:       "Student is not enrolled in any course",
	CodeEnrollmentNotFound:       "Enrollment for the student not found",
	CodeAlreadyEnrolled:          "Student is already enrolled in this course",
	CodeCourseHasNoStudents:      "No students enrolled in this course",

	CodeBadRequest: "Bad request",
	CodeInternal:   "Internal server error",
}

// Message returns the catalog message for the code
func (c ErrorCode) Message() string {
	if msg, ok := codeMessages[c]; ok {
		return msg
	}
	return string(c)
}
