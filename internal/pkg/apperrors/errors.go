package apperrors

import (
	"errors"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Enrollment reference errors. Returned when an enrollment flow names a
// student or course that does not exist.
var (
	ErrInvalidStudent = errors.New("student does not exist")
	ErrInvalidCourse  = errors.New("course does not exist")
)

// NewResourceNotFoundError creates a not-found error carrying a catalog code
func NewResourceNotFoundError(code ErrorCode) *CustomError {
	return NewCustomError(ErrResourceNotFound, code.Message()).WithCode(code)
}

// NewConflictError creates a conflict error carrying a catalog code
func NewConflictError(code ErrorCode) *CustomError {
	return NewCustomError(ErrConflict, code.Message()).WithCode(code)
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) *CustomError {
	return NewCustomError(ErrBadRequest, message).WithCode(CodeBadRequest)
}

// NewInvalidStudentError reports a missing student in an enrollment flow
func NewInvalidStudentError() *CustomError {
	return NewCustomError(ErrInvalidStudent, CodeEnrollmentStudentMissing.Message()).WithCode(CodeEnrollmentStudentMissing)
}

// NewInvalidCourseError reports a missing course in an enrollment flow
func NewInvalidCourseError() *CustomError {
	return NewCustomError(ErrInvalidCourse, CodeEnrollmentCourseMissing.Message()).WithCode(CodeEnrollmentCourseMissing)
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    ErrorCode
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithCode adds an error code
func (e *CustomError) WithCode(code ErrorCode) *CustomError {
	e.Code = code
	return e
}

// Violation is a single failed field check.
type Violation struct {
	Field string
	Code  ErrorCode
}

// ValidationError collects every missing or invalid field of a request so
// callers can report them together.
type ValidationError struct {
	Violations []Violation
}

// Add records a violation and returns the receiver for chaining
func (e *ValidationError) Add(field string, code ErrorCode) *ValidationError {
	e.Violations = append(e.Violations, Violation{Field: field, Code: code})
	return e
}

// HasViolations reports whether any violation was recorded
func (e *ValidationError) HasViolations() bool {
	return e != nil && len(e.Violations) > 0
}

// OrNil returns nil when no violation was recorded. Use it when returning a
// *ValidationError as an error so an empty collector is not a non-nil error.
func (e *ValidationError) OrNil() error {
	if !e.HasViolations() {
		return nil
	}
	return e
}

// Error implements error interface
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return ErrValidationFailed.Error() + ": missing " + strings.Join(fields, ", ")
}

// Unwrap implements errors.Unwrap interface
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
