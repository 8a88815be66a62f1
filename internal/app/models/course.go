package models

import (
	"github.com/yigit/coursereg/internal/pkg/apperrors"
	"github.com/yigit/coursereg/internal/pkg/validation"
)

// Course represents a course students can enroll in.
type Course struct {
	ID          int64   `json:"course_id" db:"course_id"`
	Name        string  `json:"course_name" db:"course_name"`
	Code        string  `json:"course_code" db:"course_code"` // Unique across courses
	Description *string `json:"course_description" db:"course_description"` // Nullable
}

// NewCourse builds a Course from user input, reporting a missing name and a
// missing code together.
func NewCourse(name, code string, description *string) (*Course, error) {
	verr := &apperrors.ValidationError{}

	n, ok := normalizeRequired(name)
	if !ok {
		verr.Add("course_name", apperrors.CodeCourseNameRequired)
	}
	c, ok := normalizeRequired(code)
	if !ok {
		verr.Add("course_code", apperrors.CodeCourseCodeRequired)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	description = normalizeOptional(description)
	if err := validation.First(
		validation.Text("course_name", n).WithMaxLength(MaxTextLength),
		validation.Text("course_code", c).WithMaxLength(MaxTextLength),
		validation.OptionalText("course_description", description).WithMaxLength(MaxTextLength),
	); err != nil {
		return nil, err
	}

	return &Course{
		Name:        n,
		Code:        c,
		Description: description,
	}, nil
}
