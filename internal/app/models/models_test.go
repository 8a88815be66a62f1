package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursereg/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func violationCodes(t *testing.T, err error) []apperrors.ErrorCode {
	t.Helper()
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	codes := make([]apperrors.ErrorCode, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		codes = append(codes, v.Code)
	}
	return codes
}

func TestNewStudent(t *testing.T) {
	tests := []struct {
		name      string
		roll      string
		first     string
		last      *string
		wantCodes []apperrors.ErrorCode
		want      *Student
	}{
		{
			name:  "all fields",
			roll:  " A1 ",
			first: "Ada",
			last:  strPtr("Lovelace"),
			want:  &Student{RollNumber: "A1", FirstName: "Ada", LastName: strPtr("Lovelace")},
		},
		{
			name:  "blank last name becomes null",
			roll:  "A2",
			first: "Bob",
			last:  strPtr("   "),
			want:  &Student{RollNumber: "A2", FirstName: "Bob"},
		},
		{
			name:      "missing roll number",
			first:     "Ada",
			wantCodes: []apperrors.ErrorCode{apperrors.CodeRollNumberRequired},
		},
		{
			name:      "whitespace first name",
			roll:      "A1",
			first:     "  ",
			wantCodes: []apperrors.ErrorCode{apperrors.CodeFirstNameRequired},
		},
		{
			name:      "both missing reported together",
			wantCodes: []apperrors.ErrorCode{apperrors.CodeRollNumberRequired, apperrors.CodeFirstNameRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStudent(tt.roll, tt.first, tt.last)
			if tt.wantCodes != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
				assert.Equal(t, tt.wantCodes, violationCodes(t, err))
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestNewCourse(t *testing.T) {
	c, err := NewCourse("CS101", "C1", nil)
	require.NoError(t, err)
	assert.Equal(t, &Course{Name: "CS101", Code: "C1"}, c)

	_, err = NewCourse("", "", strPtr("intro"))
	assert.Equal(t,
		[]apperrors.ErrorCode{apperrors.CodeCourseNameRequired, apperrors.CodeCourseCodeRequired},
		violationCodes(t, err))

	_, err = NewCourse("Algorithms", "", nil)
	assert.Equal(t, []apperrors.ErrorCode{apperrors.CodeCourseCodeRequired}, violationCodes(t, err))

	_, err = NewCourse("Algorithms", "C2", strPtr(strings.Repeat("d", MaxTextLength+1)))
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.EqualError(t, err, "course_description must be at most 100 characters")
}

func TestNewEnrollment(t *testing.T) {
	e, err := NewEnrollment(1, 2)
	require.NoError(t, err)
	assert.Equal(t, &Enrollment{StudentID: 1, CourseID: 2}, e)

	_, err = NewEnrollment(1, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCourse)

	_, err = NewEnrollment(0, 5)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStudent)
}
