package models

import (
	"github.com/yigit/coursereg/internal/pkg/apperrors"
	"github.com/yigit/coursereg/internal/pkg/validation"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID         int64   `json:"student_id" db:"student_id" example:"1"`
	RollNumber string  `json:"roll_number" db:"roll_number" example:"A1"` // Business key, unique across students
	FirstName  string  `json:"first_name" db:"first_name" example:"Ada"`
	LastName   *string `json:"last_name" db:"last_name" example:"Lovelace"` // Nullable
}

// NewStudent builds a Student from user input. Every missing required field
// is reported in one ValidationError, roll number first.
func NewStudent(rollNumber, firstName string, lastName *string) (*Student, error) {
	verr := &apperrors.ValidationError{}

	roll, ok := normalizeRequired(rollNumber)
	if !ok {
		verr.Add("roll_number", apperrors.CodeRollNumberRequired)
	}
	first, ok := normalizeRequired(firstName)
	if !ok {
		verr.Add("first_name", apperrors.CodeFirstNameRequired)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	lastName = normalizeOptional(lastName)
	if err := validation.First(
		validation.Text("roll_number", roll).WithMaxLength(MaxTextLength),
		validation.Text("first_name", first).WithMaxLength(MaxTextLength),
		validation.OptionalText("last_name", lastName).WithMaxLength(MaxTextLength),
	); err != nil {
		return nil, err
	}

	return &Student{
		RollNumber: roll,
		FirstName:  first,
		LastName:   lastName,
	}, nil
}
