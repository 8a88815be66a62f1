package validation

import (
	"fmt"
	"unicode/utf8"

	"github.com/yigit/coursereg/internal/pkg/apperrors"
)

// TextRule bounds the length of one named text field.
// Length is counted in runes, the same way the request binding counts it.
type TextRule struct {
	Field  string
	Value  string
	MaxLen int
}

// Text creates a rule for field with no bounds yet
func Text(field, value string) *TextRule {
	return &TextRule{Field: field, Value: value}
}

// OptionalText creates a rule for a nullable field; nil always passes
func OptionalText(field string, value *string) *TextRule {
	if value == nil {
		return Text(field, "")
	}
	return Text(field, *value)
}

// WithMaxLength sets maximum length
func (r *TextRule) WithMaxLength(max int) *TextRule {
	r.MaxLen = max
	return r
}

// Check returns a bad request error when the value breaks a bound
func (r *TextRule) Check() error {
	if r.MaxLen > 0 && utf8.RuneCountInString(r.Value) > r.MaxLen {
		return apperrors.NewBadRequestError(fmt.Sprintf("%s must be at most %d characters", r.Field, r.MaxLen))
	}
	return nil
}

// First runs rules in order and returns the first failure
func First(rules ...*TextRule) error {
	for _, r := range rules {
		if err := r.Check(); err != nil {
			return err
		}
	}
	return nil
}
