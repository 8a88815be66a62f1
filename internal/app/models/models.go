package models

import "strings"

// MaxTextLength is the widest value accepted for any text column
const MaxTextLength = 100

// normalizeRequired trims a required text value; blank means missing
func normalizeRequired(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// normalizeOptional trims an optional text value and maps blank to NULL
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
