package dto

import "github.com/yigit/coursereg/internal/pkg/apperrors"

// ErrorDetail is the JSON payload of every failed request
type ErrorDetail struct {
	ErrorCode    string `json:"error_code" example:"STUDENT001"`
	ErrorMessage string `json:"error_message" example:"Roll Number required"`
}

// NewErrorDetail creates an error detail for a catalog code, using the
// catalog message
func NewErrorDetail(code apperrors.ErrorCode) ErrorDetail {
	return ErrorDetail{
		ErrorCode:    string(code),
		ErrorMessage: code.Message(),
	}
}

// NewErrorDetailWithMessage creates an error detail with a custom message
func NewErrorDetailWithMessage(code apperrors.ErrorCode, message string) ErrorDetail {
	return ErrorDetail{
		ErrorCode:    string(code),
		ErrorMessage: message,
	}
}

// ValidationErrorBody renders a validation failure: a single object when one
// field is missing, an array in canonical field order when several are.
func ValidationErrorBody(verr *apperrors.ValidationError) interface{} {
	details := make([]ErrorDetail, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		details = append(details, NewErrorDetail(v.Code))
	}
	if len(details) == 1 {
		return details[0]
	}
	return details
}
