package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursereg/internal/app/models/dto"
	"github.com/yigit/coursereg/internal/pkg/apperrors"
	"github.com/yigit/coursereg/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) && verr.HasViolations() {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ValidationErrorBody(verr))
		return
	}

	var status int
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
	case apperrors.Is(err, apperrors.ErrInvalidStudent, apperrors.ErrInvalidCourse, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("requestID", c.GetString(RequestIDKey)).
			Msg("Unhandled error")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorDetail(apperrors.CodeInternal))
		return
	}

	c.AbortWithStatusJSON(status, errorDetailFor(err))
}

// errorDetailFor renders the code and message carried by a CustomError
func errorDetailFor(err error) dto.ErrorDetail {
	var cerr *apperrors.CustomError
	if errors.As(err, &cerr) && cerr.Code != "" {
		return dto.NewErrorDetailWithMessage(cerr.Code, cerr.Error())
	}
	return dto.NewErrorDetailWithMessage(apperrors.CodeBadRequest, err.Error())
}

