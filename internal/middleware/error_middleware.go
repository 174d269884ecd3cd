package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursecat/api/internal/app/models/dto"
	"github.com/coursecat/api/internal/pkg/apperrors"
	"github.com/coursecat/api/internal/pkg/logger"
)

// conflictMessages maps duplicate-resource sentinels to the messages the
// API reports for them.
var conflictMessages = map[error]string{
	apperrors.ErrLoginAlreadyTaken:       "User already exists",
	apperrors.ErrAreaAlreadyExists:       "Area already exists",
	apperrors.ErrInstructorAlreadyExists: "Instructor already exists",
	apperrors.ErrCourseAlreadyExists:     "Course already exists",
	apperrors.ErrInstructorHasCourses:    "Instructor is attached to courses and cannot be deleted",
	apperrors.ErrResourceAlreadyExists:   "Resource already exists",
	apperrors.ErrConflict:                "Conflict",
}

// HandleAPIError translates service-layer errors into HTTP responses.
// Duplicates and reference conflicts respond 400, missing resources 404,
// everything unrecognized 500.
func HandleAPIError(ctx *gin.Context, err error) {
	var customErr *apperrors.CustomError
	customMessage := ""
	if errors.As(err, &customErr) {
		customMessage = customErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		message := customMessage
		if message == "" {
			message = "Invalid credentials"
		}
		respond(ctx, http.StatusBadRequest, dto.ErrorCodeInvalidCredentials, message)

	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrAreaNotFound,
		apperrors.ErrInstructorNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrRoleNotFound):
		message := customMessage
		if message == "" {
			message = err.Error()
		}
		respond(ctx, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message)

	case isConflict(err):
		respond(ctx, http.StatusBadRequest, dto.ErrorCodeConflict, conflictMessage(err, customMessage))

	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(ctx, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error())

	case errors.Is(err, apperrors.ErrBadRequest):
		message := customMessage
		if message == "" {
			message = err.Error()
		}
		respond(ctx, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message)

	default:
		logger.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled error")
		respond(ctx, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "An unexpected error occurred")
	}
}

func isConflict(err error) bool {
	for sentinel := range conflictMessages {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func conflictMessage(err error, customMessage string) string {
	if customMessage != "" {
		return customMessage
	}
	for sentinel, message := range conflictMessages {
		if errors.Is(err, sentinel) {
			return message
		}
	}
	return "Conflict"
}

func respond(ctx *gin.Context, status int, code dto.ErrorCode, message string) {
	ctx.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
