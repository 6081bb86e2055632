package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/petadminhq/pet_admin_app/internal/apperrors"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// serviceErrorStatus maps a service error kind to an HTTP status code.
func serviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrMissingInput), errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrNotAuthenticated),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrVersionMismatch):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotificationFailed), errors.Is(err, apperrors.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorKinds lists the sentinel kinds whose text prefixes service errors.
var errorKinds = []error{
	apperrors.ErrMissingInput,
	apperrors.ErrValidation,
	apperrors.ErrDuplicate,
	apperrors.ErrNotFound,
	apperrors.ErrNotAuthenticated,
	apperrors.ErrForbidden,
	apperrors.ErrTokenInvalid,
	apperrors.ErrVersionMismatch,
}

// serviceErrorMessage returns the user-facing portion of a service error,
// dropping the leading error-kind text when present.
func serviceErrorMessage(err error) string {
	msg := err.Error()
	for _, kind := range errorKinds {
		if prefix := kind.Error() + ": "; strings.HasPrefix(msg, prefix) {
			return msg[len(prefix):]
		}
	}
	return msg
}

// respondServiceError writes the mapped status for a service error. Client
// faults carry the service's message; server faults log the underlying error
// and expose only serverMsg.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, serverMsg string) {
	status := serviceErrorStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(serverMsg, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: serverMsg})
		return
	}
	c.JSON(status, ErrorResponse{Error: serviceErrorMessage(err)})
}
