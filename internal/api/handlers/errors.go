package handlers

import (
	"errors"
	"net/http"

	"device-checkout-backend/internal/auth"
	apperrors "device-checkout-backend/internal/errors"
	"device-checkout-backend/internal/logger"
	"device-checkout-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case apperrors.IsValidation(err),
		errors.As(err, &validationErrs),
		errors.Is(err, apperrors.ErrInvalidPaginationParams):
		return http.StatusBadRequest
	case apperrors.IsTransitionRejected(err),
		apperrors.IsAlreadyExists(err),
		errors.Is(err, apperrors.ErrAlreadyProcessed):
		return http.StatusConflict
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrLockContentionExhausted), apperrors.IsTransient(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error": ...}. Internal errors are logged and hidden from the client.
func respondError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).
			WithField("path", c.FullPath()).
			Error("request failed")
		c.JSON(status, ErrorResponse{Error: "Internal server error"})
		return
	}
	if status == http.StatusServiceUnavailable {
		c.Header("Retry-After", "1")
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// currentActor resolves the authenticated caller set by the auth middleware
func currentActor(c *gin.Context) (service.Actor, bool) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return service.Actor{}, false
	}
	return service.Actor{ID: identity.UserID, Role: identity.Role}, true
}

// parseUUIDParam reads a path parameter as a UUID, writing a 400 on failure
func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}
