package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/lifeos-server/internal/model"
)

const internalErrorMessage = "Internal Server Error"

// handleError maps a service error to an HTTP status and a message that is
// safe to show to the user.
func handleError(err error) (int, string) {
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, vErr.Message
	}

	switch {
	case errors.Is(err, model.ErrUnauthorized), errors.Is(err, model.ErrInvalidToken):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "Message not found"
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict, "User already exists"
	case errors.Is(err, model.ErrCapsuleLocked):
		return http.StatusLocked, "Message is still locked"
	case errors.Is(err, model.ErrDisabled):
		return http.StatusNotFound, "Not Found"
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

func abortWithError(c *gin.Context, err error) {
	status, message := handleError(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
