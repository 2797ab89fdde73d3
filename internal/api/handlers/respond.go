package handlers

import (
	"errors"
	"net/http"

	"github.com/evandev76/event-organizer-app/internal/auth"
	apperrors "github.com/evandev76/event-organizer-app/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// respondError maps an error to its HTTP status and writes the JSON body.
// Every error reaches the client as {"error": message} with a stable status
// derived from the error kind, never from string matching.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, apperrors.ErrCodeGenerationExhausted):
		// exhausting the code space is an operator problem, not caller input
		status = http.StatusInternalServerError
	case errors.Is(err, apperrors.ErrInviteExpired), errors.Is(err, apperrors.ErrInviteExhausted):
		status = http.StatusGone
	case errors.Is(err, apperrors.ErrEventNotEnded):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrMessageImmutable), errors.Is(err, apperrors.ErrMessageProtected):
		status = http.StatusForbidden
	case errors.As(err, &validationErrs), apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		status = http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		status = http.StatusForbidden
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsConflict(err):
		status = http.StatusConflict
	case apperrors.IsUpstream(err):
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// callerID returns the authenticated user id or writes a 401
func callerID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.UserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return uuid.Nil, false
	}
	return id, true
}
