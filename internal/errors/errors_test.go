package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "group"}
		assert.Equal(t, "group not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "group"}
		err2 := &NotFoundError{Entity: "group"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "group"}
		err2 := &NotFoundError{Entity: "event"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrGroupNotFound, ErrGroupNotFound))
		assert.False(t, errors.Is(ErrGroupNotFound, ErrEventNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrEventNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrMessageNotFound)))
		assert.False(t, IsNotFound(ErrNotAMember))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "title", Message: "too long"}
		assert.Equal(t, "validation error: title - too long", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "message text is empty"}
		assert.Equal(t, "validation error: message text is empty", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("title", "too long")
		assert.True(t, IsValidation(err))
		assert.True(t, IsValidation(ErrInvalidEmoji))
		assert.False(t, IsValidation(ErrGroupNotFound))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &ConflictError{Entity: "user", Context: "email already registered"}
		assert.Equal(t, "user conflict: email already registered", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &ConflictError{Entity: "group code"}
		assert.Equal(t, "group code conflict", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		assert.True(t, errors.Is(ErrEmailTaken, &ConflictError{Entity: "user"}))
		assert.False(t, errors.Is(ErrEmailTaken, ErrCodeGenerationExhausted))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrCodeGenerationExhausted))
		assert.False(t, IsConflict(ErrGroupNotFound))
	})
}

func TestAuthorizationErrors(t *testing.T) {
	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrNotAMember))
		assert.True(t, IsAuthorization(fmt.Errorf("leave: %w", ErrNotGroupOwner)))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrUnauthenticated))
		assert.False(t, IsAuthentication(ErrNotAMember))
	})
}

func TestUpstreamError(t *testing.T) {
	err := NewUpstreamError("weather service", "timeout")
	assert.Equal(t, "weather service unavailable: timeout", err.Error())
	assert.True(t, IsUpstream(err))
	assert.False(t, IsUpstream(ErrGroupNotFound))

	bare := &UpstreamError{Service: "weather service"}
	assert.Equal(t, "weather service unavailable", bare.Error())
}
