package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConflictError represents an error when an entity already exists or a
// uniqueness constraint cannot be satisfied
type ConflictError struct {
	Entity  string
	Context string
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s conflict: %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// UpstreamError represents a failure of an external collaborator (weather)
type UpstreamError struct {
	Service string
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s unavailable: %s", e.Service, e.Message)
	}
	return fmt.Sprintf("%s unavailable", e.Service)
}

// Entity Not Found Errors
var (
	ErrUserNotFound    = &NotFoundError{Entity: "user"}
	ErrGroupNotFound   = &NotFoundError{Entity: "group"}
	ErrEventNotFound   = &NotFoundError{Entity: "event"}
	ErrMessageNotFound = &NotFoundError{Entity: "message"}
	ErrCommentNotFound = &NotFoundError{Entity: "comment"}
	ErrPollNotFound    = &NotFoundError{Entity: "poll"}
	ErrInviteNotFound  = &NotFoundError{Entity: "invite"}
)

// Conflict Errors
var (
	ErrEmailTaken              = &ConflictError{Entity: "user", Context: "email already registered"}
	ErrCodeGenerationExhausted = &ConflictError{Entity: "group code", Context: "could not generate a unique code"}
)

// Authorization Errors
var (
	ErrNotAMember         = &AuthorizationError{Message: "caller is not a member of this group"}
	ErrNotGroupOwner      = &AuthorizationError{Message: "only the group owner may do this"}
	ErrNotModerator       = &AuthorizationError{Message: "owner or admin role required"}
	ErrNotEventCreator    = &AuthorizationError{Message: "only the event creator may do this"}
	ErrNotMessageAuthor   = &AuthorizationError{Message: "only the author may do this"}
	ErrNotCommentAuthor   = &AuthorizationError{Message: "only the author may do this"}
	ErrNotParticipant     = &AuthorizationError{Message: "only participants may rate this event"}
	ErrMessageNotPinnable = &AuthorizationError{Message: "only text messages can be pinned"}
)

// Business Logic Errors
var (
	ErrEmptyMessage      = &ValidationError{Message: "message text is empty"}
	ErrInvalidEmoji      = &ValidationError{Field: "emoji", Message: "emoji is not allowed"}
	ErrInvalidDateRange  = &ValidationError{Field: "end", Message: "end must be after start"}
	ErrInvalidPollOption = &ValidationError{Field: "optionId", Message: "option does not exist"}
	ErrInvalidRatingVote = &ValidationError{Field: "vote", Message: "vote must be up, down or clear"}
	ErrEventNotEnded     = errors.New("event has not ended yet")
	ErrMessageImmutable  = errors.New("message of this kind cannot be edited")
	ErrMessageProtected  = errors.New("message of this kind cannot be deleted")
	ErrInviteExpired     = errors.New("invite has expired")
	ErrInviteExhausted   = errors.New("invite has no uses left")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrUnauthenticated    = &AuthenticationError{Message: "authentication required"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewUpstreamError creates a new UpstreamError for an external collaborator
func NewUpstreamError(service, message string) error {
	return &UpstreamError{Service: service, Message: message}
}
