package service

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("No active account found with the given credentials")
	ErrUnauthenticated    = errors.New("authentication credentials were not provided or are invalid")
	ErrForbidden          = errors.New("forbidden: user does not have permission for this action")
	ErrTaskNotFound       = errors.New("task not found")
	ErrUserAlreadyExists  = errors.New("user with this phone number already exists")
)

// ValidationError reports input that failed validation. Fields maps the
// offending field name to a human readable message and may be empty.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

// NewValidationError returns a ValidationError carrying a single message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message, Fields: map[string]string{}}
}
