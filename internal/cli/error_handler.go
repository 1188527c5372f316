package cli

import (
	"fmt"

	"workhours/internal/errors"
	"workhours/internal/validation"
)

// ErrorHandler turns service errors into messages fit for a terminal
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle prefixes the user-facing message with the failed operation.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return fmt.Errorf("failed to %s: unknown error", operation)
	}
	if ve, ok := validation.AsValidationError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, ve.GetUserFriendlyMessage())
	}
	if errors.IsAppError(err) {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}
