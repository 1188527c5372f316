package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name        string
		err         *AppError
		wantType    ErrorType
		wantCode    string
		wantMessage string
	}{
		{"validation", NewValidationError("end time must be after start time", nil), ErrorTypeValidation, "VALIDATION_FAILED", "end time must be after start time"},
		{"not found", NewNotFoundError("profile", "alice"), ErrorTypeNotFound, "NOT_FOUND", "profile not found: alice"},
		{"database", NewDatabaseError("create entry", cause), ErrorTypeDatabase, "DATABASE_ERROR", "database operation failed: create entry"},
		{"invalid input", NewInvalidInputError("start_time", "25:00", "hour out of range"), ErrorTypeInvalidInput, "INVALID_INPUT", "invalid input for start_time: hour out of range"},
		{"timeout", NewTimeoutError("list entries", "5s"), ErrorTypeTimeout, "TIMEOUT", "operation timed out: list entries"},
		{"permission", NewPermissionError("list", "profiles"), ErrorTypePermission, "PERMISSION_DENIED", "permission denied for list on profiles"},
		{"unauthorized", NewUnauthorizedError("session expired"), ErrorTypeUnauthorized, "UNAUTHORIZED", "session expired"},
		{"conflict", NewConflictError("profile", "alice"), ErrorTypeConflict, "CONFLICT", "profile already exists: alice"},
		{"wrap", WrapError(cause, ErrorTypeTimeout, "store slow"), ErrorTypeTimeout, "timeout", "store slow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Type != tt.wantType {
				t.Errorf("type = %v, want %v", tt.err.Type, tt.wantType)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("code = %v, want %v", tt.err.Code, tt.wantCode)
			}
			if tt.err.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", tt.err.Message, tt.wantMessage)
			}
		})
	}
}

func TestNewInvalidInputError_Context(t *testing.T) {
	err := NewInvalidInputError("end_time", "9:5", "expected HH:MM")

	for key, want := range map[string]any{"field": "end_time", "value": "9:5", "reason": "expected HH:MM"} {
		got, ok := err.GetContext(key)
		if !ok || got != want {
			t.Errorf("context %s = %v, want %v", key, got, want)
		}
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NewNotFoundError("entry", "42")
	wrapped := fmt.Errorf("loading dashboard: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok || got != appErr {
		t.Errorf("AsAppError should unwrap to the original AppError")
	}
	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Errorf("AsAppError should reject plain errors")
	}
	if IsAppError(nil) {
		t.Errorf("IsAppError(nil) should be false")
	}
	if !IsErrorType(wrapped, ErrorTypeNotFound) {
		t.Errorf("IsErrorType should see through wrapping")
	}
	if IsErrorType(errors.New("plain"), ErrorTypeNotFound) {
		t.Errorf("IsErrorType should be false for plain errors")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", NewValidationError("description is required", nil), "description is required"},
		{"conflict", NewConflictError("profile", "bob"), "profile already exists: bob"},
		{"unauthorized", NewUnauthorizedError("not logged in"), "not logged in"},
		{"database hidden", NewDatabaseError("insert", errors.New("SQLITE_BUSY")), "A database error occurred. Please try again."},
		{"timeout hidden", NewTimeoutError("insert", "5s"), "The operation timed out. Please try again."},
		{"unknown type", &AppError{Type: ErrorType(42), Message: "x"}, "An unexpected error occurred. Please try again."},
		{"plain", errors.New("plain failure"), "plain failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.want {
				t.Errorf("GetUserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetErrorCodeAndStatus(t *testing.T) {
	if got := GetErrorCode(NewConflictError("profile", "bob")); got != "CONFLICT" {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := GetErrorCode(errors.New("plain")); got != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := GetHTTPStatus(fmt.Errorf("wrap: %w", NewUnauthorizedError("expired"))); got != http.StatusUnauthorized {
		t.Errorf("GetHTTPStatus() = %v", got)
	}
	if got := GetHTTPStatus(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("GetHTTPStatus() = %v", got)
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"validation", NewValidationError("bad", nil), false},
		{"not found", NewNotFoundError("entry", "1"), false},
		{"unauthorized", NewUnauthorizedError("expired"), false},
		{"conflict", NewConflictError("profile", "bob"), false},
		{"database", NewDatabaseError("insert", nil), true},
		{"permission", NewPermissionError("list", "profiles"), true},
		{"plain", errors.New("plain"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldLogError(tt.err); got != tt.want {
				t.Errorf("ShouldLogError() = %v, want %v", got, tt.want)
			}
		})
	}
}
