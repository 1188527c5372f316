package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeDatabase, "database"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorTypeTimeout, "timeout"},
		{ErrorTypePermission, "permission"},
		{ErrorTypeUnauthorized, "unauthorized"},
		{ErrorTypeConflict, "conflict"},
		{ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.errorType.String(); got != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorType_HTTPStatus(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  int
	}{
		{ErrorTypeValidation, http.StatusBadRequest},
		{ErrorTypeInvalidInput, http.StatusBadRequest},
		{ErrorTypeNotFound, http.StatusNotFound},
		{ErrorTypeDatabase, http.StatusInternalServerError},
		{ErrorTypeTimeout, http.StatusGatewayTimeout},
		{ErrorTypePermission, http.StatusForbidden},
		{ErrorTypeUnauthorized, http.StatusUnauthorized},
		{ErrorTypeConflict, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.errorType.String(), func(t *testing.T) {
			if got := tt.errorType.HTTPStatus(); got != tt.expected {
				t.Errorf("ErrorType.HTTPStatus() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	withoutCause := &AppError{Type: ErrorTypeValidation, Message: "description is required"}
	if got := withoutCause.Error(); got != "validation: description is required" {
		t.Errorf("AppError.Error() = %q", got)
	}

	withCause := &AppError{Type: ErrorTypeDatabase, Message: "insert entry", Cause: errors.New("disk full")}
	if got := withCause.Error(); got != "database: insert entry (caused by: disk full)" {
		t.Errorf("AppError.Error() = %q", got)
	}
}

func TestAppError_UnwrapAndIs(t *testing.T) {
	cause := errors.New("locked")
	err := NewDatabaseError("list entries", cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should find the cause")
	}
	if !errors.Is(err, &AppError{Type: ErrorTypeDatabase, Code: "DATABASE_ERROR"}) {
		t.Errorf("errors.Is should match type and code")
	}
	if errors.Is(err, &AppError{Type: ErrorTypeNotFound, Code: "NOT_FOUND"}) {
		t.Errorf("errors.Is should not match a different type")
	}
}

func TestAppError_Context(t *testing.T) {
	err := &AppError{Type: ErrorTypeValidation}

	if _, ok := err.GetContext("owner"); ok {
		t.Errorf("GetContext on empty context should report missing key")
	}

	err.WithContext("owner", "u-1").WithContext("date", "2026-10-19")

	owner, ok := err.GetContext("owner")
	if !ok || owner != "u-1" {
		t.Errorf("GetContext(owner) = %v, %v", owner, ok)
	}
	if len(err.Context) != 2 {
		t.Errorf("expected 2 context values, got %d", len(err.Context))
	}
}
