package validation

import (
	"fmt"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		errors   []FieldError
		contains string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "date", Message: "date is required"}}, "validation error for field 'date': date is required"},
		{"Multiple errors", []FieldError{
			{Field: "date", Message: "date is required"},
			{Field: "description", Message: "description is required"},
		}, "multiple validation errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			if result := ve.Error(); !strings.Contains(result, tt.contains) {
				t.Errorf("ValidationError.Error() = %v, expected to contain %v", result, tt.contains)
			}
		})
	}
}

func TestValidationError_Adders(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("description")
	ve.AddInvalidFormatError("start_time", "9h", "HH:MM")
	ve.AddInvalidLengthError("username", "ab", 3, 50)
	ve.AddInvalidLengthError("password", nil, 6, 0)
	ve.AddInvalidLengthError("description", nil, 0, 500)
	ve.AddInvalidRangeError("end_time", "08:00", EndAfterStartMessage)
	ve.AddInvalidCharacterError("username", "a b")
	ve.AddMismatchError("confirm_password", "password")

	expected := []struct {
		field   string
		typ     ValidationErrorType
		message string
	}{
		{"description", ErrorTypeRequired, "description is required"},
		{"start_time", ErrorTypeInvalidFormat, "start_time has invalid format, expected: HH:MM"},
		{"username", ErrorTypeInvalidLength, "username must be between 3 and 50 characters long"},
		{"password", ErrorTypeInvalidLength, "password must be at least 6 characters long"},
		{"description", ErrorTypeInvalidLength, "description must be at most 500 characters long"},
		{"end_time", ErrorTypeInvalidRange, "end time must be after start time"},
		{"username", ErrorTypeInvalidCharacter, "username contains invalid characters"},
		{"confirm_password", ErrorTypeMismatch, "confirm_password must match password"},
	}

	if len(ve.Errors) != len(expected) {
		t.Fatalf("expected %d errors, got %d", len(expected), len(ve.Errors))
	}
	for i, want := range expected {
		got := ve.Errors[i]
		if got.Field != want.field || got.Type != want.typ || got.Message != want.message {
			t.Errorf("error %d = %+v, want %+v", i, got, want)
		}
	}

	if n := len(ve.GetFieldErrors("username")); n != 2 {
		t.Errorf("GetFieldErrors(username) returned %d errors, want 2", n)
	}
}

func TestValidationError_ErrOrNil(t *testing.T) {
	ve := NewValidationError()
	if ve.ErrOrNil() != nil {
		t.Errorf("empty ValidationError should yield nil")
	}
	ve.AddRequiredError("date")
	if ve.ErrOrNil() == nil {
		t.Errorf("non-empty ValidationError should yield itself")
	}
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("date")
	wrapped := fmt.Errorf("create entry: %w", ve)

	if !IsValidationError(wrapped) {
		t.Errorf("IsValidationError should see through wrapping")
	}
	got, ok := AsValidationError(wrapped)
	if !ok || got != ve {
		t.Errorf("AsValidationError should return the original error")
	}
	if IsValidationError(fmt.Errorf("plain")) {
		t.Errorf("IsValidationError should be false for plain errors")
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	empty := NewValidationError()
	if got := empty.GetUserFriendlyMessage(); got != "Input validation failed" {
		t.Errorf("unexpected message %q", got)
	}

	single := NewValidationError()
	single.AddInvalidRangeError("end_time", nil, EndAfterStartMessage)
	if got := single.GetUserFriendlyMessage(); got != EndAfterStartMessage {
		t.Errorf("unexpected message %q", got)
	}

	multi := NewValidationError()
	multi.AddRequiredError("date")
	multi.AddRequiredError("description")
	want := "Multiple validation errors occurred:\n- date is required\n- description is required"
	if got := multi.GetUserFriendlyMessage(); got != want {
		t.Errorf("unexpected message %q", got)
	}
}
