package validation

import (
	"strings"
	"testing"
	"time"

	"workhours/internal/config"
	"workhours/internal/domain"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "Code review", true},
		{"String with leading/trailing spaces", "  standup  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := validator.IsNonEmptyString(tt.input); result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidStringLength(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		min      int
		max      int
		expected bool
	}{
		{"Empty string, min 1", "", 1, 10, false},
		{"Too short", "a", 2, 10, false},
		{"Too long", "very long string", 1, 5, false},
		{"Exactly min", "ab", 2, 10, true},
		{"Exactly max", "hello", 1, 5, true},
		{"Trims spaces", "  hello  ", 1, 5, true},
		{"Counts characters not bytes", "Überstunden", 1, 11, true},
		{"Unbounded max", strings.Repeat("x", 1000), 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := validator.IsValidStringLength(tt.input, tt.min, tt.max); result != tt.expected {
				t.Errorf("IsValidStringLength(%q, %d, %d) = %v, expected %v", tt.input, tt.min, tt.max, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsReasonableDate(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.MaxPastYears = 10
	cfg.Validation.MaxFutureYears = 1
	validator := NewValidatorWithConfig(cfg)
	today := domain.Date{Year: 2026, Month: time.October, Day: 19}

	tests := []struct {
		name     string
		date     domain.Date
		expected bool
	}{
		{"Today", today, true},
		{"Last year", domain.Date{Year: 2025, Month: time.March, Day: 1}, true},
		{"Exactly ten years ago", domain.Date{Year: 2016, Month: time.October, Day: 19}, true},
		{"Eleven years ago", domain.Date{Year: 2015, Month: time.October, Day: 19}, false},
		{"Next year", domain.Date{Year: 2027, Month: time.October, Day: 19}, true},
		{"Two years ahead", domain.Date{Year: 2028, Month: time.January, Day: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := validator.IsReasonableDate(tt.date, today); result != tt.expected {
				t.Errorf("IsReasonableDate(%v) = %v, expected %v", tt.date, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsReasonableDateUnbounded(t *testing.T) {
	today := domain.Date{Year: 2026, Month: time.October, Day: 19}
	for _, v := range []*Validator{NewValidator(), NewValidatorWithConfig(config.NewConfig())} {
		for _, d := range []domain.Date{{Year: 1990, Month: time.January, Day: 1}, {Year: 2040, Month: time.December, Day: 31}} {
			if !v.IsReasonableDate(d, today) {
				t.Errorf("IsReasonableDate(%v) without a window should be true", d)
			}
		}
	}
}

func TestValidator_IsValidUsername(t *testing.T) {
	validator := NewValidator()

	for _, ok := range []string{"jdoe", "j.doe", "j_doe-2"} {
		if !validator.IsValidUsername(ok) {
			t.Errorf("IsValidUsername(%q) should be true", ok)
		}
	}
	for _, bad := range []string{"", "j doe", "jdoe!", "jörg"} {
		if validator.IsValidUsername(bad) {
			t.Errorf("IsValidUsername(%q) should be false", bad)
		}
	}
}

func TestValidator_ConfiguredLimits(t *testing.T) {
	defaults := NewValidator()
	if defaults.DescriptionMaxLength() != 500 || defaults.UsernameMinLength() != 3 ||
		defaults.UsernameMaxLength() != 50 || defaults.PasswordMinLength() != 6 {
		t.Errorf("unexpected default limits")
	}

	cfg := config.NewConfig()
	cfg.Validation.DescriptionMaxLength = 20
	cfg.Validation.PasswordMinLength = 12

	configured := NewValidatorWithConfig(cfg)
	if configured.DescriptionMaxLength() != 20 {
		t.Errorf("DescriptionMaxLength() = %d, want 20", configured.DescriptionMaxLength())
	}
	if configured.PasswordMinLength() != 12 {
		t.Errorf("PasswordMinLength() = %d, want 12", configured.PasswordMinLength())
	}
}
