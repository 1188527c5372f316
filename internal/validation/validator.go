package validation

import (
	"strings"
	"unicode/utf8"

	"workhours/internal/config"
	"workhours/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a validator using default limits
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithConfig creates a validator using the configured limits
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks the trimmed length in characters against [min, max].
// A max of zero means unbounded.
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && (max <= 0 || length <= max)
}

// IsReasonableDate checks d against the configured window around today.
// Without a configured window every date is accepted.
func (v *Validator) IsReasonableDate(d, today domain.Date) bool {
	if past := v.MaxPastYears(); past > 0 && d.Before(domain.NewDate(today.Year-past, today.Month, today.Day)) {
		return false
	}
	if future := v.MaxFutureYears(); future > 0 && d.After(domain.NewDate(today.Year+future, today.Month, today.Day)) {
		return false
	}
	return true
}

// IsValidUsername allows letters, digits and . _ -
func (v *Validator) IsValidUsername(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.' || r == '_' || r == '-':
		default:
			return false
		}
	}
	return s != ""
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

func (v *Validator) DescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return 500
}

func (v *Validator) UsernameMinLength() int {
	if v.config != nil {
		return v.config.Validation.UsernameMinLength
	}
	return 3
}

func (v *Validator) UsernameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.UsernameMaxLength
	}
	return 50
}

func (v *Validator) PasswordMinLength() int {
	if v.config != nil {
		return v.config.Validation.PasswordMinLength
	}
	return 6
}

func (v *Validator) MaxPastYears() int {
	if v.config != nil {
		return v.config.Validation.MaxPastYears
	}
	return 0
}

func (v *Validator) MaxFutureYears() int {
	if v.config != nil {
		return v.config.Validation.MaxFutureYears
	}
	return 0
}
