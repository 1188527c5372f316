package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Registration is the sign-up form.
type Registration struct {
	Username        string `json:"username" validate:"required,username"`
	FirstName       string `json:"first_name" validate:"omitempty,max=100"`
	LastName        string `json:"last_name" validate:"omitempty,max=100"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// Credentials is the login form.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserValidator validates account forms. Structural rules come from struct
// tags; configurable lengths are checked afterwards.
type UserValidator struct {
	validator *Validator
	structs   *validator.Validate
}

// NewUserValidator creates a user validator backed by v's limits.
func NewUserValidator(v *Validator) *UserValidator {
	structs := validator.New(validator.WithRequiredStructEnabled())
	structs.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	_ = structs.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return v.IsValidUsername(fl.Field().String())
	})
	return &UserValidator{validator: v, structs: structs}
}

// ValidateRegistration normalises r in place and validates it.
func (uv *UserValidator) ValidateRegistration(r *Registration) error {
	r.Username = strings.TrimSpace(r.Username)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)

	ve := NewValidationError()
	uv.collect(ve, uv.structs.Struct(r))

	if len(ve.GetFieldErrors("username")) == 0 {
		minLen, maxLen := uv.validator.UsernameMinLength(), uv.validator.UsernameMaxLength()
		if !uv.validator.IsValidStringLength(r.Username, minLen, maxLen) {
			ve.AddInvalidLengthError("username", r.Username, minLen, maxLen)
		}
	}
	if len(ve.GetFieldErrors("password")) == 0 {
		minLen := uv.validator.PasswordMinLength()
		if len(r.Password) < minLen {
			ve.AddInvalidLengthError("password", nil, minLen, 0)
		}
	}
	return ve.ErrOrNil()
}

// ValidateCredentials checks that both login fields are present.
func (uv *UserValidator) ValidateCredentials(c *Credentials) error {
	c.Username = strings.TrimSpace(c.Username)
	ve := NewValidationError()
	uv.collect(ve, uv.structs.Struct(c))
	return ve.ErrOrNil()
}

func (uv *UserValidator) collect(ve *ValidationError, err error) {
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		ve.AddInvalidValueError("form", nil, err.Error())
		return
	}
	for _, fe := range fieldErrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			ve.AddRequiredError(field)
		case "eqfield":
			ve.AddMismatchError(field, "password")
		case "max":
			maxLen, _ := strconv.Atoi(fe.Param())
			ve.AddInvalidLengthError(field, fe.Value(), 0, maxLen)
		case "username":
			ve.AddInvalidCharacterError(field, fe.Value())
		default:
			ve.AddInvalidValueError(field, fe.Value(), fe.Tag())
		}
	}
}
