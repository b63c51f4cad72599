package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/chiro-hub/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldLogin    = "login"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// UserValidator validates registration and login-timestamp requests.
// A field is missing when it is empty after trimming whitespace.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts [models.RegistrationRequest] and [models.LoginRequest],
// by value or by pointer.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrationRequest:
		return v.validateRegistration(value, fields...)
	case *models.RegistrationRequest:
		return v.validateRegistration(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegistration(req models.RegistrationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if isBlank(req.Login) {
				return ErrEmptyLogin
			}
		case FieldEmail:
			if isBlank(req.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if isBlank(req.Password) {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if isBlank(req.Login) {
				return ErrEmptyLogin
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
