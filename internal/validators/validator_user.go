package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-todo-keeper/models"
)

const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldNewPassword = "new_password"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6
)

// UserValidator implements [Validator] for account payloads:
// models.RegisterRequest, models.Credentials and models.ChangePasswordRequest.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validate(value.Username, value.Password, "", withDefault(fields, FieldUsername, FieldPassword))
	case *models.RegisterRequest:
		return v.validate(value.Username, value.Password, "", withDefault(fields, FieldUsername, FieldPassword))
	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)
	case models.ChangePasswordRequest:
		return v.validate("", value.Password, value.NewPassword, withDefault(fields, FieldNewPassword))
	case *models.ChangePasswordRequest:
		return v.validate("", value.Password, value.NewPassword, withDefault(fields, FieldNewPassword))
	default:
		return ErrUnsupportedType
	}
}

// validateCredentials only rejects empty input; length rules apply to new
// accounts, not to login attempts.
func (v *UserValidator) validateCredentials(c models.Credentials) error {
	if c.Username == "" {
		return ErrInvalidUsername
	}
	if c.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func (v *UserValidator) validate(username, password, newPassword string, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if !runeLengthBetween(username, MinUsernameLength, MaxUsernameLength) {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if utf8.RuneCountInString(password) < MinPasswordLength {
				return ErrInvalidPassword
			}
		case FieldNewPassword:
			if utf8.RuneCountInString(newPassword) < MinPasswordLength {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func withDefault(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}
