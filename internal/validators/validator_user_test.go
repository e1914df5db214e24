package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestUserValidator_Register(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{name: "valid", req: models.RegisterRequest{Username: "alice", Password: "secret"}},
		{name: "short username", req: models.RegisterRequest{Username: "al", Password: "secret"}, wantErr: ErrInvalidUsername},
		{name: "long username", req: models.RegisterRequest{Username: strings.Repeat("a", 51), Password: "secret"}, wantErr: ErrInvalidUsername},
		{name: "short password", req: models.RegisterRequest{Username: "alice", Password: "12345"}, wantErr: ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidator_Credentials(t *testing.T) {
	v := NewUserValidator()

	assert.NoError(t, v.Validate(context.Background(), models.Credentials{Username: "al", Password: "x"}))
	assert.ErrorIs(t, v.Validate(context.Background(), &models.Credentials{Password: "x"}), ErrInvalidUsername)
	assert.ErrorIs(t, v.Validate(context.Background(), models.Credentials{Username: "alice"}), ErrEmptyPassword)
}

func TestUserValidator_ChangePassword(t *testing.T) {
	v := NewUserValidator()

	assert.NoError(t, v.Validate(context.Background(), models.ChangePasswordRequest{Password: "old", NewPassword: "newpass"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.ChangePasswordRequest{Password: "old", NewPassword: "short"}), ErrInvalidPassword)
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewUserValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}
