package models

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_GetUserID(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		want    int64
		wantErr bool
	}{
		{name: "numeric subject", subject: "42", want: 42},
		{name: "empty subject", subject: "", wantErr: true},
		{name: "username instead of id", subject: "alice", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := Token{TokenClaims: TokenClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: tt.subject}}}

			got, err := token.GetUserID()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "todos", Todo{}.TableName())
	assert.Equal(t, "users", User{}.TableName())
}
