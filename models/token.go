package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType is reported alongside every issued access token.
const TokenType = "bearer"

// TokenClaims is the claim set carried by access tokens: the registered
// claims (sub holds the user ID) plus the username of the holder.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Username is a private claim copied from the user's login at issuance.
	Username string `json:"username"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// TokenClaims provides access to the claim set of the token.
	TokenClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Identity returns the verified identity carried by the token.
func (t *Token) Identity() Identity {
	return Identity{UserID: t.UserID, Username: t.Username}
}

// Expiry returns the "exp" claim, or the zero time when it is unset.
func (t *Token) Expiry() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// Identity is the result of verifying a token. It is what every todo
// operation is scoped by.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// TokenResponse is the body returned by the token endpoint.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// NewTokenResponse renders t for the wire.
func NewTokenResponse(t Token) TokenResponse {
	return TokenResponse{
		AccessToken: t.SignedString,
		TokenType:   TokenType,
		ExpiresAt:   t.Expiry(),
	}
}
