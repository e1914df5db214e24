package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Todos reference it through their owner_id column.
	UserID int64 `json:"user_id"`

	// Login is the unique user login identifier (the username).
	Login string `json:"username"`

	// PasswordHash stores the salted bcrypt digest of the user's password.
	// It is never serialized and never logged.
	PasswordHash string `json:"-"`

	// Name is the optional display name of the user.
	Name string `json:"name,omitempty"`

	// PhoneNumber is an optional contact number.
	PhoneNumber string `json:"phone_number,omitempty"`

	// IsActive reports whether the account may obtain new tokens.
	// Disabling an account does not revoke tokens already issued.
	IsActive bool `json:"is_active"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the payload of the registration endpoint.
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// Credentials is the username/password pair exchanged for a token.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest carries the current password and its replacement.
type ChangePasswordRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"new_password"`
}
