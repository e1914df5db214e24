// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP clients of go-todo-keeper.
//
// [TodoAPIAdapter] is the client-side view of the REST API used by the
// terminal client. The enrichment clients ([NewOpenAIEnricher],
// [NewPassthroughEnricher]) are used by the server to expand todo
// descriptions.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/todo_api_adapter_mock.go -package=mock

// TodoAPIAdapter defines communication with the go-todo-keeper REST API.
// Implementations own the bearer token and attach it to every
// authenticated request.
type TodoAPIAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. It does not log in.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login exchanges credentials for an access token and stores it via
	// SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error)

	Me(ctx context.Context) (models.User, error)

	ListTodos(ctx context.Context) ([]models.Todo, error)
	GetTodo(ctx context.Context, todoID int64) (models.Todo, error)
	CreateTodo(ctx context.Context, fields models.TodoFields) (models.Todo, error)
	UpdateTodo(ctx context.Context, todoID int64, fields models.TodoFields) (models.Todo, error)
	DeleteTodo(ctx context.Context, todoID int64) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
