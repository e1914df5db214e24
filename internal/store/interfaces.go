package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByLogin returns the user with the given login or ErrNoUserWasFound.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	// FindUserByID returns the user with the given id or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// TodoRepository persists todos. Every method that addresses a single todo
// filters by owner in the same statement, so a todo of another owner is
// indistinguishable from a missing one (ErrTodoNotFound).
type TodoRepository interface {
	ListTodos(ctx context.Context, ownerID int64) ([]models.Todo, error)
	GetTodo(ctx context.Context, ownerID, todoID int64) (models.Todo, error)
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	// UpdateTodo replaces all caller-controlled fields of the todo matching
	// todo.ID and todo.OwnerID and returns the stored row.
	UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	// DeleteTodo removes the todo and returns it as it was.
	DeleteTodo(ctx context.Context, ownerID, todoID int64) (models.Todo, error)
}
