package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=TodoServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// AuthService is the identity verifier: it owns user accounts and turns
// credentials into tokens and tokens into identities.
type AuthService interface {
	// Register creates an account with a bcrypt-hashed password.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Issue checks username and password and returns a signed access token.
	Issue(ctx context.Context, username, password string) (models.Token, error)
	// Verify checks signature, issuer and expiry of a raw token. It never
	// touches the database.
	Verify(ctx context.Context, token string) (models.Identity, error)
	// ChangePassword replaces the password of identity after checking the current one.
	ChangePassword(ctx context.Context, identity models.Identity, req models.ChangePasswordRequest) error
	// Me returns the account behind identity.
	Me(ctx context.Context, identity models.Identity) (models.User, error)
}

// TodoService manages the todos of the identity found in the context.
// Every method fails with ErrUnauthorized when there is none.
type TodoService interface {
	List(ctx context.Context) ([]models.Todo, error)
	Get(ctx context.Context, todoID int64) (models.Todo, error)
	Create(ctx context.Context, fields models.TodoFields) (models.Todo, error)
	// Update replaces every caller-controlled field of the todo.
	Update(ctx context.Context, todoID int64, fields models.TodoFields) (models.Todo, error)
	// Delete removes the todo and returns it as it was.
	Delete(ctx context.Context, todoID int64) (models.Todo, error)
}

// TodoServiceWrapper defines middleware composition for TodoService.
// Implementations wrap an existing TodoService to add behavior such as
// logging or validating.
type TodoServiceWrapper interface {
	Wrap(TodoService) TodoService // returns a decorated TodoService applying additional behavior
}

// EnrichmentService expands a short task description into a longer one.
type EnrichmentService interface {
	Enrich(ctx context.Context, text string) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
