package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Handler is the gRPC transport handler. It implements [TodoServer] on top
// of the same services the REST handler uses.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register attaches the todo service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&TodoServiceDesc, h)
}

// ServerOptions returns the codec-independent options the todo service
// needs: the recover, logging and auth interceptors, in that order.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			recoverUnary(h.logger),
			loggingUnary(h.logger),
			authUnary(h.services.AuthService),
		),
	}
}

func (h *Handler) IssueToken(ctx context.Context, in *models.Credentials) (*models.TokenResponse, error) {
	token, err := h.services.AuthService.Issue(ctx, in.Username, in.Password)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword) {
			return nil, status.Error(codes.Unauthenticated, "wrong username or password")
		}
		return nil, toStatus(ctx, err)
	}

	resp := models.NewTokenResponse(token)
	return &resp, nil
}

func (h *Handler) ListTodos(ctx context.Context, _ *ListTodosRequest) (*ListTodosResponse, error) {
	todos, err := h.services.TodoService.List(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &ListTodosResponse{Todos: todos}, nil
}

func (h *Handler) GetTodo(ctx context.Context, in *GetTodoRequest) (*models.Todo, error) {
	todo, err := h.services.TodoService.Get(ctx, in.ID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &todo, nil
}

func (h *Handler) CreateTodo(ctx context.Context, in *models.TodoRequest) (*models.Todo, error) {
	fields, err := in.Fields()
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	todo, err := h.services.TodoService.Create(ctx, fields)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &todo, nil
}

func (h *Handler) UpdateTodo(ctx context.Context, in *UpdateTodoRequest) (*models.Todo, error) {
	fields, err := in.Todo.Fields()
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	todo, err := h.services.TodoService.Update(ctx, in.ID, fields)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &todo, nil
}

func (h *Handler) DeleteTodo(ctx context.Context, in *DeleteTodoRequest) (*models.Todo, error) {
	todo, err := h.services.TodoService.Delete(ctx, in.ID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &todo, nil
}
