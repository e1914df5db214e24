package grpc

import "github.com/MKhiriev/go-todo-keeper/models"

// ListTodosRequest has no fields; the owner comes from the token.
type ListTodosRequest struct{}

type ListTodosResponse struct {
	Todos []models.Todo `json:"todos"`
}

type GetTodoRequest struct {
	ID int64 `json:"id"`
}

type UpdateTodoRequest struct {
	ID   int64              `json:"id"`
	Todo models.TodoRequest `json:"todo"`
}

type DeleteTodoRequest struct {
	ID int64 `json:"id"`
}
