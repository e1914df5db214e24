package models

import "errors"

var (
	// ErrPriorityIsMissing is returned by [TodoRequest.Fields] when the
	// priority key is absent from the payload.
	ErrPriorityIsMissing = errors.New("priority is required")
	// ErrCompleteIsMissing is returned by [TodoRequest.Fields] when the
	// complete key is absent from the payload.
	ErrCompleteIsMissing = errors.New("complete is required")
)

// TodoFields is the caller-controlled part of a todo. Create and update
// both take the full set; there is no partial update.
type TodoFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `json:"complete"`
}

// Todo is a single task item. OwnerID is assigned once, from the
// authenticated identity, and is never taken from request input.
type Todo struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `json:"complete"`
	OwnerID     int64  `json:"owner_id"`
}

// NewTodo builds a todo owned by ownerID from caller-supplied fields.
// The ID is left zero until the store assigns one.
func NewTodo(fields TodoFields, ownerID int64) Todo {
	return Todo{
		Title:       fields.Title,
		Description: fields.Description,
		Priority:    fields.Priority,
		Complete:    fields.Complete,
		OwnerID:     ownerID,
	}
}

// Fields returns the caller-controlled part of t.
func (t Todo) Fields() TodoFields {
	return TodoFields{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Complete:    t.Complete,
	}
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// TodoRequest is the wire form of create and update payloads. Priority and
// Complete are pointers so a missing key can be told apart from a zero value.
type TodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    *int   `json:"priority"`
	Complete    *bool  `json:"complete"`
}

// Fields converts r into [TodoFields]. Every key must be present.
func (r TodoRequest) Fields() (TodoFields, error) {
	if r.Priority == nil {
		return TodoFields{}, ErrPriorityIsMissing
	}
	if r.Complete == nil {
		return TodoFields{}, ErrCompleteIsMissing
	}

	return TodoFields{
		Title:       r.Title,
		Description: r.Description,
		Priority:    *r.Priority,
		Complete:    *r.Complete,
	}, nil
}

// NewTodoRequest is the inverse of [TodoRequest.Fields], used by clients.
func NewTodoRequest(fields TodoFields) TodoRequest {
	return TodoRequest{
		Title:       fields.Title,
		Description: fields.Description,
		Priority:    &fields.Priority,
		Complete:    &fields.Complete,
	}
}
