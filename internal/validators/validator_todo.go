package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldTitle targets the todo title.
	FieldTitle = "title"

	// FieldDescription targets the todo description.
	FieldDescription = "description"

	// FieldPriority targets the todo priority.
	FieldPriority = "priority"

	// FieldTodoID targets the identifier of an existing todo.
	FieldTodoID = "id"
)

// Bounds of todo fields. Lengths are counted in runes.
const (
	MinTitleLength       = 3
	MaxTitleLength       = 50
	MinDescriptionLength = 3
	MaxDescriptionLength = 1000
	MinPriority          = 1
	MaxPriority          = 5
)

// TodoValidator implements [Validator] for todo payloads:
// models.TodoFields, models.Todo and todo identifiers (int64).
type TodoValidator struct{}

// NewTodoValidator constructs a new TodoValidator and returns it as the
// Validator interface.
func NewTodoValidator() Validator {
	return &TodoValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of the models are accepted. Without fields, every field of the
// model is checked.
func (v *TodoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TodoFields:
		return v.validateFields(value, fields...)
	case *models.TodoFields:
		return v.validateFields(*value, fields...)
	case models.Todo:
		return v.validateFields(value.Fields(), fields...)
	case *models.Todo:
		return v.validateFields(value.Fields(), fields...)
	case int64:
		if value <= 0 {
			return ErrInvalidTodoID
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}

func (v *TodoValidator) validateFields(todo models.TodoFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if !runeLengthBetween(todo.Title, MinTitleLength, MaxTitleLength) {
				return ErrInvalidTitle
			}
		case FieldDescription:
			if !runeLengthBetween(todo.Description, MinDescriptionLength, MaxDescriptionLength) {
				return ErrInvalidDescription
			}
		case FieldPriority:
			if todo.Priority < MinPriority || todo.Priority > MaxPriority {
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func runeLengthBetween(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(s)
	return n >= lo && n <= hi
}
