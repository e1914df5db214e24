package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTitle       = errors.New("title must be between 3 and 50 characters")
	ErrInvalidDescription = errors.New("description must be between 3 and 1000 characters")
	ErrInvalidPriority    = errors.New("priority must be between 1 and 5")
	ErrInvalidTodoID      = errors.New("todo id must be a positive integer")

	ErrInvalidUsername = errors.New("username must be between 3 and 50 characters")
	ErrInvalidPassword = errors.New("password must be at least 6 characters")
	ErrEmptyPassword   = errors.New("password is required")
)
