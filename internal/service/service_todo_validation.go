package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// TodoValidationService rejects bad input before it reaches the wrapped
// TodoService. Every failure wraps ErrValidation.
type TodoValidationService struct {
	inner     TodoService
	validator validators.Validator
}

func NewTodoValidationService() TodoServiceWrapper {
	return &TodoValidationService{
		validator: validators.NewTodoValidator(),
	}
}

func (v *TodoValidationService) List(ctx context.Context) ([]models.Todo, error) {
	return v.inner.List(ctx)
}

func (v *TodoValidationService) Get(ctx context.Context, todoID int64) (models.Todo, error) {
	if err := v.validate(ctx, todoID); err != nil {
		return models.Todo{}, err
	}

	return v.inner.Get(ctx, todoID)
}

func (v *TodoValidationService) Create(ctx context.Context, fields models.TodoFields) (models.Todo, error) {
	if err := v.validate(ctx, fields); err != nil {
		return models.Todo{}, err
	}

	return v.inner.Create(ctx, fields)
}

func (v *TodoValidationService) Update(ctx context.Context, todoID int64, fields models.TodoFields) (models.Todo, error) {
	if err := v.validate(ctx, todoID); err != nil {
		return models.Todo{}, err
	}
	if err := v.validate(ctx, fields); err != nil {
		return models.Todo{}, err
	}

	return v.inner.Update(ctx, todoID, fields)
}

func (v *TodoValidationService) Delete(ctx context.Context, todoID int64) (models.Todo, error) {
	if err := v.validate(ctx, todoID); err != nil {
		return models.Todo{}, err
	}

	return v.inner.Delete(ctx, todoID)
}

func (v *TodoValidationService) Wrap(wrapped TodoService) TodoService {
	v.inner = wrapped
	return v
}

func (v *TodoValidationService) validate(ctx context.Context, obj any) error {
	if err := v.validator.Validate(ctx, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
