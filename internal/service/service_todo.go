// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// todoService implements TodoService on top of a TodoRepository. The owner
// of every operation is the identity stored in the context; ownership is
// enforced by the repository statements themselves.
type todoService struct {
	todoRepository store.TodoRepository
	enricher       EnrichmentService

	descriptionValidator validators.Validator

	logger *logger.Logger
}

// NewTodoService builds a TodoService. enricher is applied to descriptions
// of new todos; pass a passthrough implementation to disable enrichment.
func NewTodoService(todoRepository store.TodoRepository, enricher EnrichmentService, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		enricher:       enricher,
		logger:         logger,

		descriptionValidator: validators.NewTodoValidator(),
	}
}

func (s *todoService) List(ctx context.Context) ([]models.Todo, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.todoRepository.ListTodos(ctx, identity.UserID)
}

func (s *todoService) Get(ctx context.Context, todoID int64) (models.Todo, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return models.Todo{}, err
	}

	return s.todoRepository.GetTodo(ctx, identity.UserID, todoID)
}

// Create enriches the description, if enabled, and inserts the todo owned
// by the caller. The enrichment call completes before any transaction is
// opened; its failure leaves nothing stored.
func (s *todoService) Create(ctx context.Context, fields models.TodoFields) (models.Todo, error) {
	log := logger.FromContext(ctx)

	identity, err := identityFromContext(ctx)
	if err != nil {
		return models.Todo{}, err
	}

	if s.enricher != nil {
		enriched, enrichErr := s.enricher.Enrich(ctx, fields.Description)
		if enrichErr != nil {
			log.Err(enrichErr).Str("func", "*todoService.Create").Int64("owner_id", identity.UserID).Msg("enrichment failed")
			return models.Todo{}, fmt.Errorf("%w: %w", ErrEnrichmentFailed, enrichErr)
		}
		// The enricher may return any text; the stored description must
		// still satisfy the description bounds.
		if err = s.descriptionValidator.Validate(ctx, models.TodoFields{Description: enriched}, validators.FieldDescription); err != nil {
			log.Warn().Err(err).Str("func", "*todoService.Create").Int64("owner_id", identity.UserID).Msg("enriched description is out of bounds")
			return models.Todo{}, fmt.Errorf("%w: %w", ErrEnrichmentFailed, err)
		}
		fields.Description = enriched
	}

	return s.todoRepository.CreateTodo(ctx, models.NewTodo(fields, identity.UserID))
}

func (s *todoService) Update(ctx context.Context, todoID int64, fields models.TodoFields) (models.Todo, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return models.Todo{}, err
	}

	todo := models.NewTodo(fields, identity.UserID)
	todo.ID = todoID

	return s.todoRepository.UpdateTodo(ctx, todo)
}

func (s *todoService) Delete(ctx context.Context, todoID int64) (models.Todo, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return models.Todo{}, err
	}

	return s.todoRepository.DeleteTodo(ctx, identity.UserID, todoID)
}

func identityFromContext(ctx context.Context) (models.Identity, error) {
	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok || identity.UserID <= 0 {
		return models.Identity{}, ErrUnauthorized
	}
	return identity, nil
}
