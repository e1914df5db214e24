// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.services.TodoService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "listing todos failed")
		return
	}

	utils.WriteJSON(w, todos, http.StatusOK)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	todoID, ok := parseTodoID(w, r)
	if !ok {
		return
	}

	todo, err := h.services.TodoService.Get(r.Context(), todoID)
	if err != nil {
		writeServiceError(w, r, err, "getting todo failed")
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeTodoFields(w, r)
	if !ok {
		return
	}

	todo, err := h.services.TodoService.Create(r.Context(), fields)
	if err != nil {
		writeServiceError(w, r, err, "creating todo failed")
		return
	}

	logger.FromRequest(r).Debug().Int64("todo_id", todo.ID).Msg("todo created")
	utils.WriteJSON(w, todo, http.StatusCreated)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	todoID, ok := parseTodoID(w, r)
	if !ok {
		return
	}
	fields, ok := decodeTodoFields(w, r)
	if !ok {
		return
	}

	todo, err := h.services.TodoService.Update(r.Context(), todoID, fields)
	if err != nil {
		writeServiceError(w, r, err, "updating todo failed")
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	todoID, ok := parseTodoID(w, r)
	if !ok {
		return
	}

	if _, err := h.services.TodoService.Delete(r.Context(), todoID); err != nil {
		writeServiceError(w, r, err, "deleting todo failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseTodoID reads the {id} path segment. On failure it has already
// answered with 400.
func parseTodoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	todoID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || todoID <= 0 {
		logger.FromRequest(r).Info().Str("id", raw).Msg("invalid todo id")
		utils.WriteError(w, ErrInvalidTodoID.Error(), http.StatusBadRequest)
		return 0, false
	}
	return todoID, true
}

func decodeTodoFields(w http.ResponseWriter, r *http.Request) (models.TodoFields, bool) {
	log := logger.FromRequest(r)

	var req models.TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return models.TodoFields{}, false
	}

	fields, err := req.Fields()
	if err != nil {
		log.Info().Err(err).Msg("incomplete todo payload")
		utils.WriteError(w, fmt.Sprintf("%s: %s", ErrInvalidJSON, err), http.StatusBadRequest)
		return models.TodoFields{}, false
	}
	return fields, true
}
