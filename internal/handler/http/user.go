package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeServiceError(w, r, service.ErrUnauthorized, "no identity in request")
		return
	}

	user, err := h.services.AuthService.Me(ctx, identity)
	if err != nil {
		writeServiceError(w, r, err, "loading current user failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeServiceError(w, r, service.ErrUnauthorized, "no identity in request")
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, identity, req); err != nil {
		writeServiceError(w, r, err, "password change failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
