package http

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "user registration failed")
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user registered")
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

// issueToken exchanges credentials for an access token. Credentials come
// either as a JSON body or as an OAuth2-style password form.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := readCredentials(r)
	if err != nil {
		log.Err(err).Msg("unreadable credentials")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Issue(ctx, credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword) {
			log.Info().Err(err).Str("login", credentials.Username).Msg("no user was found/wrong password")
			utils.WriteError(w, errInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		}
		writeServiceError(w, r, err, "token issuance failed")
		return
	}

	utils.WriteJSON(w, models.NewTokenResponse(token), http.StatusOK)
}

func readCredentials(r *http.Request) (models.Credentials, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return models.Credentials{}, err
		}
		return models.Credentials{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}, nil
	default:
		var credentials models.Credentials
		err := json.NewDecoder(r.Body).Decode(&credentials)
		return credentials, err
	}
}
