package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthorized:          http.StatusUnauthorized,
	service.ErrWrongPassword:         http.StatusUnauthorized,
	service.ErrTokenIsExpired:        http.StatusUnauthorized,
	service.ErrTokenIsMalformed:      http.StatusUnauthorized,
	service.ErrUserIsDisabled:        http.StatusForbidden,
	service.ErrValidation:            http.StatusBadRequest,
	service.ErrEnrichmentFailed:      http.StatusBadGateway,
	service.ErrTokenCreationFailed:   http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrTodoNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with the status mapped from it.
// Internal failures are reported without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		log.Err(err).Int("status", status).Msg(msg)
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Info().Err(err).Int("status", status).Msg(msg)
	utils.WriteError(w, err.Error(), status)
}
