package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// WriteJSON writes data as an application/json body with the given status.
// Nothing is written before marshalling succeeds; on failure the response
// becomes a plain 500.
func WriteJSON(w http.ResponseWriter, data any, status int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("marshal response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return w.Write(body)
}

// WriteError writes {"error": message} with the given status.
func WriteError(w http.ResponseWriter, message string, status int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
