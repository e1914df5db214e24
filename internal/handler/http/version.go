package http

import "net/http"

// version answers with the bare version string, not JSON.
func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}
