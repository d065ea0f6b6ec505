package server

import (
	"net/http"

	"coindash/db"
	"coindash/logger"
)

// HealthHandler reports liveness, including a database ping.
func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := db.DB.PingContext(r.Context()); err != nil {
		logger.Error("Health check failed", logger.ErrorField(err))
		writeJSON(w, http.StatusServiceUnavailable, struct {
			Status string `json:"status"`
		}{Status: "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
	}{Status: "ok"})
}
