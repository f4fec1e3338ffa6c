package handler

import (
	"encoding/json"
	"net/http"

	"github.com/roster/roster/internal/store"
)

// HealthHandler manages health check endpoints.
type HealthHandler struct {
	store *store.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz is a liveness probe endpoint.
// It returns 200 if the server is running.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz is a readiness probe endpoint. The store lives in process
// memory, so readiness only confirms it was wired in.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	status := "ok"
	statusCode := http.StatusOK

	if h.store != nil {
		checks["store"] = "ok"
	} else {
		checks["store"] = "not configured"
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(HealthResponse{Status: status, Checks: checks})
}
