package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/gantt-dashboard/internal/platform/logging"
	"github.com/jsamuelsen11/gantt-dashboard/internal/ports"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready. It returns 503 while the project store
// cannot be reached, since every dashboard action persists through it.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, healthy := dto.ToHealthResponse(h.registry.CheckAll(r.Context()))
	if !healthy {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.Any("checks", resp.Checks),
		)
		writeJSON(w, r, http.StatusServiceUnavailable, resp)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}
