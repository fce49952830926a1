package api

import (
	"context"
	"net/http"

	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
	"github.com/taskwell/taskwell-api/internal/redact"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Check(ctx context.Context) error
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// HealthHandler reports service health. Database unreachability is the
// one place a dependency failure is surfaced to callers, and only as a
// degraded status, never as a raw error.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a HealthHandler over the given dependency probe.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Check(r.Context()); err != nil {
		logger.FromContext(r.Context()).Warn("health check failed",
			"error", redact.Error(err))
		shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
			Status:   "degraded",
			Database: "disconnected",
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:   "ok",
		Database: "connected",
	})
}
