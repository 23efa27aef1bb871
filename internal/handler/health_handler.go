package handler

import (
	"context"
	"log/slog"
	"net/http"

	"go-calc-service/internal/model"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check answers liveness probes. The database is pinged on every call; a
// failed ping degrades the response to 503 instead of hiding the outage
// behind a green status.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		slog.Warn("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, model.HealthResponse{
			Status:   "degraded",
			Database: "down",
		})
		return
	}

	writeJSON(w, http.StatusOK, model.HealthResponse{
		Status:   "ok",
		Database: "up",
	})
}
