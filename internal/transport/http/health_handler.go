package http

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(h.startedAt).String(),
	})
}
