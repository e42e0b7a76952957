package handler

import (
	"net/http"

	"github.com/postcraft-ai/content-platform/internal/events"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	publisher *events.Publisher
}

// NewHealthHandler creates a new health handler. The publisher may be nil
// when event publishing is disabled.
func NewHealthHandler(publisher *events.Publisher) *HealthHandler {
	return &HealthHandler{publisher: publisher}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	// The event bus is optional; only a configured-but-down connection
	// makes the service not ready.
	if h.publisher != nil && !h.publisher.IsConnected() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "NATS not connected",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}
