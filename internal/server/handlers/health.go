package handlers

import (
	"net/http"

	"github.com/leadstream/leadstream/internal/server/response"
)

// HandleHealth handles GET /api/v1/health (liveness probe).
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": "leadstream-api",
		"version": "v1",
	})
}

// HandleReady handles GET /api/v1/ready.
// Readiness includes the backing file and cache state.
func (h *Handlers) HandleReady(w http.ResponseWriter, _ *http.Request) {
	table := h.client.Leads()
	if table == nil {
		response.ServiceUnavailable(w, "Lead table not available")
		return
	}

	response.OK(w, map[string]any{
		"status": "ready",
		"leads":  table.Len(),
		"path":   h.client.Path(),
		"cache": map[string]any{
			"items": h.cache.ItemCount(),
		},
		"sse_clients": h.sseBroadcaster.ClientCount(),
	})
}
