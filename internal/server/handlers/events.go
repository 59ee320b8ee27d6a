package handlers

import (
	"net/http"

	"github.com/leadstream/leadstream/internal/server/response"
)

// HandleSSE handles Server-Sent Events at /api/v1/events.
// Clients receive lead.updated and table.replaced notifications and can
// refresh their views without polling.
func (h *Handlers) HandleSSE(w http.ResponseWriter, r *http.Request) {
	h.sseBroadcaster.ServeHTTP(w, r)
}

// HandleReload handles POST /api/v1/reload.
// Re-runs the loader against the backing CSV file and invalidates all
// cached views.
func (h *Handlers) HandleReload(w http.ResponseWriter, _ *http.Request) {
	if err := h.client.Reload(); err != nil {
		response.ErrorFromType(w, err)
		return
	}

	h.cache.Clear()

	result := h.client.LoadResult()
	response.OK(w, map[string]any{
		"status":     "reloaded",
		"kept":       result.Kept,
		"dropped":    result.Dropped,
		"reassigned": result.Reassigned,
	})
}
