package handlers

import (
	"net/http"

	"github.com/leadstream/leadstream/internal/server/cache"
	"github.com/leadstream/leadstream/internal/server/response"
	"github.com/leadstream/leadstream/pkg/leads"
)

// HandleDashboard handles GET /api/v1/dashboard.
// It returns the KPI report computed over the full lead table: totals,
// conversion rate, per-source and per-status counts, and the monthly
// creation series.
func (h *Handlers) HandleDashboard(w http.ResponseWriter, _ *http.Request) {
	if cached, found := h.cache.Get(cache.KeyDashboard); found {
		response.OK(w, cached)
		return
	}

	table := h.client.Leads()
	report := leads.Summarize(table)

	result := map[string]any{
		"report": report,
		"load": map[string]any{
			"kept":       h.client.LoadResult().Kept,
			"dropped":    h.client.LoadResult().Dropped,
			"reassigned": h.client.LoadResult().Reassigned,
		},
	}

	h.cache.Set(cache.KeyDashboard, result)

	response.OK(w, result)
}
