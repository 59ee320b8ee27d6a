package handlers

import (
	"net/http"

	"github.com/leadstream/leadstream/internal/server/cache"
	"github.com/leadstream/leadstream/internal/server/response"
	"github.com/leadstream/leadstream/pkg/leads"
)

// HandleListOwners handles GET /api/v1/owners.
// Returns the sorted distinct owner names present in the table.
func (h *Handlers) HandleListOwners(w http.ResponseWriter, _ *http.Request) {
	if cached, found := h.cache.Get(cache.KeyOwners); found {
		response.OK(w, cached)
		return
	}

	owners := leads.Owners(h.client.Leads())

	result := map[string]any{
		"owners": owners,
		"count":  len(owners),
	}

	h.cache.Set(cache.KeyOwners, result)

	response.OK(w, result)
}

// HandleGetOwner handles GET /api/v1/owners/{owner}.
// Returns the owner's pipeline summary along with their leads.
func (h *Handlers) HandleGetOwner(w http.ResponseWriter, _ *http.Request, owner string) {
	cacheKey := cache.OwnerKey(owner)
	if cached, found := h.cache.Get(cacheKey); found {
		response.OK(w, cached)
		return
	}

	table := h.client.Leads()

	rows := leads.ByOwner(table.List(), owner)
	if len(rows) == 0 {
		response.NotFound(w, "owner not found: "+owner, "")
		return
	}

	result := map[string]any{
		"owner":   owner,
		"summary": leads.SummarizeOwner(table, owner),
		"leads":   rows,
	}

	h.cache.Set(cacheKey, result)

	response.OK(w, result)
}
