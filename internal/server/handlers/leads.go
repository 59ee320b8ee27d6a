package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leadstream/leadstream"
	"github.com/leadstream/leadstream/internal/server/filter"
	"github.com/leadstream/leadstream/internal/server/response"
	"github.com/leadstream/leadstream/pkg/leads"
)

// HandleListLeads handles GET /api/v1/leads.
// Supports q, status, all, limit, and offset query parameters.
func (h *Handlers) HandleListLeads(w http.ResponseWriter, r *http.Request) {
	cacheKey := "leads:" + r.URL.RawQuery
	if cached, found := h.cache.Get(cacheKey); found {
		response.OK(w, cached)
		return
	}

	f, err := filter.Parse(r.URL.Query())
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	p, err := filter.ParsePagination(r.URL.Query())
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	filtered := f.Apply(h.client.Leads().List())
	total := len(filtered)
	page := filter.Page(filtered, p)

	result := map[string]any{
		"leads": page,
		"pagination": map[string]any{
			"total":  total,
			"limit":  p.Limit,
			"offset": p.Offset,
			"count":  len(page),
		},
	}

	h.cache.Set(cacheKey, result)

	response.OK(w, result)
}

// HandleGetLead handles GET /api/v1/leads/{id}.
func (h *Handlers) HandleGetLead(w http.ResponseWriter, _ *http.Request, id int) {
	lead, err := h.client.Lead(id)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, lead)
}

// HandlePatchLead handles PATCH /api/v1/leads/{id}.
// The body carries new values for the editable fields; omitted fields
// are left unchanged. A no-op patch returns the lead without writing.
func (h *Handlers) HandlePatchLead(w http.ResponseWriter, r *http.Request, id int) {
	var edit leadstream.LeadEdit
	if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
		response.BadRequest(w, "Invalid request body", err.Error())
		return
	}

	lead, err := h.client.Edit(id, edit)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	h.cache.Clear()

	response.OK(w, lead)
}

// bulkEdit is one row of a PUT /api/v1/leads request body.
type bulkEdit struct {
	ID             int                   `json:"lead_id"`
	Status         *leads.Status         `json:"status,omitempty"`
	InterestStatus *leads.InterestStatus `json:"interest_status,omitempty"`
	Notes          *string               `json:"notes,omitempty"`
	Source         *leads.Source         `json:"lead_source,omitempty"`
}

// HandlePutLeads handles PUT /api/v1/leads.
// The body is a JSON array of per-lead edits which are reconciled onto
// the canonical table in one pass, mirroring a bulk table edit. Rows
// whose IDs are unknown are ignored, matching keyed merge semantics.
func (h *Handlers) HandlePutLeads(w http.ResponseWriter, r *http.Request) {
	var edits []bulkEdit
	if err := json.NewDecoder(r.Body).Decode(&edits); err != nil {
		response.BadRequest(w, "Invalid request body", err.Error())
		return
	}

	for _, e := range edits {
		edit := leadstream.LeadEdit{
			Status:         e.Status,
			InterestStatus: e.InterestStatus,
			Notes:          e.Notes,
			Source:         e.Source,
		}
		if err := edit.Validate(); err != nil {
			response.ErrorFromType(w, err)
			return
		}
	}

	// Build an edited overlay table from the current state plus the
	// requested changes, then reconcile it back by LeadID.
	edited := h.client.Leads()
	for _, e := range edits {
		lead, ok := edited.Get(e.ID)
		if !ok {
			continue
		}
		if e.Status != nil {
			lead.Status = *e.Status
		}
		if e.InterestStatus != nil {
			lead.InterestStatus = *e.InterestStatus
		}
		if e.Notes != nil {
			lead.Notes = *e.Notes
		}
		if e.Source != nil {
			lead.Source = *e.Source
		}
	}

	changed, err := h.client.ApplyEdits(edited)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	if changed {
		h.cache.Clear()
	}

	response.OK(w, map[string]any{
		"changed": changed,
		"edits":   len(edits),
	})
}
