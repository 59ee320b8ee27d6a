// Package leadstream provides the main entry point for the LeadStream
// lead management system. It owns the canonical in-memory lead table,
// backed by a single CSV file, and exposes the operations the views
// need: copy-on-read access, filtered listing, edit reconciliation, and
// persistence.
//
// The table is loaded and normalized once at construction. Views read
// snapshots and never mutate state directly; all edits flow through
// ApplyEdits or Edit, which merge changed fields back by LeadID,
// persist the merged table, and swap the canonical state. A save
// failure leaves the previous table authoritative.
//
// Example usage:
//
//	ls, err := leadstream.New(leadstream.WithPath("leads_data.csv"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ls.OnLeadUpdated(func(old, updated leads.Lead) {
//	    log.Printf("lead %d: %s -> %s", updated.ID, old.Status, updated.Status)
//	})
//
//	table := ls.Leads()
//	report := leads.Summarize(table)
//	fmt.Printf("%d leads, %.1f%% conversion\n", report.TotalLeads, report.ConversionRate)
package leadstream

import (
	"github.com/leadstream/leadstream/pkg/leads"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Client manages the canonical lead table with edit reconciliation,
// persistence, and event hooks.
type Client interface {
	// Leads returns a deep copy of the current table for reading.
	Leads() *leads.Table

	// LoadResult reports the outcome of the most recent load.
	LoadResult() leads.Result

	// Lead returns a copy of a single lead by ID.
	Lead(id int) (leads.Lead, error)

	// ApplyEdits merges an edited view back onto the canonical table
	// by LeadID, persists the result, and swaps state. It reports
	// whether anything changed; a no-op edit performs no write.
	ApplyEdits(edited *leads.Table) (bool, error)

	// Edit changes the editable fields of a single lead and persists.
	Edit(id int, edit LeadEdit) (leads.Lead, error)

	// Reload re-runs the loader against the backing file.
	Reload() error

	// Path returns the backing file path.
	Path() string

	// Hooks provides access to event callback registration.
	Hooks
}

// Hooks registers callbacks for table change events.
type Hooks interface {
	// OnLeadUpdated registers a callback for single-lead field changes.
	OnLeadUpdated(LeadUpdatedHook)

	// OnTableReplaced registers a callback for wholesale table swaps.
	OnTableReplaced(TableReplacedHook)
}

// LeadEdit carries new values for the editable columns. Nil fields are
// left unchanged.
type LeadEdit struct {
	Status         *leads.Status         `json:"status,omitempty"`
	InterestStatus *leads.InterestStatus `json:"interest_status,omitempty"`
	Notes          *string               `json:"notes,omitempty"`
	Source         *leads.Source         `json:"lead_source,omitempty"`
}

// Validate checks that any provided enum values are known options.
func (e LeadEdit) Validate() error {
	if e.Status != nil && !e.Status.Valid() {
		return invalidOption("status", string(*e.Status))
	}
	if e.InterestStatus != nil && !e.InterestStatus.Valid() {
		return invalidOption("interest_status", string(*e.InterestStatus))
	}
	if e.Source != nil && !e.Source.Valid() {
		return invalidOption("lead_source", string(*e.Source))
	}
	return nil
}
