package leadstream

import (
	"sync"

	"github.com/leadstream/leadstream/pkg/leads"
)

// Hook function types for table events
type (
	// LeadUpdatedHook is called when a lead's fields change
	LeadUpdatedHook func(old, updated leads.Lead)

	// TableReplacedHook is called when the canonical table is swapped
	TableReplacedHook func(old, updated *leads.Table)
)

// hooks manages event callbacks for table changes
type hooks struct {
	mu              sync.RWMutex
	onLeadUpdated   []LeadUpdatedHook
	onTableReplaced []TableReplacedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnLeadUpdated registers a callback for single-lead field changes
func (h *hooks) OnLeadUpdated(fn LeadUpdatedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onLeadUpdated = append(h.onLeadUpdated, fn)
}

// OnTableReplaced registers a callback for wholesale table swaps
func (h *hooks) OnTableReplaced(fn TableReplacedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onTableReplaced = append(h.onTableReplaced, fn)
}

// triggerTableUpdate compares old and new tables and fires the
// appropriate hooks. Rows are never added or removed by the edit
// surface, so only per-lead updates are detected.
func (h *hooks) triggerTableUpdate(old, updated *leads.Table) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, fn := range h.onTableReplaced {
		fn(old, updated)
	}

	if len(h.onLeadUpdated) == 0 {
		return
	}

	oldMap := old.Map()
	updated.ForEach(func(row *leads.Lead) bool {
		prev, ok := oldMap[row.ID]
		if ok && !prev.Equal(row) {
			for _, fn := range h.onLeadUpdated {
				fn(*prev.Clone(), *row.Clone())
			}
		}
		return true
	})
}
