package leads

import (
	"sync"

	"github.com/leadstream/leadstream/pkg/errors"
)

// Table is a concurrent safe collection of leads indexed by LeadID.
// It preserves insertion order so that persisted output is stable across
// load/save round trips.
type Table struct {
	mu    sync.RWMutex
	leads map[int]*Lead
	order []int
}

// TableOption configures a Table instance.
type TableOption func(*Table)

// WithCapacity sets the initial capacity of the table.
func WithCapacity(capacity int) TableOption {
	return func(t *Table) {
		t.leads = make(map[int]*Lead, capacity)
		t.order = make([]int, 0, capacity)
	}
}

// NewTable creates a new empty table.
func NewTable(opts ...TableOption) *Table {
	t := &Table{
		leads: make(map[int]*Lead),
		order: make([]int, 0),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Get returns a lead by id and whether it exists.
func (t *Table) Get(id int) (*Lead, bool) {
	t.mu.RLock()
	lead, ok := t.leads[id]
	t.mu.RUnlock()
	return lead, ok
}

// Set upserts a lead keyed by its ID. New IDs are appended to the table
// order. Returns an error if lead is nil.
func (t *Table) Set(lead *Lead) error {
	if lead == nil {
		return errors.New("lead cannot be nil")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.leads[lead.ID]; !exists {
		t.order = append(t.order, lead.ID)
	}
	t.leads[lead.ID] = lead
	return nil
}

// Exists checks if a lead exists without returning it.
func (t *Table) Exists(id int) bool {
	t.mu.RLock()
	_, exists := t.leads[id]
	t.mu.RUnlock()
	return exists
}

// Len returns the number of leads.
func (t *Table) Len() int {
	t.mu.RLock()
	length := len(t.leads)
	t.mu.RUnlock()
	return length
}

// List returns all leads in table order.
func (t *Table) List() []*Lead {
	t.mu.RLock()
	out := make([]*Lead, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.leads[id])
	}
	t.mu.RUnlock()
	return out
}

// IDs returns all lead IDs in table order.
func (t *Table) IDs() []int {
	t.mu.RLock()
	ids := make([]int, len(t.order))
	copy(ids, t.order)
	t.mu.RUnlock()
	return ids
}

// Map returns a copy of the index keyed by LeadID.
func (t *Table) Map() map[int]*Lead {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make(map[int]*Lead, len(t.leads))
	for id, lead := range t.leads {
		result[id] = lead
	}
	return result
}

// ForEach applies fn to each lead in table order. If fn returns false,
// iteration stops early. The function must not modify the lead.
func (t *Table) ForEach(fn func(lead *Lead) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, id := range t.order {
		if !fn(t.leads[id]) {
			break
		}
	}
}

// Clear removes all leads.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.leads = make(map[int]*Lead)
	t.order = t.order[:0]
}

// Copy returns a deep copy of the table, preserving order.
func (t *Table) Copy() *Table {
	t.mu.RLock()
	defer t.mu.RUnlock()

	c := NewTable(WithCapacity(len(t.order)))
	for _, id := range t.order {
		c.order = append(c.order, id)
		c.leads[id] = t.leads[id].Clone()
	}
	return c
}

// Equal reports whether two tables hold field-for-field identical leads
// in the same order.
func (t *Table) Equal(other *Table) bool {
	if other == nil {
		return false
	}

	a := t.List()
	b := other.List()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
