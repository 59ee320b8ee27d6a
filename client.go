package leadstream

import (
	"strconv"
	"sync"

	"github.com/leadstream/leadstream/pkg/errors"
	"github.com/leadstream/leadstream/pkg/leads"
	"github.com/leadstream/leadstream/pkg/logging"
	"github.com/leadstream/leadstream/pkg/store/csvstore"
)

// client is the internal implementation of the Client interface.
type client struct {
	// options are the configured options for the client
	options *options

	// store is the CSV persistence layer
	store *csvstore.Store

	// table is the working canonical table; one writer, many readers
	mu     sync.RWMutex
	table  *leads.Table
	result leads.Result

	// hooks fire on table changes
	hooks *hooks
}

// New creates a new Client, loading and normalizing the backing file.
// A missing or empty file is created with only the header row. A
// corrupt file is surfaced as a warning and the client starts with an
// empty table; the process stays interactive.
func New(opts ...Option) (Client, error) {
	c := &client{
		options: defaults().apply(opts...),
		hooks:   newHooks(),
	}

	// An injected table skips the store entirely (used by tests and
	// by callers that manage persistence themselves).
	if c.options.table != nil {
		c.table = c.options.table.Copy()
		c.result = leads.Result{Table: c.table, Kept: c.table.Len()}
		return c, nil
	}

	c.store = csvstore.New(c.options.path)
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

// load reads and normalizes the backing file into the canonical table.
func (c *client) load() error {
	records, err := c.store.Load()
	if err != nil {
		if errors.IsStoreInit(err) {
			// Corrupt store: recover with an empty table, warn, continue.
			logging.Warn().
				Err(err).
				Str("path", c.store.Path()).
				Msg("Backing store unreadable, starting with empty table")
			c.mu.Lock()
			c.table = leads.NewTable()
			c.result = leads.Result{Table: c.table}
			c.mu.Unlock()
			return nil
		}
		return errors.WrapResource("load", "store", c.store.Path(), err)
	}

	result := leads.Normalize(records)
	logging.Debug().
		Int("kept", result.Kept).
		Int("dropped", result.Dropped).
		Int("reassigned", result.Reassigned).
		Str("path", c.store.Path()).
		Msg("Lead table loaded")

	c.mu.Lock()
	c.table = result.Table
	c.result = result
	c.mu.Unlock()
	return nil
}

// Leads returns a deep copy of the current table.
func (c *client) Leads() *leads.Table {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.table.Copy()
}

// LoadResult reports the outcome of the most recent load.
func (c *client) LoadResult() leads.Result {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.result
}

// Lead returns a copy of a single lead by ID.
func (c *client) Lead(id int) (leads.Lead, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lead, ok := c.table.Get(id)
	if !ok {
		return leads.Lead{}, errors.NewNotFoundError("lead", strconv.Itoa(id))
	}
	return *lead.Clone(), nil
}

// ApplyEdits merges the edited view onto the canonical table by LeadID.
// Only the editable columns are carried over. When the merge result is
// field-for-field identical to the current table no write, swap, or
// hook firing happens.
func (c *client) ApplyEdits(edited *leads.Table) (bool, error) {
	if edited == nil {
		return false, errors.NewValidationError("edited", nil, "edited table cannot be nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	merged := leads.Merge(c.table, edited)
	if merged.Equal(c.table) {
		return false, nil
	}

	if err := c.persist(merged); err != nil {
		// The previous table stays authoritative; no retry.
		return false, err
	}

	old := c.table
	c.table = merged
	c.result.Table = merged
	c.hooks.triggerTableUpdate(old, merged)
	return true, nil
}

// Edit changes the editable fields of a single lead and persists.
func (c *client) Edit(id int, edit LeadEdit) (leads.Lead, error) {
	if err := edit.Validate(); err != nil {
		return leads.Lead{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.table.Get(id)
	if !ok {
		return leads.Lead{}, errors.NewNotFoundError("lead", strconv.Itoa(id))
	}

	updated := current.Clone()
	if edit.Status != nil {
		updated.Status = *edit.Status
	}
	if edit.InterestStatus != nil {
		updated.InterestStatus = *edit.InterestStatus
	}
	if edit.Notes != nil {
		updated.Notes = *edit.Notes
	}
	if edit.Source != nil {
		updated.Source = *edit.Source
	}

	if updated.Equal(current) {
		return *updated, nil
	}

	merged := c.table.Copy()
	_ = merged.Set(updated)
	if err := c.persist(merged); err != nil {
		return leads.Lead{}, err
	}

	old := c.table
	c.table = merged
	c.result.Table = merged
	c.hooks.triggerTableUpdate(old, merged)
	return *updated.Clone(), nil
}

// Reload re-runs the loader against the backing file.
func (c *client) Reload() error {
	if c.store == nil {
		return nil
	}
	return c.load()
}

// Path returns the backing file path.
func (c *client) Path() string {
	if c.store == nil {
		return ""
	}
	return c.store.Path()
}

// OnLeadUpdated registers a callback for single-lead field changes.
func (c *client) OnLeadUpdated(fn LeadUpdatedHook) {
	c.hooks.OnLeadUpdated(fn)
}

// OnTableReplaced registers a callback for wholesale table swaps.
func (c *client) OnTableReplaced(fn TableReplacedHook) {
	c.hooks.OnTableReplaced(fn)
}

// persist writes the table through the store, if one is configured.
func (c *client) persist(table *leads.Table) error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Save(table); err != nil {
		logging.Error().
			Err(err).
			Str("path", c.store.Path()).
			Msg("Save failed, in-memory table unchanged")
		return err
	}
	return nil
}

func invalidOption(field, value string) error {
	return errors.NewValidationError(field, value, "not a known option")
}
