// Package leads provides the core lead table for the LeadStream system.
// It defines the Lead record, the fixed column schema of the backing CSV
// store, the normalization pipeline that turns raw rows into a canonical
// keyed table, the keyed merge used to reconcile user edits, and the view
// computations (KPIs, distributions, filters) consumed by the CLI and the
// HTTP API.
//
// The table is the single piece of process-wide mutable state. It has one
// writer (the reconciler in the top-level client) and many readers, so all
// collections are safe for concurrent reads.
package leads

import (
	"time"
)

// Column names of the backing store, in persisted order.
const (
	ColLeadID          = "LeadID"
	ColFullName        = "FullName"
	ColLocation        = "Location"
	ColStatus          = "Status"
	ColPhone           = "Phone"
	ColEmail           = "Email"
	ColLeadSource      = "LeadSource"
	ColCreatedDate     = "CreatedDate"
	ColInterestStatus  = "InterestStatus"
	ColNotes           = "Notes"
	ColEngagementScore = "EngagementScore"
	ColOwner           = "Owner"
)

// Columns returns the fixed column list in persisted order.
func Columns() []string {
	return []string{
		ColLeadID, ColFullName, ColLocation, ColStatus, ColPhone, ColEmail,
		ColLeadSource, ColCreatedDate, ColInterestStatus, ColNotes,
		ColEngagementScore, ColOwner,
	}
}

// Lead is a single sales lead record.
type Lead struct {
	ID              int            `json:"lead_id" yaml:"lead_id" db:"lead_id"`
	FullName        string         `json:"full_name" yaml:"full_name" db:"full_name"`
	Location        string         `json:"location,omitempty" yaml:"location,omitempty" db:"location"`
	Status          Status         `json:"status" yaml:"status" db:"status"`
	Phone           string         `json:"phone,omitempty" yaml:"phone,omitempty" db:"phone"`
	Email           string         `json:"email,omitempty" yaml:"email,omitempty" db:"email"`
	Source          Source         `json:"lead_source" yaml:"lead_source" db:"lead_source"`
	CreatedDate     *time.Time     `json:"created_date,omitempty" yaml:"created_date,omitempty" db:"created_date"`
	InterestStatus  InterestStatus `json:"interest_status" yaml:"interest_status" db:"interest_status"`
	Notes           string         `json:"notes,omitempty" yaml:"notes,omitempty" db:"notes"`
	EngagementScore *float64       `json:"engagement_score,omitempty" yaml:"engagement_score,omitempty" db:"engagement_score"`
	Owner           string         `json:"owner" yaml:"owner" db:"owner"`
}

// Clone returns a deep copy of the lead.
func (l *Lead) Clone() *Lead {
	c := *l
	if l.CreatedDate != nil {
		d := *l.CreatedDate
		c.CreatedDate = &d
	}
	if l.EngagementScore != nil {
		s := *l.EngagementScore
		c.EngagementScore = &s
	}
	return &c
}

// Equal reports whether two leads are field-for-field identical.
func (l *Lead) Equal(other *Lead) bool {
	if l == nil || other == nil {
		return l == other
	}
	if l.ID != other.ID ||
		l.FullName != other.FullName ||
		l.Location != other.Location ||
		l.Status != other.Status ||
		l.Phone != other.Phone ||
		l.Email != other.Email ||
		l.Source != other.Source ||
		l.InterestStatus != other.InterestStatus ||
		l.Notes != other.Notes ||
		l.Owner != other.Owner {
		return false
	}
	if !timePtrEqual(l.CreatedDate, other.CreatedDate) {
		return false
	}
	return floatPtrEqual(l.EngagementScore, other.EngagementScore)
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
