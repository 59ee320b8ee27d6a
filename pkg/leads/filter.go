package leads

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// folder performs Unicode case folding so that free-text search matches
// the way users expect across scripts, not just ASCII.
var folder = cases.Fold()

// Filter selects rows for the listing view. The free-text query is
// applied first, then the status membership filter.
type Filter struct {
	// Query matches case-insensitively against FullName, or as a
	// substring of the LeadID rendered as text.
	Query string

	// Statuses restricts rows to the given status set. Empty means
	// no status filtering.
	Statuses []Status
}

// DefaultStatuses is the listing view's initial status selection.
func DefaultStatuses() []Status {
	return []Status{StatusNew, StatusContacted, StatusQualified}
}

// Apply returns the rows matching the filter, preserving input order.
func (f Filter) Apply(rows []*Lead) []*Lead {
	out := make([]*Lead, 0, len(rows))
	for _, row := range rows {
		if f.Matches(row) {
			out = append(out, row)
		}
	}
	return out
}

// Matches reports whether a single lead passes the filter.
func (f Filter) Matches(l *Lead) bool {
	if q := strings.TrimSpace(f.Query); q != "" {
		name := folder.String(l.FullName)
		id := strconv.Itoa(l.ID)
		if !strings.Contains(name, folder.String(q)) && !strings.Contains(id, q) {
			return false
		}
	}

	if len(f.Statuses) == 0 {
		return true
	}
	for _, s := range f.Statuses {
		if l.Status == s {
			return true
		}
	}
	return false
}

// ByOwner returns the rows belonging to the given owner, preserving
// input order.
func ByOwner(rows []*Lead, owner string) []*Lead {
	out := make([]*Lead, 0, len(rows))
	for _, row := range rows {
		if row.Owner == owner {
			out = append(out, row)
		}
	}
	return out
}
