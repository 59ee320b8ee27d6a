// Package filter parses query parameters into lead filters and pagination.
package filter

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/leadstream/leadstream/pkg/errors"
	"github.com/leadstream/leadstream/pkg/leads"
)

// Default pagination bounds.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Pagination holds limit/offset parsed from query parameters.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Parse extracts a lead filter from query parameters.
//
// Supported parameters:
//   - q: substring match against full name or lead ID
//   - status: comma-separated status values (repeatable)
//   - all: when true, disables the default status filter
func Parse(values url.Values) (leads.Filter, error) {
	f := leads.Filter{
		Query:    strings.TrimSpace(values.Get("q")),
		Statuses: leads.DefaultStatuses(),
	}

	if all, _ := strconv.ParseBool(values.Get("all")); all {
		f.Statuses = nil
	}

	var statuses []leads.Status
	for _, raw := range values["status"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			s := leads.Status(part)
			if !s.Valid() {
				return leads.Filter{}, errors.NewValidationError("status", part, "unknown status value")
			}
			statuses = append(statuses, s)
		}
	}
	if len(statuses) > 0 {
		f.Statuses = statuses
	}

	return f, nil
}

// ParsePagination extracts limit/offset from query parameters.
func ParsePagination(values url.Values) (Pagination, error) {
	p := Pagination{Limit: DefaultLimit}

	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Pagination{}, errors.NewValidationError("limit", raw, "must be a non-negative integer")
		}
		if n > MaxLimit {
			n = MaxLimit
		}
		p.Limit = n
	}

	if raw := values.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Pagination{}, errors.NewValidationError("offset", raw, "must be a non-negative integer")
		}
		p.Offset = n
	}

	return p, nil
}

// Page applies pagination to a slice of leads.
func Page(rows []*leads.Lead, p Pagination) []*leads.Lead {
	if p.Offset >= len(rows) {
		return []*leads.Lead{}
	}
	end := p.Offset + p.Limit
	if p.Limit == 0 || end > len(rows) {
		end = len(rows)
	}
	return rows[p.Offset:end]
}
