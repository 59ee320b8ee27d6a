package leads

import (
	"strconv"
	"strings"
	"time"
)

// Record is a raw row from the backing store, keyed by column name.
// Missing columns and blank values are equivalent.
type Record map[string]string

// Result is the outcome of normalizing raw records into a table.
// Validation outcomes are reported as counts instead of silently
// mutating state.
type Result struct {
	Table      *Table
	Kept       int // rows present in the working table
	Dropped    int // rows discarded for missing FullName or Status
	Reassigned int // rows that received a generated LeadID
}

// dateLayouts are the accepted CreatedDate formats, tried in order.
// RFC 3339 is the canonical persisted form.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalize turns raw records into the canonical lead table:
//
//  1. CreatedDate is parsed per record; failures become nil, never an
//     error for the whole load.
//  2. Owner, LeadSource, and InterestStatus are defaulted when blank.
//  3. LeadIDs: when no record carries an ID the whole table is numbered
//     densely 1..n in record order. Otherwise existing unique positive
//     IDs are preserved and only missing ones are assigned, counting up
//     from the current maximum. Duplicate or non-positive values count
//     as missing.
//  4. Records missing FullName or Status are dropped.
//
// The function is pure: it never touches the backing store.
func Normalize(records []Record) Result {
	parsed := make([]*Lead, 0, len(records))
	ids := make([]int, 0, len(records))
	seen := make(map[int]bool, len(records))
	anyID := false

	for _, rec := range records {
		lead := &Lead{
			FullName:        strings.TrimSpace(rec[ColFullName]),
			Location:        strings.TrimSpace(rec[ColLocation]),
			Status:          Status(strings.TrimSpace(rec[ColStatus])),
			Phone:           strings.TrimSpace(rec[ColPhone]),
			Email:           strings.TrimSpace(rec[ColEmail]),
			Source:          Source(strings.TrimSpace(rec[ColLeadSource])),
			InterestStatus:  InterestStatus(strings.TrimSpace(rec[ColInterestStatus])),
			Notes:           rec[ColNotes],
			Owner:           strings.TrimSpace(rec[ColOwner]),
			CreatedDate:     parseDate(rec[ColCreatedDate]),
			EngagementScore: parseScore(rec[ColEngagementScore]),
		}

		if lead.Owner == "" {
			lead.Owner = DefaultOwner
		}
		if lead.Source == "" {
			lead.Source = DefaultSource
		}
		if lead.InterestStatus == "" {
			lead.InterestStatus = DefaultInterest
		}

		id := parseID(rec[ColLeadID])
		if id > 0 && !seen[id] {
			seen[id] = true
			anyID = true
		} else {
			id = 0
		}

		parsed = append(parsed, lead)
		ids = append(ids, id)
	}

	result := Result{Table: NewTable(WithCapacity(len(parsed)))}

	// Assign IDs before dropping invalid rows, matching the original
	// load order semantics: generated IDs follow file order.
	if !anyID {
		for i := range ids {
			ids[i] = i + 1
		}
		result.Reassigned = len(ids)
	} else {
		next := 0
		for _, id := range ids {
			if id > next {
				next = id
			}
		}
		for i, id := range ids {
			if id == 0 {
				next++
				ids[i] = next
				result.Reassigned++
			}
		}
	}

	for i, lead := range parsed {
		if lead.FullName == "" || lead.Status == "" {
			result.Dropped++
			continue
		}
		lead.ID = ids[i]
		_ = result.Table.Set(lead)
		result.Kept++
	}

	return result
}

// parseDate parses a CreatedDate value, returning nil on failure.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// parseScore parses an EngagementScore value, returning nil on failure.
func parseScore(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// parseID parses a LeadID value, returning 0 when missing or invalid.
// Fractional values like "12.0" are accepted because spreadsheet tools
// routinely rewrite integer columns as floats.
func parseID(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if id, err := strconv.Atoi(s); err == nil {
		return id
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		return int(f)
	}
	return 0
}
