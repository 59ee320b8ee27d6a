package leads

// Field identifies a lead column for field-level merge operations.
type Field string

// Editable fields: the only columns the listing view may change.
const (
	FieldStatus         Field = ColStatus
	FieldInterestStatus Field = ColInterestStatus
	FieldNotes          Field = ColNotes
	FieldLeadSource     Field = ColLeadSource
)

// EditableFields returns the set of fields the edit reconciler will
// carry from an edited view onto the canonical table.
func EditableFields() []Field {
	return []Field{FieldStatus, FieldInterestStatus, FieldNotes, FieldLeadSource}
}

// Merge overlays edited rows onto a deep copy of original, keyed by
// LeadID. Only the given fields are copied; every other column keeps the
// original value, and rows absent from edited are untouched. Keys in
// edited with no counterpart in original are ignored: the edit surface
// never creates or deletes rows. When no fields are given the editable
// set is used.
func Merge(original, edited *Table, fields ...Field) *Table {
	if len(fields) == 0 {
		fields = EditableFields()
	}

	merged := original.Copy()
	edited.ForEach(func(row *Lead) bool {
		target, ok := merged.Get(row.ID)
		if !ok {
			return true
		}
		for _, f := range fields {
			applyField(target, row, f)
		}
		return true
	})
	return merged
}

// applyField copies a single column from src onto dst.
func applyField(dst, src *Lead, f Field) {
	switch f {
	case FieldStatus:
		dst.Status = src.Status
	case FieldInterestStatus:
		dst.InterestStatus = src.InterestStatus
	case FieldNotes:
		dst.Notes = src.Notes
	case FieldLeadSource:
		dst.Source = src.Source
	}
}
