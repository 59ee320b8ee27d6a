package leads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mergeFixture(t *testing.T) *Table {
	t.Helper()
	table := NewTable()
	require.NoError(t, table.Set(&Lead{
		ID: 1, FullName: "Dana Cohen", Phone: "050-1111111",
		Status: StatusNew, InterestStatus: InterestNA,
		Source: SourceGoogleAds, Owner: "Alice",
	}))
	require.NoError(t, table.Set(&Lead{
		ID: 2, FullName: "Omar Haddad", Phone: "050-2222222",
		Status: StatusContacted, InterestStatus: Interested,
		Source: SourceFacebook, Owner: "Alice",
	}))
	return table
}

func TestMergeOverlaysEditableFields(t *testing.T) {
	original := mergeFixture(t)

	edited := NewTable()
	require.NoError(t, edited.Set(&Lead{
		ID: 1, FullName: "IGNORED", Phone: "000",
		Status: StatusQualified, InterestStatus: Interested,
		Notes: "called back", Source: SourceInstagram, Owner: "Mallory",
	}))

	merged := Merge(original, edited)

	row, ok := merged.Get(1)
	require.True(t, ok)
	assert.Equal(t, StatusQualified, row.Status)
	assert.Equal(t, Interested, row.InterestStatus)
	assert.Equal(t, "called back", row.Notes)
	assert.Equal(t, SourceInstagram, row.Source)

	// Non-editable columns keep original values
	assert.Equal(t, "Dana Cohen", row.FullName)
	assert.Equal(t, "050-1111111", row.Phone)
	assert.Equal(t, "Alice", row.Owner)

	// Untouched rows survive unchanged
	other, _ := merged.Get(2)
	orig, _ := original.Get(2)
	assert.True(t, other.Equal(orig))
}

func TestMergeIgnoresUnknownKeys(t *testing.T) {
	original := mergeFixture(t)

	edited := NewTable()
	require.NoError(t, edited.Set(&Lead{ID: 99, FullName: "Ghost", Status: StatusSold}))

	merged := Merge(original, edited)
	assert.Equal(t, 2, merged.Len())
	assert.False(t, merged.Exists(99))
}

func TestMergeDoesNotMutateOriginal(t *testing.T) {
	original := mergeFixture(t)

	edited := NewTable()
	require.NoError(t, edited.Set(&Lead{ID: 1, Status: StatusSold}))

	_ = Merge(original, edited)

	row, _ := original.Get(1)
	assert.Equal(t, StatusNew, row.Status)
}

func TestMergeExplicitFieldSubset(t *testing.T) {
	original := mergeFixture(t)

	edited := NewTable()
	require.NoError(t, edited.Set(&Lead{ID: 2, Status: StatusSold, Notes: "won"}))

	merged := Merge(original, edited, FieldStatus)

	row, _ := merged.Get(2)
	assert.Equal(t, StatusSold, row.Status)
	assert.Empty(t, row.Notes)
	assert.Equal(t, Interested, row.InterestStatus)
}

func TestMergeNoEditsIsEqual(t *testing.T) {
	original := mergeFixture(t)
	merged := Merge(original, NewTable())
	assert.True(t, original.Equal(merged))
}
