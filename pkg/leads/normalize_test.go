package leads

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(overrides map[string]string) Record {
	rec := Record{
		ColFullName:       "Dana Cohen",
		ColStatus:         "New",
		ColLeadSource:     "Google Ads",
		ColInterestStatus: "N/A",
		ColOwner:          "Alice",
	}
	for k, v := range overrides {
		rec[k] = v
	}
	return rec
}

func TestNormalizeDefaults(t *testing.T) {
	result := Normalize([]Record{
		record(map[string]string{ColOwner: "", ColLeadSource: "", ColInterestStatus: ""}),
	})

	require.Equal(t, 1, result.Kept)
	lead, ok := result.Table.Get(1)
	require.True(t, ok)
	assert.Equal(t, DefaultOwner, lead.Owner)
	assert.Equal(t, DefaultSource, lead.Source)
	assert.Equal(t, DefaultInterest, lead.InterestStatus)
}

func TestNormalizeTrimsFields(t *testing.T) {
	result := Normalize([]Record{
		record(map[string]string{ColFullName: "  Dana Cohen  ", ColOwner: " Alice "}),
	})

	lead, ok := result.Table.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Dana Cohen", lead.FullName)
	assert.Equal(t, "Alice", lead.Owner)
}

func TestNormalizeDropsInvalidRows(t *testing.T) {
	result := Normalize([]Record{
		record(nil),
		record(map[string]string{ColFullName: ""}),
		record(map[string]string{ColStatus: ""}),
		record(map[string]string{ColFullName: "   "}),
	})

	assert.Equal(t, 1, result.Kept)
	assert.Equal(t, 3, result.Dropped)
	assert.Equal(t, 1, result.Table.Len())
}

func TestNormalizeDenseIDsWhenNonePresent(t *testing.T) {
	result := Normalize([]Record{
		record(map[string]string{ColFullName: "A"}),
		record(map[string]string{ColFullName: "B"}),
		record(map[string]string{ColFullName: "C"}),
	})

	assert.Equal(t, []int{1, 2, 3}, result.Table.IDs())
	assert.Equal(t, 3, result.Reassigned)
}

func TestNormalizePreservesExistingIDs(t *testing.T) {
	result := Normalize([]Record{
		record(map[string]string{ColFullName: "A", ColLeadID: "7"}),
		record(map[string]string{ColFullName: "B"}),
		record(map[string]string{ColFullName: "C", ColLeadID: "3"}),
	})

	// B gets max+1 = 8
	assert.Equal(t, []int{7, 8, 3}, result.Table.IDs())
	assert.Equal(t, 1, result.Reassigned)
}

func TestNormalizeDuplicateIDsTreatedAsMissing(t *testing.T) {
	result := Normalize([]Record{
		record(map[string]string{ColFullName: "A", ColLeadID: "5"}),
		record(map[string]string{ColFullName: "B", ColLeadID: "5"}),
	})

	assert.Equal(t, []int{5, 6}, result.Table.IDs())
	assert.Equal(t, 1, result.Reassigned)
}

func TestNormalizeIDsAssignedBeforeDropping(t *testing.T) {
	// The dropped row still consumes its position in the dense
	// numbering so surviving IDs match record order.
	result := Normalize([]Record{
		record(map[string]string{ColFullName: "A"}),
		record(map[string]string{ColFullName: ""}),
		record(map[string]string{ColFullName: "C"}),
	})

	assert.Equal(t, []int{1, 3}, result.Table.IDs())
	assert.Equal(t, 2, result.Kept)
	assert.Equal(t, 1, result.Dropped)
}

func TestNormalizeFloatIDs(t *testing.T) {
	result := Normalize([]Record{
		record(map[string]string{ColFullName: "A", ColLeadID: "12.0"}),
	})

	_, ok := result.Table.Get(12)
	assert.True(t, ok)
}

func TestNormalizeDates(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *time.Time
	}{
		{
			name:  "rfc3339",
			value: "2026-03-10T09:30:00Z",
			want:  timePtr(time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)),
		},
		{
			name:  "datetime",
			value: "2026-03-10 09:30:00",
			want:  timePtr(time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)),
		},
		{
			name:  "date only",
			value: "2026-03-10",
			want:  timePtr(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:  "garbage",
			value: "not-a-date",
			want:  nil,
		},
		{
			name:  "blank",
			value: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize([]Record{
				record(map[string]string{ColCreatedDate: tt.value}),
			})

			lead, ok := result.Table.Get(1)
			require.True(t, ok)
			if tt.want == nil {
				assert.Nil(t, lead.CreatedDate)
			} else {
				require.NotNil(t, lead.CreatedDate)
				assert.True(t, tt.want.Equal(*lead.CreatedDate))
			}
		})
	}
}

func TestNormalizeScore(t *testing.T) {
	result := Normalize([]Record{
		record(map[string]string{ColEngagementScore: "7.5"}),
		record(map[string]string{ColFullName: "B", ColEngagementScore: "high"}),
		record(map[string]string{ColFullName: "C"}),
	})

	lead, _ := result.Table.Get(1)
	require.NotNil(t, lead.EngagementScore)
	assert.Equal(t, 7.5, *lead.EngagementScore)

	lead, _ = result.Table.Get(2)
	assert.Nil(t, lead.EngagementScore)

	lead, _ = result.Table.Get(3)
	assert.Nil(t, lead.EngagementScore)
}

func TestNormalizeEmpty(t *testing.T) {
	result := Normalize(nil)

	assert.Zero(t, result.Kept)
	assert.Zero(t, result.Dropped)
	assert.Zero(t, result.Table.Len())
}

func timePtr(t time.Time) *time.Time { return &t }
