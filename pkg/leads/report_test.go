package leads

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportTable(t *testing.T) *Table {
	t.Helper()

	mar := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	apr := time.Date(2026, 4, 2, 14, 30, 0, 0, time.UTC)

	table := NewTable()
	rows := []*Lead{
		{ID: 1, FullName: "Dana Cohen", Status: StatusNew, InterestStatus: InterestNA, Source: SourceGoogleAds, Owner: "Alice", CreatedDate: &mar},
		{ID: 2, FullName: "Omar Haddad", Status: StatusContacted, InterestStatus: Interested, Source: SourceFacebook, Owner: "Alice", CreatedDate: &mar},
		{ID: 3, FullName: "Noa Levi", Status: StatusQualified, InterestStatus: Interested, Source: SourceFacebook, Owner: "Bob", CreatedDate: &apr},
		{ID: 4, FullName: "Rami Said", Status: StatusSold, InterestStatus: InterestNA, Source: SourceWebsites, Owner: "Bob", CreatedDate: &apr},
		{ID: 5, FullName: "Tal Mizrahi", Status: StatusQualified, InterestStatus: NotInterested, Source: SourceOther, Owner: DefaultOwner},
	}
	for _, row := range rows {
		require.NoError(t, table.Set(row))
	}
	return table
}

func TestSummarizeCounts(t *testing.T) {
	r := Summarize(reportTable(t))

	assert.Equal(t, 5, r.TotalLeads)
	assert.Equal(t, 1, r.Contacted)
	assert.Equal(t, 2, r.Interested)
	assert.Equal(t, 2, r.Qualified)
	assert.Equal(t, 1, r.Sold)
	assert.InDelta(t, 40.0, r.ConversionRate, 0.001)
}

func TestSummarizeSourcesZeroFilled(t *testing.T) {
	r := Summarize(reportTable(t))

	// Every source category appears even with no leads
	assert.Len(t, r.Sources, len(SourceOptions()))
	assert.Equal(t, 2, r.Sources[SourceFacebook])
	assert.Equal(t, 0, r.Sources[SourceLinkedIn])
	assert.Equal(t, 0, r.Sources[SourceOfflineEvents])
}

func TestSummarizeStatuses(t *testing.T) {
	r := Summarize(reportTable(t))

	assert.Equal(t, 1, r.Statuses[StatusNew])
	assert.Equal(t, 2, r.Statuses[StatusQualified])
	assert.NotContains(t, r.Statuses, StatusDisqualified)
}

func TestSummarizeMonthly(t *testing.T) {
	r := Summarize(reportTable(t))

	// Lead 5 has no created date and is excluded from the monthly series
	require.Len(t, r.Monthly, 2)
	assert.Equal(t, MonthCount{Month: "2026-03", Count: 2}, r.Monthly[0])
	assert.Equal(t, MonthCount{Month: "2026-04", Count: 2}, r.Monthly[1])
}

func TestSummarizeEmptyTable(t *testing.T) {
	r := Summarize(NewTable())

	assert.Zero(t, r.TotalLeads)
	assert.Zero(t, r.ConversionRate)
	assert.Len(t, r.Sources, len(SourceOptions()))
	assert.Empty(t, r.Monthly)
}

func TestSummarizeRowsFilteredSubset(t *testing.T) {
	rows := ByOwner(reportTable(t).List(), "Bob")
	r := SummarizeRows(rows)

	assert.Equal(t, 2, r.TotalLeads)
	assert.Equal(t, 1, r.Qualified)
	assert.InDelta(t, 50.0, r.ConversionRate, 0.001)
}

func TestOwnersSorted(t *testing.T) {
	owners := Owners(reportTable(t))
	assert.Equal(t, []string{"Alice", "Bob", DefaultOwner}, owners)
}

func TestSummarizeOwner(t *testing.T) {
	r := SummarizeOwner(reportTable(t), "Bob")

	assert.Equal(t, "Bob", r.Owner)
	assert.Equal(t, 2, r.TotalLeads)
	assert.Equal(t, 1, r.Interested)
	assert.Equal(t, 1, r.Qualified)
	assert.InDelta(t, 50.0, r.QualificationRate, 0.001)
	assert.Equal(t, 1, r.Statuses[StatusSold])
}

func TestSummarizeOwnerUnknown(t *testing.T) {
	r := SummarizeOwner(reportTable(t), "Nobody")
	assert.Zero(t, r.TotalLeads)
	assert.Zero(t, r.QualificationRate)
}
