package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadstream/leadstream/pkg/errors"
	"github.com/leadstream/leadstream/pkg/leads"
)

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f, err := Parse(url.Values{})
		require.NoError(t, err)
		assert.Empty(t, f.Query)
		assert.Equal(t, leads.DefaultStatuses(), f.Statuses)
	})

	t.Run("query trimmed", func(t *testing.T) {
		f, err := Parse(url.Values{"q": {"  dana  "}})
		require.NoError(t, err)
		assert.Equal(t, "dana", f.Query)
	})

	t.Run("comma separated statuses", func(t *testing.T) {
		f, err := Parse(url.Values{"status": {"Sold,Unreachable"}})
		require.NoError(t, err)
		assert.Equal(t, []leads.Status{leads.StatusSold, leads.StatusUnreachable}, f.Statuses)
	})

	t.Run("repeated status params", func(t *testing.T) {
		f, err := Parse(url.Values{"status": {"New", "Contacted"}})
		require.NoError(t, err)
		assert.Equal(t, []leads.Status{leads.StatusNew, leads.StatusContacted}, f.Statuses)
	})

	t.Run("all disables status filter", func(t *testing.T) {
		f, err := Parse(url.Values{"all": {"true"}})
		require.NoError(t, err)
		assert.Nil(t, f.Statuses)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := Parse(url.Values{"status": {"Bogus"}})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestParsePagination(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := ParsePagination(url.Values{})
		require.NoError(t, err)
		assert.Equal(t, DefaultLimit, p.Limit)
		assert.Zero(t, p.Offset)
	})

	t.Run("explicit values", func(t *testing.T) {
		p, err := ParsePagination(url.Values{"limit": {"25"}, "offset": {"50"}})
		require.NoError(t, err)
		assert.Equal(t, 25, p.Limit)
		assert.Equal(t, 50, p.Offset)
	})

	t.Run("limit capped", func(t *testing.T) {
		p, err := ParsePagination(url.Values{"limit": {"99999"}})
		require.NoError(t, err)
		assert.Equal(t, MaxLimit, p.Limit)
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := ParsePagination(url.Values{"offset": {"-1"}})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("non-numeric rejected", func(t *testing.T) {
		_, err := ParsePagination(url.Values{"limit": {"ten"}})
		require.Error(t, err)
	})
}

func TestPage(t *testing.T) {
	rows := []*leads.Lead{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	t.Run("window", func(t *testing.T) {
		got := Page(rows, Pagination{Limit: 2, Offset: 1})
		require.Len(t, got, 2)
		assert.Equal(t, 2, got[0].ID)
		assert.Equal(t, 3, got[1].ID)
	})

	t.Run("offset past end", func(t *testing.T) {
		got := Page(rows, Pagination{Limit: 2, Offset: 10})
		assert.Empty(t, got)
	})

	t.Run("limit past end", func(t *testing.T) {
		got := Page(rows, Pagination{Limit: 10, Offset: 2})
		require.Len(t, got, 2)
		assert.Equal(t, 3, got[0].ID)
	})

	t.Run("zero limit returns rest", func(t *testing.T) {
		got := Page(rows, Pagination{Limit: 0, Offset: 1})
		assert.Len(t, got, 3)
	})
}
