package seed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadstream/leadstream/pkg/leads"
)

func TestBuildUpsert(t *testing.T) {
	created := time.Date(2026, 5, 2, 14, 30, 0, 0, time.UTC)
	score := 7.5
	chunk := []*leads.Lead{
		{
			ID:              1,
			FullName:        "Dana Cohen",
			Status:          leads.StatusNew,
			Source:          leads.SourceGoogleAds,
			CreatedDate:     &created,
			InterestStatus:  leads.InterestNA,
			EngagementScore: &score,
			Owner:           "Alice",
		},
		{
			ID:             2,
			FullName:       "Omar Haddad",
			Status:         leads.StatusContacted,
			Source:         leads.SourceFacebook,
			InterestStatus: leads.Interested,
			Owner:          leads.DefaultOwner,
		},
	}

	query, args := buildUpsert("leads", chunk)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO leads (lead_id, full_name"))
	assert.Contains(t, query, "ON DUPLICATE KEY UPDATE")
	assert.Contains(t, query, "owner = VALUES(owner)")
	// lead_id is the key and must not be updated
	assert.NotContains(t, query, "lead_id = VALUES(lead_id)")

	// Two value tuples
	assert.Equal(t, 2, strings.Count(query, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"))

	require.Len(t, args, 2*len(seedColumns))
	assert.Equal(t, 1, args[0])
	assert.Equal(t, "Dana Cohen", args[1])
	assert.Equal(t, "2026-05-02 14:30:00", args[7])
	assert.Equal(t, 7.5, args[10])

	// Nil date and score become NULL
	offset := len(seedColumns)
	assert.Nil(t, args[offset+7])
	assert.Nil(t, args[offset+10])
	assert.Equal(t, "Unassigned", args[offset+11])
}

func TestBuildUpsertSingleRow(t *testing.T) {
	chunk := []*leads.Lead{{ID: 9, FullName: "Noa Levi", Status: leads.StatusSold, Source: leads.SourceWebsites, InterestStatus: leads.Interested, Owner: "Bob"}}

	query, args := buildUpsert("crm_leads", chunk)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO crm_leads "))
	assert.Len(t, args, len(seedColumns))
	assert.Equal(t, 9, args[0])
}
