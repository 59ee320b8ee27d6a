package leads

import (
	"sort"
)

// Report is the dashboard aggregate over the whole table.
type Report struct {
	TotalLeads     int            `json:"total_leads"`
	Contacted      int            `json:"contacted"`
	Interested     int            `json:"interested"`
	Qualified      int            `json:"qualified"`
	Sold           int            `json:"sold"`
	ConversionRate float64        `json:"conversion_rate"`
	Sources        map[Source]int `json:"sources"`
	Statuses       map[Status]int `json:"statuses"`
	Monthly        []MonthCount   `json:"monthly"`
}

// MonthCount is the number of leads created in one calendar month.
type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// OwnerReport is the per-owner KPI slice.
type OwnerReport struct {
	Owner             string         `json:"owner"`
	TotalLeads        int            `json:"total_leads"`
	Interested        int            `json:"interested"`
	Qualified         int            `json:"qualified"`
	QualificationRate float64        `json:"qualification_rate"`
	Statuses          map[Status]int `json:"statuses"`
}

// Summarize computes the dashboard report for the table.
func Summarize(t *Table) Report {
	return summarize(t.List())
}

// SummarizeRows computes the dashboard report for an arbitrary slice of
// rows, for example a filtered listing.
func SummarizeRows(rows []*Lead) Report {
	return summarize(rows)
}

func summarize(rows []*Lead) Report {
	r := Report{
		Sources:  make(map[Source]int, len(SourceOptions())),
		Statuses: make(map[Status]int),
	}

	// The source distribution is zero-filled over the fixed option set
	// so absent categories still appear in charts.
	for _, s := range SourceOptions() {
		r.Sources[s] = 0
	}

	months := make(map[string]int)
	for _, row := range rows {
		r.TotalLeads++
		switch row.Status {
		case StatusContacted:
			r.Contacted++
		case StatusQualified:
			r.Qualified++
		case StatusSold:
			r.Sold++
		}
		if row.InterestStatus == Interested {
			r.Interested++
		}
		r.Sources[row.Source]++
		r.Statuses[row.Status]++
		if row.CreatedDate != nil {
			months[row.CreatedDate.Format("2006-01")]++
		}
	}

	if r.TotalLeads > 0 {
		r.ConversionRate = float64(r.Qualified) / float64(r.TotalLeads) * 100
	}

	r.Monthly = make([]MonthCount, 0, len(months))
	for month, count := range months {
		r.Monthly = append(r.Monthly, MonthCount{Month: month, Count: count})
	}
	sort.Slice(r.Monthly, func(i, j int) bool {
		return r.Monthly[i].Month < r.Monthly[j].Month
	})

	return r
}

// Owners returns the distinct owners in the table, sorted.
func Owners(t *Table) []string {
	set := make(map[string]bool)
	t.ForEach(func(l *Lead) bool {
		set[l.Owner] = true
		return true
	})

	owners := make([]string, 0, len(set))
	for owner := range set {
		owners = append(owners, owner)
	}
	sort.Strings(owners)
	return owners
}

// SummarizeOwner computes the KPI slice for one owner's leads.
func SummarizeOwner(t *Table, owner string) OwnerReport {
	r := OwnerReport{
		Owner:    owner,
		Statuses: make(map[Status]int),
	}

	for _, row := range ByOwner(t.List(), owner) {
		r.TotalLeads++
		if row.InterestStatus == Interested {
			r.Interested++
		}
		if row.Status == StatusQualified {
			r.Qualified++
		}
		r.Statuses[row.Status]++
	}

	if r.TotalLeads > 0 {
		r.QualificationRate = float64(r.Qualified) / float64(r.TotalLeads) * 100
	}
	return r
}
