package output

import (
	"os"
	"strconv"

	"github.com/leadstream/leadstream/pkg/leads"
)

// FormatLeads formats a slice of leads for the requested output format.
// Tabular formats get the listing columns; JSON and YAML get the full
// lead records.
func FormatLeads(rows []*leads.Lead, format Format) error {
	formatter := NewFormatter(format)

	var outputData any
	switch format {
	case FormatTable, FormatCSV, "":
		outputData = LeadsToTableData(rows)
	default:
		outputData = rows
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatAny formats any data type for output. Useful for commands with
// custom data structures.
func FormatAny(data any, format Format) error {
	formatter := NewFormatter(format)
	return formatter.Format(os.Stdout, data)
}

// LeadsToTableData converts leads to the tabular listing columns.
func LeadsToTableData(rows []*leads.Lead) Data {
	data := Data{
		Headers: []string{"ID", "Full Name", "Status", "Interest", "Source", "Owner", "Created", "Notes"},
	}

	for _, l := range rows {
		created := ""
		if l.CreatedDate != nil {
			created = l.CreatedDate.Format("2006-01-02")
		}
		data.Rows = append(data.Rows, []string{
			strconv.Itoa(l.ID),
			l.FullName,
			string(l.Status),
			string(l.InterestStatus),
			string(l.Source),
			l.Owner,
			created,
			l.Notes,
		})
	}

	return data
}

// ReportToTableData converts a KPI report to key-value rows.
func ReportToTableData(r leads.Report) Data {
	data := Data{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Leads", strconv.Itoa(r.TotalLeads)},
			{"Contacted", strconv.Itoa(r.Contacted)},
			{"Interested", strconv.Itoa(r.Interested)},
			{"Qualified", strconv.Itoa(r.Qualified)},
			{"Sold", strconv.Itoa(r.Sold)},
			{"Conversion Rate", strconv.FormatFloat(r.ConversionRate, 'f', 1, 64) + "%"},
		},
	}

	for _, source := range leads.SourceOptions() {
		data.Rows = append(data.Rows, []string{
			"Source: " + string(source),
			strconv.Itoa(r.Sources[source]),
		})
	}

	for _, mc := range r.Monthly {
		data.Rows = append(data.Rows, []string{
			"Created " + mc.Month,
			strconv.Itoa(mc.Count),
		})
	}

	return data
}

// OwnersToTableData converts per-owner summaries to tabular rows.
func OwnersToTableData(reports []leads.OwnerReport) Data {
	data := Data{
		Headers: []string{"Owner", "Leads", "Interested", "Qualified", "Qualification Rate"},
	}

	for _, r := range reports {
		data.Rows = append(data.Rows, []string{
			r.Owner,
			strconv.Itoa(r.TotalLeads),
			strconv.Itoa(r.Interested),
			strconv.Itoa(r.Qualified),
			strconv.FormatFloat(r.QualificationRate, 'f', 1, 64) + "%",
		})
	}

	return data
}
