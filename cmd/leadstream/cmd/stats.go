package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/leadstream/leadstream/internal/cmd/output"
	"github.com/leadstream/leadstream/pkg/leads"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show pipeline KPIs",
	Long: `Stats computes the dashboard KPIs over the full lead table:
totals, conversion rate, per-source and per-status counts, and the
monthly lead creation series.`,
	Example: `  leadstream stats
  leadstream stats -o json`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	format, err := outputFormat()
	if err != nil {
		return err
	}

	report := leads.Summarize(client.Leads())

	switch format {
	case output.FormatTable, output.FormatCSV, "":
		formatter := output.NewFormatter(format)
		return formatter.Format(os.Stdout, output.ReportToTableData(report))
	default:
		return output.FormatAny(report, format)
	}
}
