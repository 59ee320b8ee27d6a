package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/leadstream/leadstream/internal/cmd/output"
	"github.com/leadstream/leadstream/pkg/errors"
	"github.com/leadstream/leadstream/pkg/leads"
)

// ownersCmd represents the owners command.
var ownersCmd = &cobra.Command{
	Use:   "owners [owner]",
	Short: "Show per-owner pipeline summaries",
	Long: `Owners summarizes the pipeline per owner. Without arguments it
lists every owner with their lead counts and qualification rate; with
an owner name it shows that owner's summary and leads.`,
	Example: `  leadstream owners
  leadstream owners Alice
  leadstream owners -o yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOwners,
}

func init() {
	rootCmd.AddCommand(ownersCmd)
}

func runOwners(_ *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	format, err := outputFormat()
	if err != nil {
		return err
	}

	table := client.Leads()

	if len(args) == 1 {
		owner := args[0]
		rows := leads.ByOwner(table.List(), owner)
		if len(rows) == 0 {
			return errors.NewNotFoundError("owner", owner)
		}

		switch format {
		case output.FormatTable, output.FormatCSV, "":
			return output.FormatLeads(rows, format)
		default:
			return output.FormatAny(map[string]any{
				"summary": leads.SummarizeOwner(table, owner),
				"leads":   rows,
			}, format)
		}
	}

	reports := make([]leads.OwnerReport, 0)
	for _, owner := range leads.Owners(table) {
		reports = append(reports, leads.SummarizeOwner(table, owner))
	}

	switch format {
	case output.FormatTable, output.FormatCSV, "":
		formatter := output.NewFormatter(format)
		return formatter.Format(os.Stdout, output.OwnersToTableData(reports))
	default:
		return output.FormatAny(reports, format)
	}
}
