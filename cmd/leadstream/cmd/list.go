package cmd

import (
	"github.com/spf13/cobra"

	"github.com/leadstream/leadstream/internal/cmd/output"
	"github.com/leadstream/leadstream/pkg/errors"
	"github.com/leadstream/leadstream/pkg/leads"
)

var (
	listQuery    string
	listStatuses []string
	listAll      bool
	listOwner    string
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List leads",
	Long: `List shows the lead table filtered by search text and status.

By default only active pipeline statuses (New, Contacted, Qualified)
are shown; use --all or --status to change the selection. The search
text matches lead names case-insensitively and lead IDs by substring.`,
	Example: `  leadstream list
  leadstream list --query dana
  leadstream list --status Sold --status Unreachable
  leadstream list --owner Alice --all -o json`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listQuery, "query", "", "search by name or lead ID")
	listCmd.Flags().StringSliceVar(&listStatuses, "status", nil, "statuses to include (repeatable)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "include every status")
	listCmd.Flags().StringVar(&listOwner, "owner", "", "only leads assigned to this owner")
}

func runList(_ *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	format, err := outputFormat()
	if err != nil {
		return err
	}

	f := leads.Filter{
		Query:    listQuery,
		Statuses: leads.DefaultStatuses(),
	}
	if listAll {
		f.Statuses = nil
	}
	if len(listStatuses) > 0 {
		f.Statuses = f.Statuses[:0]
		for _, raw := range listStatuses {
			s := leads.Status(raw)
			if !s.Valid() {
				return errors.NewValidationError("status", raw, "unknown status value")
			}
			f.Statuses = append(f.Statuses, s)
		}
	}

	rows := f.Apply(client.Leads().List())
	if listOwner != "" {
		rows = leads.ByOwner(rows, listOwner)
	}

	return output.FormatLeads(rows, format)
}
