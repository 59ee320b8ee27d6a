package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leadstream/leadstream"
	"github.com/leadstream/leadstream/internal/cmd/output"
	"github.com/leadstream/leadstream/pkg/errors"
	"github.com/leadstream/leadstream/pkg/leads"
)

var (
	setStatus   string
	setInterest string
	setNotes    string
	setSource   string
)

// setCmd represents the set command.
var setCmd = &cobra.Command{
	Use:   "set <lead-id>",
	Short: "Edit a lead's tracked fields",
	Long: `Set changes the editable fields of a single lead (status, interest
status, notes, and lead source) and persists the table. Omitted flags
leave the field unchanged; an edit that changes nothing writes nothing.`,
	Example: `  leadstream set 12 --status Contacted
  leadstream set 12 --interest Interested --notes "asked for pricing"
  leadstream set 7 --source Instagram`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().StringVar(&setStatus, "status", "", "new status")
	setCmd.Flags().StringVar(&setInterest, "interest", "", "new interest status")
	setCmd.Flags().StringVar(&setNotes, "notes", "", "new notes")
	setCmd.Flags().StringVar(&setSource, "source", "", "new lead source")
}

func runSet(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return errors.NewValidationError("lead-id", args[0], "must be a positive integer")
	}

	var edit leadstream.LeadEdit
	if cmd.Flags().Changed("status") {
		s := leads.Status(setStatus)
		edit.Status = &s
	}
	if cmd.Flags().Changed("interest") {
		i := leads.InterestStatus(setInterest)
		edit.InterestStatus = &i
	}
	if cmd.Flags().Changed("notes") {
		edit.Notes = &setNotes
	}
	if cmd.Flags().Changed("source") {
		src := leads.Source(setSource)
		edit.Source = &src
	}

	if edit.Status == nil && edit.InterestStatus == nil && edit.Notes == nil && edit.Source == nil {
		return fmt.Errorf("nothing to change: pass at least one of --status, --interest, --notes, --source")
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	updated, err := client.Edit(id, edit)
	if err != nil {
		return err
	}

	format, err := outputFormat()
	if err != nil {
		return err
	}

	return output.FormatLeads([]*leads.Lead{&updated}, format)
}
