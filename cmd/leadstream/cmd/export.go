package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leadstream/leadstream/internal/cmd/output"
	"github.com/leadstream/leadstream/pkg/errors"
)

var exportFile string

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full lead table",
	Long: `Export writes the complete normalized lead table in the requested
format. Unlike list, no status filter is applied.`,
	Example: `  leadstream export -o json
  leadstream export -o csv --file leads_export.csv
  leadstream export -o yaml`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFile, "file", "", "write to file instead of stdout")
}

func runExport(_ *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	format, err := outputFormat()
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if exportFile != "" {
		f, err := os.Create(exportFile)
		if err != nil {
			return errors.WrapIO("create", exportFile, err)
		}
		defer f.Close()
		w = f
	}

	rows := client.Leads().List()
	formatter := output.NewFormatter(format)

	switch format {
	case output.FormatTable, output.FormatCSV, "":
		return formatter.Format(w, output.LeadsToTableData(rows))
	default:
		return formatter.Format(w, rows)
	}
}
