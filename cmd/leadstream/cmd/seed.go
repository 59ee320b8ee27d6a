package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leadstream/leadstream/internal/config"
	"github.com/leadstream/leadstream/internal/seed"
	"github.com/leadstream/leadstream/pkg/errors"
	"github.com/leadstream/leadstream/pkg/logging"
)

var (
	seedDSN   string
	seedTable string
)

// seedCmd represents the seed command.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Mirror the lead table into MySQL",
	Long: `Seed upserts the normalized lead table into a MySQL database,
keyed by lead ID, so repeated runs converge on the current table state.
The DSN can also come from LEADSTREAM_DATABASE_DSN or the config file.`,
	Example: `  leadstream seed --dsn "user:pass@tcp(localhost:3306)/crm"
  leadstream seed --table crm_leads`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVar(&seedDSN, "dsn", "", "MySQL DSN (user:pass@tcp(host:port)/db)")
	seedCmd.Flags().StringVar(&seedTable, "table", "", "target table name (default leads)")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	dsn := seedDSN
	if dsn == "" {
		dsn = viper.GetString(config.KeyDatabaseDSN)
	}
	if dsn == "" {
		return errors.NewValidationError("dsn", "", "database DSN is required")
	}

	table := seedTable
	if table == "" {
		table = viper.GetString(config.KeyDatabaseName)
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	seeder, err := seed.Open(dsn, table)
	if err != nil {
		return err
	}
	defer seeder.Close()

	ctx := cmd.Context()
	if err := seeder.EnsureSchema(ctx); err != nil {
		return err
	}

	count, err := seeder.Seed(ctx, client.Leads())
	if err != nil {
		return err
	}

	logging.Info().
		Int("rows", count).
		Str("table", table).
		Msg("Lead table seeded")
	fmt.Printf("Seeded %d leads into %s\n", count, table)
	return nil
}
