package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leadstream/leadstream"
	"github.com/leadstream/leadstream/internal/cmd/output"
	"github.com/leadstream/leadstream/internal/config"
	"github.com/leadstream/leadstream/pkg/logging"
)

var (
	configFile  string
	csvPath     string
	outputFlag  string
	verboseFlag bool
	quietFlag   bool

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "leadstream",
	Short: "CSV-backed CRM lead dashboard",
	Long: `Leadstream manages a CRM lead pipeline backed by a single CSV file.

It loads and normalizes the lead table, computes pipeline KPIs and
per-owner summaries, reconciles edits back onto the canonical table,
and serves the whole thing over a REST API with live update streaming.`,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
	rootCmd.Version = version

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.leadstream.yaml)")
	rootCmd.PersistentFlags().StringVar(&csvPath, "csv", "", "backing CSV file (default leads_data.csv)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: table, json, yaml, csv")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress non-error output")

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("Failed to bind verbose flag: %v", err))
	}
	if err := viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet")); err != nil {
		panic(fmt.Sprintf("Failed to bind quiet flag: %v", err))
	}
	if err := viper.BindPFlag(config.KeyCSVPath, rootCmd.PersistentFlags().Lookup("csv")); err != nil {
		panic(fmt.Sprintf("Failed to bind csv flag: %v", err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".leadstream" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".leadstream")
	}

	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	config.BindEnv()

	if err := viper.ReadInConfig(); err == nil && verboseFlag {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	configureLogging()
}

// setupCommand is called before any command runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	// Setup output format based on terminal detection
	if outputFlag == "" {
		outputFlag = string(output.DetectFormat(""))
	}
	return nil
}

// configureLogging sets up the logging system based on configuration.
func configureLogging() {
	level := zerolog.InfoLevel
	if verboseFlag || viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	if quietFlag || viper.GetBool("quiet") {
		level = zerolog.WarnLevel
	}
	if envLevel := viper.GetString(config.KeyLogLevel); envLevel != "" {
		if parsed, err := zerolog.ParseLevel(envLevel); err == nil && !verboseFlag && !quietFlag {
			level = parsed
		}
	}

	cfg := &logging.Config{
		Level:     level.String(),
		Format:    viper.GetString(config.KeyLogFormat),
		Output:    "stderr",
		AddCaller: level <= zerolog.DebugLevel,
	}
	if cfg.Format == "" {
		cfg.Format = "auto"
	}

	logging.Configure(cfg)
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envFile); err == nil && verboseFlag {
			fmt.Fprintf(os.Stderr, "Loaded %s\n", envFile)
		}
	}
}

// newClient builds a Leadstream client against the configured CSV file.
func newClient() (leadstream.Client, error) {
	return leadstream.New(leadstream.WithPath(viper.GetString(config.KeyCSVPath)))
}

// outputFormat resolves the output format from the flag.
func outputFormat() (output.Format, error) {
	return output.ParseFormat(outputFlag)
}
