// Package config centralizes runtime configuration for Leadstream.
// Values come from flags, a config file, and LEADSTREAM_* environment
// variables, resolved through Viper.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Viper keys for all tunables.
const (
	KeyCSVPath      = "csv_path"
	KeyLogLevel     = "log_level"
	KeyLogFormat    = "log_format"
	KeyServerHost   = "server.host"
	KeyServerPort   = "server.port"
	KeyServerCORS   = "server.cors"
	KeyRateLimit    = "server.rate_limit"
	KeyCacheTTL     = "server.cache_ttl"
	KeyDatabaseDSN  = "database.dsn"
	KeyDatabaseName = "database.table"
)

// Config holds the resolved runtime configuration.
type Config struct {
	CSVPath   string `yaml:"csv_path"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	Server struct {
		Host      string        `yaml:"host"`
		Port      int           `yaml:"port"`
		CORS      bool          `yaml:"cors"`
		RateLimit int           `yaml:"rate_limit"`
		CacheTTL  time.Duration `yaml:"cache_ttl"`
	} `yaml:"server"`

	Database struct {
		DSN   string `yaml:"dsn"`
		Table string `yaml:"table"`
	} `yaml:"database"`
}

// SetDefaults registers default values with Viper.
func SetDefaults() {
	viper.SetDefault(KeyCSVPath, "leads_data.csv")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, "auto")
	viper.SetDefault(KeyServerHost, "localhost")
	viper.SetDefault(KeyServerPort, 8080)
	viper.SetDefault(KeyServerCORS, false)
	viper.SetDefault(KeyRateLimit, 100)
	viper.SetDefault(KeyCacheTTL, 5*time.Minute)
	viper.SetDefault(KeyDatabaseDSN, "")
	viper.SetDefault(KeyDatabaseName, "leads")
}

// BindEnv wires LEADSTREAM_* environment variables into Viper.
// Nested keys map with underscores, e.g. LEADSTREAM_SERVER_PORT.
func BindEnv() {
	viper.SetEnvPrefix("LEADSTREAM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

// Load resolves the current configuration from Viper.
func Load() *Config {
	cfg := &Config{}
	cfg.CSVPath = viper.GetString(KeyCSVPath)
	cfg.LogLevel = viper.GetString(KeyLogLevel)
	cfg.LogFormat = viper.GetString(KeyLogFormat)
	cfg.Server.Host = viper.GetString(KeyServerHost)
	cfg.Server.Port = viper.GetInt(KeyServerPort)
	cfg.Server.CORS = viper.GetBool(KeyServerCORS)
	cfg.Server.RateLimit = viper.GetInt(KeyRateLimit)
	cfg.Server.CacheTTL = viper.GetDuration(KeyCacheTTL)
	cfg.Database.DSN = viper.GetString(KeyDatabaseDSN)
	cfg.Database.Table = viper.GetString(KeyDatabaseName)
	return cfg
}

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}
