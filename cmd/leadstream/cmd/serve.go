package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/leadstream/leadstream/internal/server"
	"github.com/leadstream/leadstream/pkg/logging"
)

var (
	servePort        int
	serveHost        string
	serveCORS        bool
	serveCORSOrigins []string
	serveRateLimit   int
	serveCacheTTL    time.Duration
	servePrefix      string
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the REST API",
	Long: `Start the Leadstream REST API server.

Features:
  - Dashboard KPIs, lead listing with filters, and per-owner summaries
  - Single-lead and bulk edit reconciliation endpoints
  - Server-Sent Events for live table updates (/api/v1/events)
  - In-memory caching with configurable TTL
  - Rate limiting (requests per minute per IP)
  - CORS support, request logging, panic recovery
  - Graceful shutdown with connection draining`,
	Example: `  # Start on default port 8080
  leadstream serve

  # Custom port with CORS for a web dashboard
  leadstream serve --port 3000 --cors

  # Tighter rate limiting
  leadstream serve --rate-limit 30`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "server port")
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "bind address")
	serveCmd.Flags().BoolVar(&serveCORS, "cors", false, "enable CORS")
	serveCmd.Flags().StringSliceVar(&serveCORSOrigins, "cors-origins", []string{}, "allowed CORS origins (comma-separated)")
	serveCmd.Flags().IntVar(&serveRateLimit, "rate-limit", 100, "requests per minute per IP (0 to disable)")
	serveCmd.Flags().DurationVar(&serveCacheTTL, "cache-ttl", 5*time.Minute, "view cache TTL")
	serveCmd.Flags().StringVar(&servePrefix, "prefix", "/api/v1", "API path prefix")
}

func runServe(_ *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	logger := logging.Default()
	logger.Info().
		Int("port", servePort).
		Str("host", serveHost).
		Str("prefix", servePrefix).
		Str("csv", client.Path()).
		Bool("cors", serveCORS).
		Int("rate_limit", serveRateLimit).
		Msg("Starting API server")

	cfg := server.DefaultConfig()
	cfg.Host = serveHost
	cfg.Port = servePort
	cfg.PathPrefix = servePrefix
	cfg.CORSEnabled = serveCORS
	cfg.CORSOrigins = serveCORSOrigins
	cfg.RateLimit = serveRateLimit
	cfg.CacheTTL = serveCacheTTL

	apiServer := server.New(client, cfg, logger)
	apiServer.Start()

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      apiServer.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return startServerWithGracefulShutdown(httpServer, apiServer, logger)
}

// startServerWithGracefulShutdown runs the HTTP server until a signal
// arrives, then drains connections and stops background services.
func startServerWithGracefulShutdown(httpServer *http.Server, apiServer *server.Server, logger *zerolog.Logger) error {
	serverErr := make(chan error, 1)

	go func() {
		logger.Info().
			Str("addr", httpServer.Addr).
			Msg("Server starting")

		fmt.Printf("Starting API server on %s\n", httpServer.Addr)
		fmt.Println("Press Ctrl+C to stop")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		logger.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		fmt.Println("\nShutting down API server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		if err := apiServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("background services shutdown failed: %w", err)
		}

		logger.Info().Msg("Server stopped gracefully")
		return nil
	}
}
