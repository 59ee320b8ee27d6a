// Package server provides the HTTP server implementation for the
// Leadstream API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/leadstream/leadstream"
	"github.com/leadstream/leadstream/internal/server/cache"
	"github.com/leadstream/leadstream/internal/server/events"
	"github.com/leadstream/leadstream/internal/server/events/adapters"
	"github.com/leadstream/leadstream/internal/server/sse"
	"github.com/leadstream/leadstream/pkg/leads"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	client         leadstream.Client
	cache          *cache.Cache
	broker         *events.Broker
	sseBroadcaster *sse.Broadcaster
	logger         *zerolog.Logger
	config         Config
	ctx            context.Context
	cancel         context.CancelFunc
	startTime      time.Time
}

// New creates a new server instance with the given configuration.
func New(client leadstream.Client, cfg Config, logger *zerolog.Logger) *Server {
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 5 * time.Minute
	}

	broker := events.NewBroker(logger)
	sseBroadcaster := sse.NewBroadcaster(logger)

	broker.Subscribe(adapters.NewSSESubscriber(sseBroadcaster))

	ctx, cancel := context.WithCancel(context.Background())

	server := &Server{
		client:         client,
		cache:          cache.New(cfg.CacheTTL, cfg.CacheTTL*2),
		broker:         broker,
		sseBroadcaster: sseBroadcaster,
		logger:         logger,
		config:         cfg,
		ctx:            ctx,
		cancel:         cancel,
		startTime:      time.Now(),
	}

	server.connectHooks()

	return server
}

// connectHooks registers Leadstream event hooks to publish to the broker.
// Every persisted edit invalidates cached views and notifies clients.
func (s *Server) connectHooks() {
	s.client.OnLeadUpdated(func(old, updated leads.Lead) {
		s.cache.Clear()
		s.broker.Publish(events.LeadUpdated, map[string]any{
			"old_lead": old,
			"new_lead": updated,
		})
		s.logger.Debug().
			Int("lead_id", updated.ID).
			Msg("Lead updated event published")
	})

	s.client.OnTableReplaced(func(_, updated *leads.Table) {
		s.cache.Clear()
		s.broker.Publish(events.TableReplaced, map[string]any{
			"leads": updated.Len(),
		})
		s.logger.Debug().
			Int("leads", updated.Len()).
			Msg("Table replaced event published")
	})
}

// Start starts background services (broker, SSE broadcaster).
func (s *Server) Start() {
	go s.broker.Run(s.ctx)
	go s.sseBroadcaster.Run(s.ctx)
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// Shutdown gracefully shuts down background services.
func (s *Server) Shutdown(_ context.Context) error {
	s.logger.Info().Msg("Shutting down server background services")

	s.cancel()

	// Give services time to shut down gracefully
	shutdownTimeout := time.NewTimer(5 * time.Second)
	defer shutdownTimeout.Stop()

	select {
	case <-shutdownTimeout.C:
		s.logger.Warn().Msg("Background services shutdown timed out")
	case <-time.After(100 * time.Millisecond):
		s.logger.Info().Msg("Background services shut down successfully")
	}

	return nil
}

// Cache returns the server's cache instance.
func (s *Server) Cache() *cache.Cache {
	return s.cache
}

// SSEBroadcaster returns the SSE broadcaster.
func (s *Server) SSEBroadcaster() *sse.Broadcaster {
	return s.sseBroadcaster
}

// Broker returns the event broker for publishing events.
func (s *Server) Broker() *events.Broker {
	return s.broker
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime
}
