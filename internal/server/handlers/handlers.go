// Package handlers provides HTTP request handlers for the Leadstream API.
package handlers

import (
	"github.com/rs/zerolog"

	"github.com/leadstream/leadstream"
	"github.com/leadstream/leadstream/internal/server/cache"
	"github.com/leadstream/leadstream/internal/server/sse"
)

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	client         leadstream.Client
	cache          *cache.Cache
	sseBroadcaster *sse.Broadcaster
	logger         *zerolog.Logger
}

// New creates a new Handlers instance.
func New(
	client leadstream.Client,
	cache *cache.Cache,
	sseBroadcaster *sse.Broadcaster,
	logger *zerolog.Logger,
) *Handlers {
	return &Handlers{
		client:         client,
		cache:          cache,
		sseBroadcaster: sseBroadcaster,
		logger:         logger,
	}
}
