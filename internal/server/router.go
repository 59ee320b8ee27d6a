package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/leadstream/leadstream/internal/server/handlers"
	"github.com/leadstream/leadstream/internal/server/middleware"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()

	h := handlers.New(
		s.client,
		s.cache,
		s.sseBroadcaster,
		s.logger,
	)

	s.registerRoutes(mux, h)

	return s.applyMiddleware(mux)
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	prefix := s.config.PathPrefix

	// Favicon handler (return 204 No Content to avoid 404 logs)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Public health endpoints
	mux.HandleFunc("/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/ready", h.HandleReady)

	// Dashboard endpoint
	mux.HandleFunc(prefix+"/dashboard", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.HandleDashboard(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Leads endpoints
	mux.HandleFunc(prefix+"/leads", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.HandleListLeads(w, r)
		case http.MethodPut:
			h.HandlePutLeads(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc(prefix+"/leads/", func(w http.ResponseWriter, r *http.Request) {
		raw := extractPathParam(r.URL.Path, prefix+"/leads/")
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			http.Error(w, "Invalid lead ID", http.StatusBadRequest)
			return
		}

		switch r.Method {
		case http.MethodGet:
			h.HandleGetLead(w, r, id)
		case http.MethodPatch:
			h.HandlePatchLead(w, r, id)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Owners endpoints
	mux.HandleFunc(prefix+"/owners", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.HandleListOwners(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	mux.HandleFunc(prefix+"/owners/", func(w http.ResponseWriter, r *http.Request) {
		owner := extractPathParam(r.URL.Path, prefix+"/owners/")
		if owner == "" {
			http.Error(w, "Owner required", http.StatusBadRequest)
			return
		}
		if r.Method == http.MethodGet {
			h.HandleGetOwner(w, r, owner)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Admin endpoints
	mux.HandleFunc(prefix+"/reload", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.HandleReload(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Real-time endpoint
	mux.HandleFunc(prefix+"/events", h.HandleSSE)
}

// applyMiddleware wraps handler with middleware chain.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	cfg := s.config

	if cfg.RateLimit > 0 {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, s.logger)
		handler = middleware.RateLimit(rateLimiter)(handler)
	}

	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
			corsConfig.AllowAll = false
		} else {
			corsConfig.AllowAll = true
		}
		handler = middleware.CORS(corsConfig)(handler)
	}

	// Logging and recovery (always enabled)
	handler = middleware.Logger(s.logger)(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

// extractPathParam extracts the first path segment after prefix.
func extractPathParam(path, prefix string) string {
	trimmed := strings.TrimPrefix(path, prefix)
	parts := strings.Split(trimmed, "/")
	if len(parts) > 0 {
		return parts[0]
	}
	return ""
}
