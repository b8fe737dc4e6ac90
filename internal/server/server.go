// Package server runs the Bookvault HTTP server. It owns the catalog
// store lifecycle, opening it on start and closing it on shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/bookvault/bookvault/internal/api"
	"github.com/bookvault/bookvault/internal/config"
	"github.com/bookvault/bookvault/internal/home"
	"github.com/bookvault/bookvault/internal/metadata"
	"github.com/bookvault/bookvault/internal/poster"
	"github.com/bookvault/bookvault/internal/server/endpoints"
	"github.com/bookvault/bookvault/internal/store"
	"github.com/bookvault/bookvault/internal/svcctx"
	"github.com/bookvault/bookvault/web"
)

// Server is the main Bookvault HTTP server.
type Server struct {
	httpServer *http.Server
	homeDir    *home.Dir
	configMgr  *config.Manager
	logger     *slog.Logger

	// services holds all core services for context enrichment.
	// Populated on Start once the store is open.
	services *svcctx.Services

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	store   *store.Store
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 8080)
	Port string
	// Home is the bookvault home directory
	Home *home.Dir
	// ConfigManager provides configuration with hot-reload support
	ConfigManager *config.Manager
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Home == nil {
		return nil, errors.New("home directory is required")
	}

	s := &Server{
		homeDir:   cfg.Home,
		configMgr: cfg.ConfigManager,
		logger:    cfg.Logger,
	}

	// Log config reloads; handlers read fresh values per request.
	if cfg.ConfigManager != nil {
		cfg.ConfigManager.OnChange(func(c *config.Config) {
			cfg.Logger.Info("configuration reloaded",
				"max_upload_mb", c.Storage.MaxUploadMB,
				"poster_enabled", c.Poster.Enabled)
		})
	}

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All() {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux, s.requireInit)

	// Serve the embedded frontend for everything the API doesn't claim.
	if dist, err := web.DistFS(); err == nil {
		mux.Handle("GET /", http.FileServer(http.FS(dist)))
	}

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.withServices(mux),
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Start opens the catalog store and serves HTTP.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	if err := s.homeDir.EnsureExists(); err != nil {
		s.setNotRunning()
		return fmt.Errorf("failed to prepare home directory: %w", err)
	}

	s.logger.Info("opening catalog store", "path", s.homeDir.DatabasePath())
	st, err := store.Open(s.homeDir.DatabasePath())
	if err != nil {
		s.setNotRunning()
		return fmt.Errorf("failed to open catalog store: %w", err)
	}
	if err := st.Ping(ctx); err != nil {
		st.Close()
		s.setNotRunning()
		return fmt.Errorf("catalog store health check failed: %w", err)
	}

	s.mu.Lock()
	s.store = st
	s.mu.Unlock()

	// Create services struct for context enrichment
	s.services = &svcctx.Services{
		Store:     st,
		Extractor: metadata.NewExtractor(metadata.FileReader{}, s.logger),
		Composer:  &poster.Composer{},
		ConfigMgr: s.configMgr,
		Home:      s.homeDir,
		Logger:    s.logger,
	}

	// Start HTTP server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			_ = s.shutdown()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// shutdown performs graceful shutdown of the HTTP server and the store.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.mu.Lock()
	st := s.store
	s.store = nil
	s.mu.Unlock()

	if st != nil {
		if err := st.Close(); err != nil {
			s.logger.Error("catalog store close error", "error", err)
		}
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Store returns the catalog store.
// Returns nil if the server hasn't started yet.
func (s *Server) Store() *store.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// withServices wraps a handler to enrich the request context with services.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if s.services != nil {
			ctx = svcctx.WithServices(ctx, s.services)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireInit is middleware that ensures the server is fully initialized.
// Returns 503 Service Unavailable until the catalog store is open.
func (s *Server) requireInit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Store() == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"server not fully initialized"}`))
			return
		}
		next(w, r)
	}
}
