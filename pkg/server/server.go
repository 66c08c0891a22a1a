package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"sync"

	"storefront-hq/gateway/pkg/config"
	"storefront-hq/gateway/pkg/downstream"
	"storefront-hq/gateway/pkg/proxy"
	"storefront-hq/gateway/pkg/proxy/handlers"
	"storefront-hq/gateway/pkg/proxy/middleware"
	"storefront-hq/gateway/pkg/proxy/types"
	"storefront-hq/gateway/pkg/security/auth"
	"storefront-hq/gateway/pkg/security/secrets"
	"storefront-hq/gateway/pkg/telemetry/metrics"

	"github.com/gorilla/mux"
)

// Downstream service names used in logs and metrics.
const (
	ServicePrice        = "price"
	ServiceNotification = "notification"
	ServiceAnalytics    = "analytics"
)

// Server is the gateway HTTP server.
type Server struct {
	config       *config.Config
	collector    *metrics.Collector
	authorizer   auth.Authorizer
	httpServer   *http.Server
	listener     net.Listener
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// Option customizes a Server.
type Option func(*Server)

// WithAuthorizer replaces the authorizer derived from cfg.Security.APIKey.
func WithAuthorizer(a auth.Authorizer) Option {
	return func(s *Server) {
		s.authorizer = a
	}
}

// NewServer creates a new gateway server. cfg must not be modified afterwards.
// If collector is nil a collector on a private registry is created.
func NewServer(cfg *config.Config, collector *metrics.Collector, opts ...Option) *Server {
	if collector == nil {
		collector = metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	}
	s := &Server{
		config:       cfg,
		collector:    collector,
		shutdownChan: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.authorizer == nil {
		s.authorizer = auth.NewAuthorizer(cfg.Security.APIKey)
	}
	return s
}

// AuthorizerFromConfig builds the authorizer for the configured key source.
// With a key file the returned closer stops the file watcher; otherwise it
// is a no-op.
func AuthorizerFromConfig(cfg *config.SecurityConfig) (auth.Authorizer, io.Closer, error) {
	if cfg.APIKeyFile == "" {
		return auth.NewAuthorizer(cfg.APIKey), nopCloser{}, nil
	}

	provider, err := secrets.NewFileProvider(filepath.Dir(cfg.APIKeyFile), true)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open api key file: %w", err)
	}
	name := filepath.Base(cfg.APIKeyFile)
	if _, err := provider.GetSecret(context.Background(), name); err != nil {
		_ = provider.Close()
		return nil, nil, fmt.Errorf("failed to read api key file: %w", err)
	}
	return auth.NewSecretKeyAuthorizer(provider, name), provider, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Start binds the listen address and serves until ctx is cancelled or Stop is
// called; it then shuts down gracefully. A bind failure is returned
// immediately. Callers own signal handling, typically via cli.SignalContext.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}

	ln, err := net.Listen("tcp", s.config.Server.ListenAddress)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to listen on %s: %w", s.config.Server.ListenAddress, err)
	}

	s.listener = ln
	s.httpServer = &http.Server{
		Handler:        s.setupRoutes(),
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		IdleTimeout:    s.config.Server.IdleTimeout,
		MaxHeaderBytes: s.config.Server.MaxHeaderBytes,
	}
	s.isRunning = true
	s.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting gateway",
			"address", ln.Addr().String(),
			"service", s.config.Service.Name,
			"env", s.config.Service.Env,
			"auth_enabled", s.config.Security.APIKey != "" || s.config.Security.APIKeyFile != "",
		)

		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		slog.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// Stop asks a running Start to shut down.
func (s *Server) Stop() {
	select {
	case <-s.shutdownChan:
	default:
		close(s.shutdownChan)
	}
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// up to the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		slog.Info("initiating graceful shutdown", "timeout", s.config.Server.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		slog.Info("gateway stopped")
	})

	return shutdownErr
}

// setupRoutes configures HTTP routes and middleware chain.
func (s *Server) setupRoutes() http.Handler {
	cfg := s.config

	price := s.newDownstream(ServicePrice, cfg.Downstreams.PriceURL)
	notification := s.newDownstream(ServiceNotification, cfg.Downstreams.NotificationURL)
	analytics := s.newDownstream(ServiceAnalytics, cfg.Downstreams.AnalyticsURL)

	guard := auth.NewMiddleware(s.authorizer, s.denied)

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	router.Use(middleware.RouteMiddleware)

	// Public routes
	router.Handle("/health", handlers.NewHealthHandler(cfg.Service.Name, cfg.Service.Env)).Methods(http.MethodGet)
	router.Handle("/docs/websocket", handlers.NewWebSocketDocsHandler()).Methods(http.MethodGet)
	if cfg.Telemetry.Metrics.Enabled {
		router.Handle(cfg.Telemetry.Metrics.Path, s.collector.Handler()).Methods(http.MethodGet)
	}

	// Protected routes
	router.Handle("/compose/product-price",
		guard.Handle(handlers.NewPriceHandler(price, config.TrackingIDFromEnv)),
	).Methods(http.MethodPost)
	router.Handle("/proxy/notifications/send",
		guard.Handle(handlers.NewNotificationHandler(notification)),
	).Methods(http.MethodPost)
	router.Handle("/proxy/analytics/sales-summary",
		guard.Handle(handlers.NewSalesSummaryHandler(analytics)),
	).Methods(http.MethodGet)

	// Apply middleware chain
	var handler http.Handler = router

	// CORS middleware
	corsConfig := middleware.DefaultCORSConfig(cfg.CORS.AllowedOrigins)
	corsConfig.AllowCredentials = cfg.CORS.AllowCredentials
	handler = middleware.CORSMiddleware(corsConfig)(handler)

	// Metrics middleware
	handler = middleware.MetricsMiddleware(s.collector)(handler)

	// Logging middleware
	handler = middleware.LoggingMiddleware(handler)

	// Request ID middleware
	handler = middleware.RequestIDMiddleware(handler)

	// Recovery middleware (outermost)
	handler = middleware.RecoveryMiddleware(handler)

	return handler
}

func (s *Server) newDownstream(name, baseURL string) *downstream.Client {
	return downstream.New(downstream.Config{
		Name:     name,
		BaseURL:  baseURL,
		Timeout:  s.config.Downstreams.Timeout,
		Observer: s.collector,
	})
}

// denied renders an authorization failure and counts it.
func (s *Server) denied(w http.ResponseWriter, r *http.Request, err error) {
	var ue *auth.UnauthorizedError
	if errors.As(err, &ue) {
		s.collector.RecordAuthRejection(ue.Reason)
	}

	if err := proxy.WriteError(w, err); err != nil {
		slog.ErrorContext(r.Context(), "failed to write error response", "error", err)
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	_ = proxy.WriteErrorResponse(w, types.NewNotFoundError(r.URL.Path))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_ = proxy.WriteErrorResponse(w, types.NewMethodNotAllowedError(r.Method))
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Addr returns the bound listen address, or nil before Start has bound it.
func (s *Server) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Handler returns the configured HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}
