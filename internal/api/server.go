// Package api provides the HTTP API server for Ontomapper.
// It uses the Echo framework to serve the ontology browsing endpoints, the
// graph generators and the editor's static front-end.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"evalgo.org/ontomapper/internal/config"
	"evalgo.org/ontomapper/internal/metrics"
	"evalgo.org/ontomapper/internal/ontology"
	"evalgo.org/ontomapper/internal/storage"
	"evalgo.org/ontomapper/internal/validation"
	"evalgo.org/ontomapper/internal/version"
)

// Server represents the Ontomapper API server.
// The ontology store is read-only once the server is built, so handlers
// share it without locking.
type Server struct {
	echo      *echo.Echo
	config    *config.Config
	logger    *slog.Logger
	store     *ontology.Store
	catalog   *ontology.Catalog
	validator *validation.Validator
	uploads   *storage.Uploads
	metrics   *metrics.Registry
}

// New creates a new API server instance over a loaded store.
func New(cfg *config.Config, store *ontology.Store, logger *slog.Logger) (*Server, error) {
	if store == nil {
		store = ontology.Empty()
	}
	if logger == nil {
		logger = slog.Default()
	}

	uploads, err := storage.NewUploads(cfg.Uploads.Dir, logger)
	if err != nil {
		return nil, err
	}

	e := echo.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Server.Debug

	// Set custom error handler
	e.HTTPErrorHandler = HTTPErrorHandler

	server := &Server{
		echo:      e,
		config:    cfg,
		logger:    logger,
		store:     store,
		catalog:   ontology.NewCatalog(store, logger),
		validator: validation.New(),
		uploads:   uploads,
	}

	if cfg.Metrics.Enabled {
		server.metrics = metrics.New()
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server, nil
}

// setupMiddleware configures Echo middleware.
func (s *Server) setupMiddleware() {
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogMethod:    true,
		LogURI:       true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"status", v.Status,
				"method", v.Method,
				"uri", v.URI,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				s.logger.Warn("request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			s.logger.Info("request", attrs...)
			return nil
		},
	}))

	s.echo.Use(middleware.Recover())

	// Every response, errors and static files included, is uncacheable.
	s.echo.Use(NoCache)
	s.echo.Use(SecurityHeaders)

	if len(s.config.Security.AllowedOrigins) > 0 {
		s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.config.Security.AllowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	s.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	if s.config.Security.RateLimit > 0 {
		s.echo.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(
			rate.Limit(s.config.Security.RateLimit),
		)))
	}

	if s.metrics != nil {
		s.echo.Use(s.metrics.Middleware())
	}
}

// setupRoutes configures API routes.
func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)

	if s.metrics != nil {
		s.echo.GET(s.config.Metrics.Path, s.metrics.Handler())
	}

	// Ontology browsing
	s.echo.GET("/classes", s.listClasses)
	s.echo.GET("/class_details", s.classDetails)
	s.echo.GET("/object_properties", s.listObjectProperties)
	s.echo.GET("/data_properties", s.listDataProperties)
	s.echo.GET("/property_details", s.propertyDetails)
	s.echo.GET("/ontology_search", s.ontologySearch)

	// Editor support
	s.echo.POST("/validate_property", s.validateProperty)
	s.echo.POST("/generate_r2rml", s.generateR2RML)
	s.echo.POST("/generate_rdf", s.generateRDF)
	s.echo.POST("/generate_mermaid", s.generateMermaid)

	uploadLimit := s.config.Security.MaxUploadSize
	if uploadLimit == "" {
		uploadLimit = "32M"
	}
	s.echo.POST("/upload", s.upload, middleware.BodyLimit(uploadLimit))

	s.setupStatic()
}

// setupStatic serves the built editor when its directory exists.
func (s *Server) setupStatic() {
	dir := s.config.Frontend.StaticDir
	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		s.logger.Debug("front-end directory not found, static routes disabled", "dir", dir)
		return
	}

	s.echo.Static("/assets", filepath.Join(dir, "assets"))
	s.echo.Static("/static", dir)
	s.echo.File("/", filepath.Join(dir, "index.html"))
}

// Metrics returns the metrics registry, or nil when metrics are disabled.
func (s *Server) Metrics() *metrics.Registry {
	return s.metrics
}

// Handler exposes the router, mainly for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := s.config.Server.Address()

	s.logger.Info("starting Ontomapper API server",
		"address", fmt.Sprintf("http://%s", addr),
		"triples", s.store.Len(),
		"debug", s.config.Server.Debug,
	)

	// Configure server timeouts
	s.echo.Server.ReadTimeout = s.config.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.config.Server.WriteTimeout

	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down Ontomapper API server")

	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// healthCheck handles health check requests.
// An empty store is reported as degraded, not as a failure.
func (s *Server) healthCheck(c echo.Context) error {
	status := "healthy"
	if s.store.Len() == 0 {
		status = "degraded"
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:  status,
		Service: version.Name,
		Version: version.Version,
		Triples: s.store.Len(),
	})
}
