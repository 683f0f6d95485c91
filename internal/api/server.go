package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/genome-ingest-server/internal/domain"
	"github.com/genome-ingest-server/internal/service"
	"github.com/genome-ingest-server/internal/uploadlog"
)

// HealthChecker reports the health of a backing dependency.
type HealthChecker func(ctx context.Context) error

// Server represents the HTTP server
type Server struct {
	cfg      *domain.Config
	parser   *service.ParserService
	risk     *service.RiskEngine
	store    domain.VariantStore
	progress domain.ProgressSink
	audit    uploadlog.Store
	checks   map[string]HealthChecker
	router   *gin.Engine
	server   *http.Server
	log      *logrus.Logger
}

// Deps bundles the services the server routes to.
type Deps struct {
	Parser   *service.ParserService
	Risk     *service.RiskEngine
	Store    domain.VariantStore
	Progress domain.ProgressSink
	Audit    uploadlog.Store

	// Checks are probed by the health endpoint, keyed by dependency name.
	Checks map[string]HealthChecker
}

// NewServer creates a new HTTP server instance
func NewServer(cfg *domain.Config, deps Deps, logger *logrus.Logger) *Server {
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())

	server := &Server{
		cfg:      cfg,
		parser:   deps.Parser,
		risk:     deps.Risk,
		store:    deps.Store,
		progress: deps.Progress,
		audit:    deps.Audit,
		checks:   deps.Checks,
		router:   router,
		log:      logger,
	}

	server.setupRoutes()

	return server
}

// Router exposes the gin engine, used by tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server and blocks until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.cfg.Server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("HTTP server listening")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.log.Info("Shutting down HTTP server")
	return s.server.Shutdown(shutdownCtx)
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		genome := v1.Group("/genome", userIDMiddleware())
		{
			genome.POST("/parse", s.handleParse)
			genome.POST("/risk", s.handleRisk)
			genome.POST("/upload", s.handleUpload)
			genome.POST("/ingest", s.handleIngest)
			genome.DELETE("/ingest", s.handleCleanup)
			genome.GET("/variants/count", s.handleCount)
		}

		uploads := v1.Group("/uploads", userIDMiddleware())
		{
			uploads.GET("", s.handleListUploads)
			uploads.GET("/:session/progress", s.handleProgress)
			uploads.GET("/:session/progress/ws", s.handleProgressWS)
		}
	}
}

// handleHealth probes each registered dependency and reports per-check state.
func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := make(gin.H, len(s.checks))
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			checks[name] = gin.H{"status": "unhealthy", "error": err.Error()}
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = gin.H{"status": "healthy"}
	}

	body := gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
		"checks":    checks,
	}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}

	c.JSON(status, body)
}

// corsMiddleware adds CORS headers to responses
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-User-ID, X-Session-ID")
		c.Header("Access-Control-Expose-Headers", "Content-Length")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware adds a unique request ID to each request
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}

// userIDMiddleware requires the caller to identify the genome owner.
func userIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "X-User-ID header is required",
			})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}
