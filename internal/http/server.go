// Package http provides the HTTP server, routing and shared middleware.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/openleap-io/crypto-vault-service/internal/config"
	cryptoDomain "github.com/openleap-io/crypto-vault-service/internal/crypto/domain"
	cryptoHTTP "github.com/openleap-io/crypto-vault-service/internal/crypto/http"
	"github.com/openleap-io/crypto-vault-service/internal/metrics"
)

// Server is the API server. It is not ready until key material is attached,
// and stops reporting ready once shutdown begins.
type Server struct {
	server      *http.Server
	logger      *slog.Logger
	router      *gin.Engine
	keyMaterial *cryptoDomain.KeyMaterial

	// ctx bounds background work started by middleware, such as limiter cleanup.
	ctx          context.Context
	cancel       context.CancelFunc
	shuttingDown atomic.Bool
}

// NewServer creates a new HTTP server. keyMaterial may be nil, in which case
// /ready reports the service as not ready.
func NewServer(
	keyMaterial *cryptoDomain.KeyMaterial,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		logger:      logger,
		keyMaterial: keyMaterial,
		ctx:         ctx,
		cancel:      cancel,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine with middleware, health endpoints and the
// crypto API. metricsProvider may be nil when metrics are disabled.
func (s *Server) SetupRouter(
	cfg *config.Config,
	cryptoHandler *cryptoHTTP.CryptoHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metricsProvider.HTTPMiddleware())
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	api := router.Group("/api/cvs")
	if cfg.RateLimitEnabled {
		api.Use(RateLimitMiddleware(s.ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	{
		api.POST("/encrypt", cryptoHandler.EncryptHandler)
		api.POST("/decrypt", cryptoHandler.DecryptHandler)
		api.POST("/encryptList", cryptoHandler.EncryptListHandler)
		api.POST("/decryptList", cryptoHandler.DecryptListHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called. SetupRouter must run first.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router is not set up")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones within ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.shuttingDown.Store(true)
	s.cancel()
	return s.server.Shutdown(ctx)
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the service can answer crypto requests.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"key_material": "ok"}
	ready := true

	if s.keyMaterial == nil {
		components["key_material"] = "error"
		ready = false
	}
	if s.shuttingDown.Load() {
		components["server"] = "shutting_down"
		ready = false
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}
