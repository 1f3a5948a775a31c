package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"github.com/feral-file/wallet-ledger/internal/adapter"
	"github.com/feral-file/wallet-ledger/internal/api/middleware"
	"github.com/feral-file/wallet-ledger/internal/api/rest"
	"github.com/feral-file/wallet-ledger/internal/api/shared/executor"
	"github.com/feral-file/wallet-ledger/internal/auth"
	"github.com/feral-file/wallet-ledger/internal/logger"
	"github.com/feral-file/wallet-ledger/internal/providers/solana"
	"github.com/feral-file/wallet-ledger/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug              bool
	Host               string
	Port               int
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	CORSAllowedOrigins []string
	MetricsEnabled     bool
	MetricsPath        string
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	ledger     solana.LedgerClient
	tokens     auth.TokenIssuer
	clock      adapter.Clock
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, store store.Store, ledger solana.LedgerClient, tokens auth.TokenIssuer, clock adapter.Clock) *Server {
	return &Server{
		config: cfg,
		store:  store,
		ledger: ledger,
		tokens: tokens,
		clock:  clock,
	}
}

// Router builds the gin engine with middleware and all routes
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(s.config.CORSAllowedOrigins))

	if s.config.MetricsEnabled {
		p := ginprometheus.NewPrometheus("wallet_ledger_http")
		p.MetricsPath = s.config.MetricsPath
		// Label by route pattern so transaction hashes don't become label values
		p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
			if route := c.FullPath(); route != "" {
				return route
			}
			return "unmatched"
		}
		p.Use(router)
	}

	// Create shared executor
	exec := executor.NewExecutor(s.store, s.ledger, s.tokens, s.clock)

	// Create REST handler and routes
	restHandler := rest.NewHandler(exec, s.clock)
	rest.SetupRoutes(router, restHandler, s.tokens, s.store)

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
		zap.Bool("metrics_enabled", s.config.MetricsEnabled),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
