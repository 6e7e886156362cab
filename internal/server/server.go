// Package server exposes the solver and step-by-step search sessions over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/pdrpinto/waterjug"
	"github.com/pdrpinto/waterjug/internal/cmdlogger"
	"github.com/pdrpinto/waterjug/internal/config"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// Server serves the jugsolver HTTP API.
type Server struct {
	cfg       config.ServerConfig
	heuristic waterjug.Heuristic
	engine    *gin.Engine
	httpSrv   *http.Server
	upgrader  websocket.Upgrader
	sessions  *sessionStore

	// cancelled on Shutdown to end open streams
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a server from the loaded configuration.
func New(cfg *config.Config) (*Server, error) {
	heuristic, err := waterjug.ParseHeuristic(cfg.Heuristic)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:       cfg.Server,
		heuristic: heuristic,
		sessions:  newSessionStore(cfg.Server.MaxSessions, cfg.Server.SessionTTL.Duration),
		ctx:       ctx,
		cancel:    cancel,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || s.originAllowed(origin)
		},
	}

	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), requestLogger(), s.corsMiddleware())
	s.routes()

	s.httpSrv = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           s.engine,
		ReadHeaderTimeout: cfg.Server.ReadTimeout.Duration,
		ReadTimeout:       cfg.Server.ReadTimeout.Duration,
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.handleHealth)

	api := s.engine.Group("/api")
	api.POST("/solve", s.handleSolve)
	api.POST("/sessions", s.handleCreateSession)
	api.POST("/sessions/:id/next", s.handleNext)
	api.DELETE("/sessions/:id", s.handleDeleteSession)
	api.GET("/sessions/:id/stream", s.handleStream)
}

// Handler returns the routed handler, for use with httptest or another listener.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe blocks until the server fails or Shutdown is called.
// It returns nil after a clean shutdown.
func (s *Server) ListenAndServe() error {
	cmdlogger.Infof("Serving on http://%s", s.httpSrv.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Shutdown ends open streams and stops accepting requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()
	if err := s.httpSrv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}

	return nil
}

func (s *Server) originAllowed(origin string) bool {
	return slices.Contains(s.cfg.AllowedOrigins, "*") || slices.Contains(s.cfg.AllowedOrigins, origin)
}

func (s *Server) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" && s.originAllowed(origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, Origin")
			c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		cmdlogger.Debugf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
