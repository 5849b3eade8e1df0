// Package server exposes map walking over HTTP.
//
// Routes are grouped under /api/v1:
//
//	POST /api/v1/walk                 walk a posted map
//	GET  /api/v1/samples              list built-in sample names
//	GET  /api/v1/samples/:name/walk   walk a built-in sample
//	GET  /healthz                     liveness probe
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Config holds configuration settings for creating a new Server.
type Config struct {
	Addr         string // Address to listen on
	BaseURL      string // Base URL for API routes; defaults to /api
	MaxBodyBytes int64  // Request body limit; defaults to 1 MiB
	Lenient      bool   // Default path-character policy for requests

	// WalkTimeout bounds each walk; defaults to DefaultWalkTimeout.
	WalkTimeout time.Duration
	// MaxSteps bounds the moves of each walk; defaults to DefaultMaxSteps.
	MaxSteps int
}

// Limits applied when Config leaves them unset. Routes that never reach
// their end marker are cut off by whichever comes first.
const (
	DefaultWalkTimeout = 5 * time.Second
	DefaultMaxSteps    = 1_000_000
)

// Server manages the HTTP engine and its dependencies.
type Server struct {
	cfg    Config
	log    logrus.FieldLogger
	engine *gin.Engine
}

// New creates a Server and registers its routes.
func New(cfg Config, log logrus.FieldLogger) *Server {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "/api"
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}
	if cfg.WalkTimeout <= 0 {
		cfg.WalkTimeout = DefaultWalkTimeout
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	s := &Server{cfg: cfg, log: log, engine: gin.New()}
	s.engine.Use(gin.Recovery(), s.requestLogger())

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.engine.Group(cfg.BaseURL).Group("/v1")
	{
		v1.POST("/walk", s.walk)
		v1.GET("/samples", s.listSamples)
		v1.GET("/samples/:name/walk", s.walkSample)
	}
	return s
}

// Handler returns the HTTP handler, for tests and custom listeners.
func (s *Server) Handler() http.Handler { return s.engine }

// Run starts listening on the configured address.
func (s *Server) Run() error {
	s.log.WithField("addr", s.cfg.Addr).Info("starting pathwalk server")
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// requestLogger logs one line per request through logrus.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		entry := s.log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Error("request failed")
			return
		}
		entry.Debug("request served")
	}
}
