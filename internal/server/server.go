// Package server exposes the command-graph inspector over HTTP: paste bytes,
// get the decoded grammar back, and the reverse.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/danmuck/mcwire/internal/config"
	"github.com/danmuck/mcwire/internal/observability"
	"github.com/danmuck/mcwire/internal/protocol/frame"
)

var startedAt = time.Now()

type Inspector struct {
	cfg    config.Inspector
	logger zerolog.Logger
	router *gin.Engine
}

func New(cfg config.Inspector, logger zerolog.Logger) *Inspector {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Middleware: keep it lean
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(logger))
	r.Use(observability.RequestMetricsMiddleware(cfg.Name))
	if len(cfg.CorsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CorsOrigins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	s := &Inspector{cfg: cfg, logger: logger, router: r}
	s.registerRoutes()
	return s
}

func (s *Inspector) limits() frame.Limits {
	return frame.Limits{MaxPacketBytes: s.cfg.MaxPacketBytes}
}

// Router returns the underlying engine, for tests.
func (s *Inspector) Router() *gin.Engine {
	return s.router
}

func (s *Inspector) Run() error {
	s.logger.Info().Str("addr", s.cfg.Addr).Msg("inspector listening")
	return s.router.Run(s.cfg.Addr)
}

func (s *Inspector) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"uptime":  time.Since(startedAt).String(),
			"service": s.cfg.Name,
			"version": "0.1.0",
		})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.POST("/v1/graph/decode", s.handleDecode)
	s.router.POST("/v1/graph/encode", s.handleEncode)
}
