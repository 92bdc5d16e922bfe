// Package ioweb provides the read-only HTTP surface of gnpokedex: species
// cards, Pokédex entries and the language selector as JSON.
package ioweb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gnames/gnpokedex/pkg/config"
	"github.com/gnames/gnpokedex/pkg/dex"
)

const (
	sweepInterval   = time.Minute
	shutdownTimeout = 5 * time.Second
)

// Server serves a Pokedex over HTTP.
type Server struct {
	dex     dex.Pokedex
	cfg     *config.Config
	metrics *metrics
	limiter *rateLimiter
	router  *gin.Engine
}

// New creates a server for d. Rate limiting is disabled when
// cfg.Server.RateLimit is not positive.
func New(d dex.Pokedex, cfg *config.Config) *Server {
	res := &Server{
		dex:     d,
		cfg:     cfg,
		metrics: newMetrics(),
	}
	if cfg.Server.RateLimit > 0 {
		res.limiter = newRateLimiter(
			cfg.Server.RateLimit,
			cfg.Server.RateBurst,
			res.metrics.rateLimited.Inc,
		)
	}
	res.router = res.setupRouter()
	return res
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), accessLog(), s.metrics.middleware())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = s.cfg.Server.CORSOrigins
	if slices.Contains(corsCfg.AllowOrigins, "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "HEAD", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Accept", "If-None-Match", headerRequestID}
	corsCfg.ExposeHeaders = []string{"ETag", headerRequestID}
	if corsCfg.AllowAllOrigins || len(corsCfg.AllowOrigins) > 0 {
		router.Use(cors.New(corsCfg))
	}

	router.GET("/metrics", gin.WrapH(s.metrics.handler()))

	api := router.Group("/api/v1")
	if s.limiter != nil {
		api.Use(s.limiter.middleware())
	}
	{
		api.GET("/ping", s.ping)
		api.GET("/languages", s.languages)

		cards := api.Group("/cards")
		{
			cards.GET("/:identifier", s.card)
			cards.GET("/:identifier/flavor", s.flavor)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorBody{Error: "not found", Code: "NotFound"})
	})

	return router
}

// Run listens on cfg.Server.Port until ctx is canceled, then shuts the
// server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	defer wg.Wait()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.limiter != nil {
		wg.Go(func() { s.limiter.run(ctx, sweepInterval) })
	}

	errCh := make(chan error, 1)
	wg.Go(func() { errCh <- srv.ListenAndServe() })
	slog.Info("HTTP server started", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return ServerError(addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return ServerError(addr, err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return ServerError(addr, err)
	}
	slog.Info("HTTP server stopped", "addr", addr)
	return nil
}
