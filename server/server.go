// Package server is the dashboard: a small HTTP surface that renders the
// price history, the per-day hedge table, and a what-if hedge calculator.
// Handlers only ever call the pure dv01 functions, so every request is
// isolated; the only shared state is the read-only series source.
package server

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/quantrlabs/hedgecalc/config"
	"github.com/quantrlabs/hedgecalc/market"
)

// SeriesSource supplies the historical price series. *store.Store satisfies
// it; tests use an in-memory fake.
type SeriesSource interface {
	Bars(pair string, from, to time.Time) (market.Series, error)
}

type Server struct {
	cfg    *config.Config
	source SeriesSource
	log    zerolog.Logger
}

func New(cfg *config.Config, source SeriesSource, log zerolog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, errors.New("series source is required")
	}
	return &Server{cfg: cfg, source: source, log: log}, nil
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())
	r.SetHTMLTemplate(template.Must(template.New("index").Parse(indexHTML)))

	r.GET("/", s.handleIndex)
	r.GET("/api/series", s.handleSeries)
	r.GET("/api/hedge", s.handleHedge)
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", srv.Addr).Msg("dashboard listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}
