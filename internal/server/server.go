// Package server provides the HTTP REST API for the job matching core.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/budget"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/pipeline"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/selection"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	scorer     *ranking.Scorer
	selector   *selection.ProjectSelector
	optimizer  *budget.PageOptimizer
	pipeline   *pipeline.Pipeline
	log        *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port      int
	Scorer    *ranking.Scorer
	Selector  *selection.ProjectSelector
	Optimizer *budget.PageOptimizer
	Pipeline  *pipeline.Pipeline
	Logger    *zap.Logger
}

// New creates a new server instance with its components injected.
func New(cfg Config) (*Server, error) {
	if cfg.Scorer == nil || cfg.Selector == nil || cfg.Optimizer == nil || cfg.Pipeline == nil {
		return nil, fmt.Errorf("server requires scorer, selector, optimizer, and pipeline")
	}

	s := &Server{
		scorer:    cfg.Scorer,
		selector:  cfg.Selector,
		optimizer: cfg.Optimizer,
		pipeline:  cfg.Pipeline,
		log:       logger.WithFields(cfg.Logger),
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("POST /rank", s.handleRankJobs)
	mux.HandleFunc("POST /projects/select", s.handleSelectProjects)
	mux.HandleFunc("POST /content/optimize", s.handleOptimizeContent)
	mux.HandleFunc("POST /context/cv", s.handleCVContext)
	mux.HandleFunc("POST /context/cover-letter", s.handleCoverLetterContext)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return s, nil
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
