// Package server exposes the analysis pipeline over a small HTTP REST API.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/prompt"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/store"
)

// Server wires the scoring engine, prompt composer, and optional persistence
// behind HTTP handlers.
type Server struct {
	httpServer *http.Server
	engine     *scoring.Engine
	composer   *prompt.Composer
	store      *store.Store
	log        *zap.Logger
}

// Config holds server construction parameters. Store may be nil; analysis
// then runs without persistence.
type Config struct {
	Addr     string
	Engine   *scoring.Engine
	Composer *prompt.Composer
	Store    *store.Store
	Log      *zap.Logger
}

// New creates a server instance and its routes.
func New(cfg Config) *Server {
	s := &Server{
		engine:   cfg.Engine,
		composer: cfg.Composer,
		store:    cfg.Store,
		log:      cfg.Log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /api/v1/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/v1/analyses/{id}", s.handleGetAnalysis)
	mux.HandleFunc("POST /api/v1/prompts", s.handleComposePrompt)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start listens until an interrupt or termination signal arrives, then shuts
// down gracefully. Timeout and backpressure policy live here, outside the
// analysis core.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	s.log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	if s.store != nil {
		s.store.Close()
	}
	s.log.Info("server stopped")
	return nil
}

// Handler returns the root handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
