// Package server exposes the analyzer over HTTP. It owns everything the
// analysis core is not allowed to do: JSON (de)serialization, input-shape
// validation (joint array lengths, finiteness), CORS, health reporting and
// request instrumentation.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-analysis/internal/analyzer"
	"github.com/rxtech-lab/argo-analysis/internal/logger"
)

// Server serves the analysis API on a single listener.
type Server struct {
	addr       string
	analyzer   *analyzer.Analyzer
	log        *logger.Logger
	metrics    *Metrics
	httpServer *http.Server
}

// NewServer creates a Server bound to addr.
func NewServer(addr string, analyzer *analyzer.Analyzer, log *logger.Logger) *Server {
	return &Server{
		addr:     addr,
		analyzer: analyzer,
		log:      log,
		metrics:  NewMetrics(),
	}
}

// Router builds the HTTP route table with the middleware chain applied.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.Use(s.requestIDMiddleware)
	router.Use(s.corsMiddleware)
	router.Use(s.loggingMiddleware)
	router.Use(s.metricsMiddleware)

	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/calculate/indicators", s.handleIndicators).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/detect/patterns", s.handlePatterns).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/analyze/structure", s.handleStructure).Methods(http.MethodPost, http.MethodOptions)
	router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	return router
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.addr,
		Handler:      s.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.log.Info("analysis server listening", zap.String("addr", s.addr))

	return s.httpServer.ListenAndServe()
}

// Shutdown stops the listener gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}
