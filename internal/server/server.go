// Package server implements the Graphlift HTTP API.
//
// The API accepts raw analyzer exports and returns converted graphs:
//
//	POST   /api/v1/convert      convert an analysis document
//	GET    /api/v1/formats      list convertible formats
//	GET    /api/v1/graphs       list stored graphs
//	GET    /api/v1/graphs/{id}  fetch a stored graph
//	DELETE /api/v1/graphs/{id}  delete a stored graph
//	GET    /healthz             liveness probe
//	GET    /metrics             Prometheus metrics
//
// Conversion goes through the shared pipeline Runner, so the server and
// the CLI cache interchangeably: replicas pointed at the same Redis
// instance deduplicate conversion work.
//
// Errors are returned as a JSON envelope {"error": ..., "code": ...}
// where code is a machine-readable error code. UNSUPPORTED_FORMAT maps
// to 422, validation codes to 400, not-found codes to 404, and
// everything else to 500.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/graphlift/graphlift/pkg/config"
	"github.com/graphlift/graphlift/pkg/pipeline"
	"github.com/graphlift/graphlift/pkg/store"
)

// maxBodyBytes caps analysis document uploads. Analyzer exports for
// large codebases run to a few megabytes; 16 MiB leaves headroom
// without letting a client exhaust memory.
const maxBodyBytes = 16 << 20

// Server is the Graphlift API server.
type Server struct {
	logger    *log.Logger
	runner    *pipeline.Runner
	store     store.Store
	publisher *store.Neo4jPublisher // nil unless Neo4j export is enabled
	http      *http.Server
}

// New assembles a server from its dependencies. publisher may be nil to
// disable the Neo4j mirror.
func New(cfg *config.Config, logger *log.Logger, runner *pipeline.Runner, st store.Store, publisher *store.Neo4jPublisher) *Server {
	s := &Server{
		logger:    logger,
		runner:    runner,
		store:     st,
		publisher: publisher,
	}
	s.http = &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler builds the route tree. Exposed so tests can drive the server
// through httptest without binding a port.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/convert", s.handleConvert)
		r.Get("/formats", s.handleFormats)
		r.Route("/graphs", func(r chi.Router) {
			r.Get("/", s.handleGraphList)
			r.Get("/{id}", s.handleGraphGet)
			r.Delete("/{id}", s.handleGraphDelete)
		})
	})

	return r
}

// Start runs the server until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("api server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
