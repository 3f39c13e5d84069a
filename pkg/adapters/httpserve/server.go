// Package httpserve serves a generated dashboard site for local preview:
// a chi router with the site as static files, a health endpoint and
// prometheus counters on /metrics.
package httpserve

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wraps the preview handler and its metrics.
type Server struct {
	handler     http.Handler
	registry    *prometheus.Registry
	pagesServed *prometheus.CounterVec
	siteDir     string
	logger      *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a structured logger for request logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a preview server for a generated site directory.
func New(siteDir string, opts ...Option) *Server {
	s := &Server{
		siteDir:  siteDir,
		registry: prometheus.NewRegistry(),
		pagesServed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashwright_pages_served_total",
				Help: "Total number of dashboard pages served",
			},
			[]string{"path"},
		),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registry.MustRegister(s.pagesServed)

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Handle("/*", s.countPages(http.FileServer(http.Dir(siteDir))))
	s.handler = r
	return s
}

// Handler returns the HTTP handler for mounting or serving.
func (s *Server) Handler() http.Handler { return s.handler }

// ListenAndServe blocks serving the preview site on addr.
func (s *Server) ListenAndServe(addr string) error {
	if s.logger != nil {
		s.logger.Info("preview server listening", "addr", addr, "dir", s.siteDir)
	}
	return http.ListenAndServe(addr, s.handler)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) countPages(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.pagesServed.WithLabelValues(r.URL.Path).Inc()
		if s.logger != nil {
			s.logger.Debug("serving", "path", r.URL.Path)
		}
		next.ServeHTTP(w, r)
	})
}
