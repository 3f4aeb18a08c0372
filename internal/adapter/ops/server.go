// Package ops exposes operational endpoints while a batch runs: Prometheus
// metrics and a trivial health check. Transaction ingestion never goes over
// the network; this listener is observability only.
package ops

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Server serves /metrics and /healthz on a side port.
type Server struct {
	http *http.Server
	log  zerolog.Logger
}

// NewServer builds an ops server for the given registry.
func NewServer(addr string, gatherer prometheus.Gatherer, log zerolog.Logger) *Server {
	return &Server{
		http: &http.Server{Addr: addr, Handler: router(gatherer)},
		log:  log,
	}
}

func router(gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return r
}

// Start serves in the background. A listener failure is logged, not fatal:
// the batch result matters more than the ops endpoint.
func (s *Server) Start() {
	go func() {
		s.log.Info().Str("addr", s.http.Addr).Msg("ops endpoint listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("ops endpoint failed")
		}
	}()
}

// Shutdown stops the listener gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
