package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
)

// NewRouter wires the full middleware chain and all endpoints, including
// /healthz and /metrics. Pass a nil tracer to skip span creation.
func NewRouter(h *Handler, reg *prometheus.Registry, tracer trace.Tracer) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logging(h.logger))
	r.Use(Recover(h.logger))
	r.Use(Instrument(h.metrics))
	if tracer != nil {
		r.Use(Trace(tracer))
	}

	h.Register(r)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}

// NewRegistry creates a Prometheus registry preloaded with the standard
// process and Go runtime collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}
