package remote

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	activeRequests  prometheus.Gauge
	appended        prometheus.Counter
	rejected        prometheus.Counter
	storedRecords   prometheus.Gauge
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(registry)

	return &metrics{
		registry: registry,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "focus_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "focus_http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		activeRequests: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "focus_http_active_requests",
				Help: "Current number of active HTTP requests",
			},
		),
		appended: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "focus_records_appended_total",
				Help: "Total number of session records appended",
			},
		),
		rejected: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "focus_records_rejected_total",
				Help: "Total number of session record bodies rejected",
			},
		),
		storedRecords: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "focus_records_stored",
				Help: "Number of session records at the last fetch",
			},
		),
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// instrument records request counts and latencies. Paths are taken from the
// route, not the request, to keep label cardinality bounded.
func (m *metrics) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.activeRequests.Inc()
		defer m.activeRequests.Dec()

		writer := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(writer, r)

		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(writer.status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
