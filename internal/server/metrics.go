package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"form-palette/internal/ui"
)

var (
	// MetricRequests counts served requests by route and status code
	MetricRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "palette_requests_total",
		Help: "Total palette requests by route and status",
	}, []string{"route", "status"})

	// MetricLookups counts single-color lookups by palette name
	MetricLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "palette_lookups_total",
		Help: "Total single-color lookups by name",
	}, []string{"name"})

	// MetricRateLimited counts rejected requests
	MetricRateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "palette_rate_limited_total",
		Help: "Total requests rejected by the rate limiter",
	})

	// MetricDuration tracks request duration
	MetricDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "palette_request_duration_seconds",
		Help:    "Palette request duration in seconds",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})
)

// MetricsServer wraps the HTTP server for prometheus metrics
type MetricsServer struct {
	server *http.Server
}

// NewMetricsServer creates a new metrics server
func NewMetricsServer(addr string) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start begins serving metrics (non-blocking)
func (m *MetricsServer) Start() {
	go func() {
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			ui.LogStatus("error", "Metrics server error: "+err.Error())
		}
	}()
}

// Shutdown gracefully stops the metrics server
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.server.Shutdown(shutdownCtx)
}
