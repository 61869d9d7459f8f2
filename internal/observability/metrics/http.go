package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/homelife/backoffice/internal/config"
)

// HTTPMetrics captures low-cardinality HTTP server metrics.
type HTTPMetrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	inFlight        prometheus.Gauge
}

// NewHTTPMetrics creates the metrics registry and HTTP instruments.
func NewHTTPMetrics(cfg config.Config) *HTTPMetrics {
	constLabels := prometheus.Labels{
		"service": "backoffice",
		"env":     strings.TrimSpace(cfg.Environment),
	}

	registry := prometheus.NewRegistry()
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_server_duration_seconds",
			Help:        "HTTP request duration by endpoint and status.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		},
		[]string{"endpoint", "status_code"},
	)
	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "http_server_requests_total",
			Help:        "HTTP requests served by endpoint and status.",
			ConstLabels: constLabels,
		},
		[]string{"endpoint", "status_code"},
	)
	inFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name:        "http_server_in_flight",
			Help:        "HTTP requests currently being served.",
			ConstLabels: constLabels,
		},
	)
	registry.MustRegister(requestDuration, requestsTotal, inFlight)

	return &HTTPMetrics{
		registry:        registry,
		requestDuration: requestDuration,
		requestsTotal:   requestsTotal,
		inFlight:        inFlight,
	}
}

// GinMiddleware records request duration and in-flight metrics.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		m.inFlight.Inc()
		start := time.Now()
		c.Next()
		m.inFlight.Dec()

		endpoint := normalizeEndpoint(c.FullPath())
		status := strconv.Itoa(c.Writer.Status())
		m.requestsTotal.WithLabelValues(endpoint, status).Inc()
		m.requestDuration.WithLabelValues(endpoint, status).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *HTTPMetrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "unknown"
	}
	return endpoint
}
