package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	pageRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flipword_page_renders_total",
			Help: "Public page requests by page cache outcome",
		},
		[]string{"cache_hit"},
	)

	adminLoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flipword_admin_logins_total",
			Help: "Admin login attempts by result",
		},
		[]string{"result"},
	)

	rateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flipword_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"action"},
	)
)

// MetricsMiddleware records Prometheus metrics for every request.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpRequestsInFlight.Inc()

		// Route pattern, so /api/topics/:slug is one series.
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}

		c.Next()

		httpRequestsInFlight.Dec()
		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func RecordPageRender(cacheHit bool) {
	pageRendersTotal.WithLabelValues(strconv.FormatBool(cacheHit)).Inc()
}

func RecordAdminLogin(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	adminLoginsTotal.WithLabelValues(result).Inc()
}
