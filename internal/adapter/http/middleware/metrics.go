package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"todolist/internal/core/ports"
)

const unmatchedRoute = "unmatched"

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Name: "todolist_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: promauto.With(registerer).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "todolist_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

// RegisterStoreGauges exposes the store record counts, read at scrape time.
func RegisterStoreGauges(registerer prometheus.Registerer, stats ports.StatsReporter) {
	factory := promauto.With(registerer)
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "todolist_categories",
		Help: "Number of categories in the store",
	}, func() float64 { return float64(stats.Stats().Categories) })
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "todolist_todos",
		Help: "Number of todos in the store",
	}, func() float64 { return float64(stats.Stats().Todos) })
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "todolist_todos_completed",
		Help: "Number of completed todos in the store",
	}, func() float64 { return float64(stats.Stats().CompletedTodos) })
}

// MetricsMiddleware labels requests by route template, or "unmatched" when no route matched.
func MetricsMiddleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
	}
}
