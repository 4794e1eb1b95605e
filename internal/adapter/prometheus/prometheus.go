package prometheus

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusAdapter struct {
	requests           *prometheus.CounterVec
	duration           *prometheus.HistogramVec
	schedulingFailures *prometheus.CounterVec
}

func NewPrometheusAdapter(reg prometheus.Registerer) *PrometheusAdapter {
	a := &PrometheusAdapter{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "motorcare",
			Name:      "http_requests_total",
			Help:      "Number of handled HTTP requests.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "motorcare",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		schedulingFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "motorcare",
			Name:      "scheduling_failures_total",
			Help:      "Km reminder reschedules that failed after a service posting.",
		}, []string{"usage_type"}),
	}
	reg.MustRegister(a.requests, a.duration, a.schedulingFailures)
	return a
}

func (a *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	method := c.Request.Method
	a.requests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
	a.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

func (a *PrometheusAdapter) RecordSchedulingFailure(usageType string) {
	a.schedulingFailures.WithLabelValues(usageType).Inc()
}
