package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "simtrace",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Count of API requests.",
	}, []string{"route", "method", "code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "simtrace",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)

// HTTP tracks API request outcomes by route template.
type HTTP struct{}

func NewHTTP() *HTTP {
	return &HTTP{}
}

func (m HTTP) ObserveRequest(route, method string, code int, started time.Time) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	httpRequestDuration.WithLabelValues(route, method).Observe(time.Since(started).Seconds())
}
