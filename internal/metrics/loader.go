package metrics

import (
	"slices"
	"time"

	"github.com/goodnatureofminers/simtrace-backend/internal/trace/event"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loaderRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "simtrace",
		Subsystem: "loader",
		Name:      "records_total",
		Help:      "Count of applied trace records.",
	}, []string{"source", "kind", "status"})

	loaderDroppedMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "simtrace",
		Subsystem: "loader",
		Name:      "dropped_messages_total",
		Help:      "Count of flow-message records on links that do not exist.",
	}, []string{"source"})

	loaderLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "simtrace",
		Subsystem: "loader",
		Name:      "loads_total",
		Help:      "Count of trace loads.",
	}, []string{"source", "status"})

	loaderLoadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "simtrace",
		Subsystem: "loader",
		Name:      "load_duration_seconds",
		Help:      "Duration of a full trace load.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "status"})

	loaderLoadRecords = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "simtrace",
		Subsystem: "loader",
		Name:      "load_records",
		Help:      "Number of dynamic records per load.",
		Buckets:   prometheus.ExponentialBuckets(16, 4, 10),
	}, []string{"source"})
)

// Loader tracks trace ingestion.
type Loader struct {
	source string
}

// NewLoader labels every series with source, "unknown" when empty.
func NewLoader(source string) *Loader {
	if source == "" {
		source = "unknown"
	}
	return &Loader{source: source}
}

func (m Loader) ObserveRecord(kind event.Kind, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if !slices.Contains(event.Kinds(), kind) {
		kind = "unknown"
	}
	loaderRecordsTotal.WithLabelValues(m.source, string(kind), status).Inc()
}

func (m Loader) ObserveDroppedMessage() {
	loaderDroppedMessagesTotal.WithLabelValues(m.source).Inc()
}

func (m Loader) ObserveLoad(success bool, records int, started time.Time) {
	status := "success"
	if !success {
		status = "error"
	}
	loaderLoadsTotal.WithLabelValues(m.source, status).Inc()
	loaderLoadDuration.WithLabelValues(m.source, status).Observe(time.Since(started).Seconds())
	loaderLoadRecords.WithLabelValues(m.source).Observe(float64(records))
}
