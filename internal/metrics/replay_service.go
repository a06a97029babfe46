package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	replayReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "simtrace",
		Subsystem: "replay_service",
		Name:      "reloads_total",
		Help:      "Count of trace file loads.",
	}, []string{"status"})

	replayReloadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "simtrace",
		Subsystem: "replay_service",
		Name:      "reload_duration_seconds",
		Help:      "Duration of reading, ingesting and publishing a trace.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	replayCurrentTimestamps = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "simtrace",
		Subsystem: "replay_service",
		Name:      "current_timestamps",
		Help:      "Distinct timestamps of the published trace.",
	})

	replayCurrentDiagnostics = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "simtrace",
		Subsystem: "replay_service",
		Name:      "current_diagnostics",
		Help:      "Diagnostics of the published trace.",
	})
)

// ReplayService tracks trace reloads and the published trace.
type ReplayService struct{}

func NewReplayService() *ReplayService {
	return &ReplayService{}
}

func (m ReplayService) ObserveReload(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	replayReloadsTotal.WithLabelValues(status).Inc()
	replayReloadDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

func (m ReplayService) SetCurrent(timestamps, diagnostics int) {
	replayCurrentTimestamps.Set(float64(timestamps))
	replayCurrentDiagnostics.Set(float64(diagnostics))
}
