// Package metrics defines Prometheus instrumentation for the scan pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannerObjectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rewardscan",
		Subsystem: "scanner",
		Name:      "objects_total",
		Help:      "Count of reward objects processed.",
	}, []string{"mode", "status"})

	scannerObjectDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rewardscan",
		Subsystem: "scanner",
		Name:      "object_duration_seconds",
		Help:      "Duration of fetching and decoding a single object.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"mode", "status"})

	scannerFramesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rewardscan",
		Subsystem: "scanner",
		Name:      "frames_total",
		Help:      "Count of frames split out of reward objects.",
	}, []string{"mode"})

	scannerDecodeErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rewardscan",
		Subsystem: "scanner",
		Name:      "frame_decode_errors_total",
		Help:      "Count of frames skipped due to wire-format decode errors.",
	}, []string{"mode"})

	scannerMatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rewardscan",
		Subsystem: "scanner",
		Name:      "events_matched_total",
		Help:      "Count of reward events matched and handed to aggregation.",
	}, []string{"mode"})
)

// Scanner observes one scan pipeline. Mode distinguishes the single-device
// scraper from the fleet-wide top-earners scan.
type Scanner struct {
	mode string
}

// NewScanner returns a Scanner observer for the given mode.
func NewScanner(mode string) *Scanner {
	if mode == "" {
		mode = "unknown"
	}
	return &Scanner{mode: mode}
}

func (m Scanner) ObserveObject(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scannerObjectsTotal.WithLabelValues(m.mode, status).Inc()
	scannerObjectDuration.WithLabelValues(m.mode, status).Observe(time.Since(started).Seconds())
}

func (m Scanner) AddFrames(n int) {
	scannerFramesTotal.WithLabelValues(m.mode).Add(float64(n))
}

func (m Scanner) AddDecodeErrors(n int) {
	scannerDecodeErrorsTotal.WithLabelValues(m.mode).Add(float64(n))
}

func (m Scanner) AddMatches(n int) {
	scannerMatchesTotal.WithLabelValues(m.mode).Add(float64(n))
}
