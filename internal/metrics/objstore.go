package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	objstoreCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rewardscan",
		Subsystem: "objstore",
		Name:      "calls_total",
		Help:      "Count of object store API calls.",
	}, []string{"operation", "status"})

	objstoreCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rewardscan",
		Subsystem: "objstore",
		Name:      "call_duration_seconds",
		Help:      "Duration of object store API calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// ObjectStore observes S3 list/fetch calls.
type ObjectStore struct{}

// NewObjectStore returns an ObjectStore observer.
func NewObjectStore() *ObjectStore {
	return &ObjectStore{}
}

func (ObjectStore) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	objstoreCallsTotal.WithLabelValues(operation, status).Inc()
	objstoreCallDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
