package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rewardscan",
		Subsystem: "repository",
		Name:      "queries_total",
		Help:      "Count of ClickHouse repository operations.",
	}, []string{"operation", "status"})

	repositoryQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rewardscan",
		Subsystem: "repository",
		Name:      "query_duration_seconds",
		Help:      "Duration of ClickHouse repository operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// Repository observes ClickHouse reads and writes.
type Repository struct{}

// NewRepository returns a Repository observer.
func NewRepository() *Repository {
	return &Repository{}
}

func (Repository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	repositoryQueriesTotal.WithLabelValues(operation, status).Inc()
	repositoryQueryDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
