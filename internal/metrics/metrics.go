// Package metrics exposes the Prometheus counters and histogram tracking
// pipeline throughput, mirroring the teacher's internal/metrics package
// shape (package-level promauto collectors, registered at import time).
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RecordsIn counts records fed into the pipeline.
	RecordsIn = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tabverb_records_in_total",
			Help: "Total number of records fed into the pipeline",
		},
		[]string{"pipeline"},
	)

	// RecordsOut counts records that reached the end of the pipeline.
	RecordsOut = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tabverb_records_out_total",
			Help: "Total number of records emitted at the end of the pipeline",
		},
		[]string{"pipeline"},
	)

	// RecordsDropped counts records a verb dropped mid-pipeline.
	RecordsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tabverb_records_dropped_total",
			Help: "Total number of records dropped by a verb",
		},
		[]string{"pipeline", "verb"},
	)

	// VerbDuration times how long each verb spends per record.
	VerbDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tabverb_verb_duration_seconds",
			Help:    "Time spent in a single verb's Process call",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"pipeline", "verb"},
	)

	// ErrorsTotal counts fatal verb/DSL errors surfaced to the driver.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tabverb_errors_total",
			Help: "Total number of fatal errors raised while running the pipeline",
		},
		[]string{"component", "code"},
	)
)

// Handler returns the promhttp handler serving /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
