// Package prometheus records fetch outcomes as Prometheus metrics. The CLI
// runs as a batch job, so metrics are exported to a node_exporter textfile
// instead of being scraped.
package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/seofetch"
	"github.com/prometheus/client_golang/prometheus"
)

// Ensure Recorder implements seofetch.OutcomeRecorder.
var _ seofetch.OutcomeRecorder = (*Recorder)(nil)

const namespace = "seofetch"

// Outcome label values.
const (
	outcomeSuccess = "success"
	outcomeBlocked = "blocked"
)

// Recorder counts fetch outcomes by kind and observes per-URL latency.
type Recorder struct {
	registry *prometheus.Registry

	outcomesTotal *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	return NewRecorderWithRegistry(prometheus.NewRegistry())
}

// NewRecorderWithRegistry creates a Recorder that registers its collectors
// on registry.
func NewRecorderWithRegistry(registry *prometheus.Registry) *Recorder {
	r := &Recorder{registry: registry}

	r.outcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outcomes_total",
			Help:      "Total number of fetch outcomes",
		},
		[]string{"outcome", "kind"},
	)

	r.fetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time spent producing a result for one URL, retries included",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	registry.MustRegister(r.outcomesTotal)
	registry.MustRegister(r.fetchDuration)

	return r
}

// RecordOutcome counts the result and observes its latency.
func (r *Recorder) RecordOutcome(_ context.Context, result *seofetch.Result, elapsed time.Duration) {
	outcome := outcomeSuccess
	kind := ""
	if result.Blocked {
		outcome = outcomeBlocked
		kind = string(result.Kind)
	}
	r.outcomesTotal.WithLabelValues(outcome, kind).Inc()
	r.fetchDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// Gatherer returns the registry backing the recorder.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is written atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
