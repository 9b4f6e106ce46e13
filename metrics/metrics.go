// Package metrics exports generation runs as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/katalvlaran/pairwise/candidate"
	"github.com/katalvlaran/pairwise/generate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "pairwise"

// Recorder is a generate.Observer backed by Prometheus collectors. It is
// safe for concurrent runs.
type Recorder struct {
	runs      *prometheus.CounterVec
	rounds    *prometheus.CounterVec
	accepted  *prometheus.CounterVec
	restarts  *prometheus.CounterVec
	suiteSize *prometheus.HistogramVec
	ratio     *prometheus.HistogramVec
	duration  *prometheus.HistogramVec
}

var _ generate.Observer = (*Recorder)(nil)

// New registers the collectors on reg. A nil reg yields unregistered
// collectors.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	strategy := []string{"strategy"}
	return &Recorder{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Generation runs by strategy and stop reason",
		}, []string{"strategy", "stop_reason"}),
		rounds: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "rounds_total",
			Help:      "Candidate rounds executed",
		}, strategy),
		accepted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "accepted_cases_total",
			Help:      "Rounds that accepted a test case",
		}, strategy),
		restarts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "restarts_total",
			Help:      "Stagnation restarts",
		}, strategy),
		suiteSize: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "suite_size",
			Help:      "Test cases per finished run",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, strategy),
		ratio: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "coverage_ratio",
			Help:      "Final coverage ratio per run",
			Buckets:   []float64{0.5, 0.8, 0.9, 0.95, 0.99, 1},
		}, strategy),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time per run",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
		}, strategy),
	}
}

// RoundCompleted implements generate.Observer.
func (r *Recorder) RoundCompleted(s candidate.Strategy, gain int) {
	r.rounds.WithLabelValues(s.String()).Inc()
	if gain > 0 {
		r.accepted.WithLabelValues(s.String()).Inc()
	}
}

// Restarted implements generate.Observer.
func (r *Recorder) Restarted(s candidate.Strategy, _ float64) {
	r.restarts.WithLabelValues(s.String()).Inc()
}

// Finished implements generate.Observer.
func (r *Recorder) Finished(res generate.Result, elapsed time.Duration) {
	s := res.Diagnostics.Strategy.String()
	r.runs.WithLabelValues(s, string(res.Diagnostics.StopReason)).Inc()
	r.suiteSize.WithLabelValues(s).Observe(float64(len(res.Cases)))
	r.ratio.WithLabelValues(s).Observe(res.Coverage.Ratio)
	r.duration.WithLabelValues(s).Observe(elapsed.Seconds())
}
