// Package metrics exposes Prometheus collectors for optimizer runs.
//
// A Recorder owns its own registry so that several recorders (one per test,
// one per CLI invocation) never collide on metric names.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/valvenet/release"
)

// Recorder holds the search collectors, all labelled by agent count.
type Recorder struct {
	registry *prometheus.Registry

	SearchesTotal     *prometheus.CounterVec
	NodesTotal        *prometheus.CounterVec
	PrunedTotal       *prometheus.CounterVec
	LeavesTotal       *prometheus.CounterVec
	ImprovementsTotal *prometheus.CounterVec
	BestTotal         *prometheus.GaugeVec
	SearchDuration    *prometheus.HistogramVec
}

// NewRecorder creates a Recorder backed by a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)
	labels := []string{"agents"}

	r.SearchesTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valvenet_searches_total",
			Help: "Total number of searches, by completion status",
		},
		[]string{"agents", "status"},
	)
	r.NodesTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valvenet_search_nodes_total",
			Help: "Search states expanded",
		},
		labels,
	)
	r.PrunedTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valvenet_search_pruned_total",
			Help: "Search states cut by the upper bound",
		},
		labels,
	)
	r.LeavesTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valvenet_search_leaves_total",
			Help: "Search states that exhausted the time budget",
		},
		labels,
	)
	r.ImprovementsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valvenet_search_improvements_total",
			Help: "Times the incumbent total was raised",
		},
		labels,
	)
	r.BestTotal = f.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "valvenet_best_release",
			Help: "Pressure released by the last search",
		},
		labels,
	)
	r.SearchDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "valvenet_search_duration_seconds",
			Help:    "Search wall time in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30},
		},
		labels,
	)

	return r
}

// Registry returns the underlying registry, e.g. for WriteToTextfile.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe records one finished (or interrupted) search.
func (r *Recorder) Observe(agents int, res release.Result, d time.Duration) {
	a := strconv.Itoa(agents)
	status := "complete"
	if !res.Complete {
		status = "interrupted"
	}

	r.SearchesTotal.WithLabelValues(a, status).Inc()
	r.NodesTotal.WithLabelValues(a).Add(float64(res.Stats.Nodes))
	r.PrunedTotal.WithLabelValues(a).Add(float64(res.Stats.Pruned))
	r.LeavesTotal.WithLabelValues(a).Add(float64(res.Stats.Leaves))
	r.ImprovementsTotal.WithLabelValues(a).Add(float64(res.Stats.Improvements))
	r.BestTotal.WithLabelValues(a).Set(float64(res.Total))
	r.SearchDuration.WithLabelValues(a).Observe(d.Seconds())
}

// WriteFile dumps every collector in the Prometheus text format.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
