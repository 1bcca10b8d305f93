// Package metrics exposes prometheus collectors for graph construction and
// path searches on a private registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search outcomes used as the "result" label.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Recorder owns a registry and the collectors registered on it.
type Recorder struct {
	reg *prometheus.Registry

	RecordsLoaded  prometheus.Counter
	GraphVertices  prometheus.Gauge
	EdgeInsertions prometheus.Gauge
	BuildDuration  prometheus.Histogram
	Searches       *prometheus.CounterVec
	SearchDuration prometheus.Histogram
	PathHops       prometheus.Histogram
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bacon_records_loaded_total",
			Help: "Total number of (actor, title) records loaded.",
		}),
		GraphVertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bacon_graph_vertices",
			Help: "Number of actor vertices in the current graph.",
		}),
		EdgeInsertions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bacon_graph_edge_insertions",
			Help: "Number of edge insertions made while building the current graph.",
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bacon_graph_build_duration_seconds",
			Help:    "Time spent indexing records and building the graph.",
			Buckets: prometheus.DefBuckets,
		}),
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bacon_searches_total",
			Help: "Total number of path searches, labelled by result.",
		}, []string{"result"}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bacon_search_duration_seconds",
			Help:    "Path search latency.",
			Buckets: prometheus.DefBuckets,
		}),
		PathHops: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bacon_path_hops",
			Help:    "Hop count of found paths.",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 8, 10},
		}),
	}
	r.reg.MustRegister(
		r.RecordsLoaded,
		r.GraphVertices,
		r.EdgeInsertions,
		r.BuildDuration,
		r.Searches,
		r.SearchDuration,
		r.PathHops,
	)

	return r
}

// Registry returns the registry backing r.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveBuild records a completed graph build.
func (r *Recorder) ObserveBuild(records, order, size int, d time.Duration) {
	r.RecordsLoaded.Add(float64(records))
	r.GraphVertices.Set(float64(order))
	r.EdgeInsertions.Set(float64(size))
	r.BuildDuration.Observe(d.Seconds())
}

// ObserveSearch records one search. hops is ignored unless outcome is OutcomeFound.
func (r *Recorder) ObserveSearch(outcome string, hops int, d time.Duration) {
	r.Searches.WithLabelValues(outcome).Inc()
	r.SearchDuration.Observe(d.Seconds())
	if outcome == OutcomeFound {
		r.PathHops.Observe(float64(hops))
	}
}

// WriteTextfile dumps the registry in text exposition format to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
