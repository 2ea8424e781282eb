package jps

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeFound     = "found"
	outcomeNotFound  = "not_found"
	outcomeInvalid   = "invalid_input"
	outcomeStepLimit = "step_limit"
	outcomeCanceled  = "canceled"
)

// Metrics holds the Prometheus collectors a search reports into. A nil
// *Metrics records nothing.
type Metrics struct {
	searches     *prometheus.CounterVec
	duration     prometheus.Histogram
	steps        prometheus.Histogram
	nodesCreated prometheus.Histogram
	pathLength   prometheus.Histogram
}

// NewMetrics registers the search collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jps_searches_total",
			Help: "Total searches by outcome",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "jps_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us to ~2.6s
		}),
		steps: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "jps_search_steps",
			Help:    "Nodes expanded per completed search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		nodesCreated: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "jps_search_nodes_created",
			Help:    "Open plus closed nodes at the end of a completed search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		pathLength: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "jps_path_jump_points",
			Help:    "Jump points per found path",
			Buckets: []float64{1, 2, 3, 5, 10, 20, 50, 100, 200},
		}),
	}
}

func (m *Metrics) observe(result Result) {
	if m == nil {
		return
	}
	outcome := outcomeNotFound
	if result.Found {
		outcome = outcomeFound
		m.pathLength.Observe(float64(result.PathLength))
	}
	m.searches.WithLabelValues(outcome).Inc()
	m.duration.Observe(result.Elapsed.Seconds())
	m.steps.Observe(float64(result.Steps))
	m.nodesCreated.Observe(float64(result.NodesCreated))
}

func (m *Metrics) observeError(outcome string) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(outcome).Inc()
}
