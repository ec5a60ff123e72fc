package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks solve activity for the /metrics endpoint.
type Metrics struct {
	registry      *prometheus.Registry
	solveTotal    *prometheus.CounterVec
	solveDuration *prometheus.HistogramVec
	solveIters    prometheus.Histogram
	solveOptimum  prometheus.Gauge
}

// NewMetrics registers the solve metrics on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		solveTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tsp_solve_total",
			Help: "Number of solve requests by method and outcome.",
		}, []string{"method", "outcome"}),
		solveDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tsp_solve_duration_seconds",
			Help:    "Wall-clock duration of solve requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		solveIters: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tsp_solve_iterations",
			Help:    "Iterations used by the lazy subtour-elimination loop.",
			Buckets: []float64{1, 2, 3, 4, 5, 7, 10, 15, 25, 50},
		}),
		solveOptimum: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tsp_solve_last_optimum",
			Help: "Objective value of the most recent successful solve.",
		}),
	}
}

// Registry exposes the underlying registry for the metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) observeSolve(method, outcome string, seconds float64) {
	m.solveTotal.WithLabelValues(method, outcome).Inc()
	m.solveDuration.WithLabelValues(method).Observe(seconds)
}
