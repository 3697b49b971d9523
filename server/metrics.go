package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
	outcomeError   = "error"
)

type metrics struct {
	// solves counts solve attempts by transport (http, ws) and outcome.
	solves *prometheus.CounterVec
	// duration tracks parse + sweep latency by transport.
	duration *prometheus.HistogramVec
	// cells tracks grid sizes that reached the sweep.
	cells prometheus.Histogram
}

func newMetrics(reg *prometheus.Registry) *metrics {
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &metrics{
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathcost_solve_total",
			Help: "Total solve requests by transport and outcome",
		}, []string{"transport", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathcost_solve_duration_seconds",
			Help:    "Solve duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"transport"}),
		cells: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathcost_grid_cells",
			Help:    "Number of cells in solved grids",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
}

func (m *metrics) observe(transport, outcome string, elapsed time.Duration, cells int) {
	m.solves.WithLabelValues(transport, outcome).Inc()
	m.duration.WithLabelValues(transport).Observe(elapsed.Seconds())
	if cells > 0 {
		m.cells.Observe(float64(cells))
	}
}
