package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the calculator's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the calculator metrics.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.OperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calc_operations_total",
			Help: "Total number of evaluated operations",
		},
		[]string{"operation", "outcome"},
	)

	m.OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "calc_operation_duration_seconds",
			Help:    "Time spent evaluating an operation in seconds",
			Buckets: []float64{1e-7, 1e-6, 1e-5, 1e-4, 1e-3},
		},
		[]string{"operation"},
	)

	m.registry.MustRegister(m.OperationsTotal, m.OperationDuration)
	return m
}

// RecordOperation counts one evaluation and observes its duration.
func (m *Metrics) RecordOperation(operation, outcome string, elapsed time.Duration) {
	m.OperationsTotal.WithLabelValues(operation, outcome).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// WriteTextfile writes the metrics in the text exposition format to path,
// for pickup by the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
