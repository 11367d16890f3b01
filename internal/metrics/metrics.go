package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors recorded during generation runs.
// It is passed explicitly to the generator; a nil *Metrics records nothing.
type Metrics struct {
	transactionsGenerated *prometheus.CounterVec
	amountsRescaled       prometheus.Counter
	amountsFloored        prometheus.Counter
	dayRevenue            prometheus.Histogram
	dayTargetDeviation    prometheus.Histogram
	generationDuration    prometheus.Histogram
	generationRuns        *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance and registers all collectors.
// If registry is nil, prometheus.DefaultRegisterer is used.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		transactionsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "datagen_transactions_generated_total",
				Help: "Total number of synthetic transactions generated by channel",
			},
			[]string{"channel"},
		),
		amountsRescaled: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "datagen_amounts_rescaled_total",
				Help: "Total number of raw amounts pulled back toward the remaining daily target",
			},
		),
		amountsFloored: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "datagen_amounts_floored_total",
				Help: "Total number of amounts raised to the minimum transaction amount",
			},
		),
		dayRevenue: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "datagen_day_revenue_dollars",
				Help:    "Summed revenue of each generated day",
				Buckets: []float64{1000, 2500, 5000, 6000, 6500, 6800, 7000, 7500, 8000, 10000},
			},
		),
		dayTargetDeviation: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "datagen_day_target_deviation_ratio",
				Help:    "Relative deviation of a day's revenue from its target ((actual-target)/target)",
				Buckets: []float64{-0.4, -0.2, -0.1, -0.05, -0.01, 0.01, 0.05, 0.1, 0.2, 0.4},
			},
		),
		generationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "datagen_generation_duration_seconds",
				Help:    "Duration of a full dataset generation in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		generationRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "datagen_generation_runs_total",
				Help: "Total number of dataset generation runs by status",
			},
			[]string{"status"},
		),
	}
}

// RecordTransaction records one generated transaction for the channel.
func (m *Metrics) RecordTransaction(channel string) {
	if m == nil {
		return
	}
	m.transactionsGenerated.WithLabelValues(channel).Inc()
}

// RecordRescale records a raw amount replaced by the target-tracking amount.
func (m *Metrics) RecordRescale() {
	if m == nil {
		return
	}
	m.amountsRescaled.Inc()
}

// RecordFloor records an amount raised to the floor.
func (m *Metrics) RecordFloor() {
	if m == nil {
		return
	}
	m.amountsFloored.Inc()
}

// RecordDay records the revenue of a finished day against its target.
func (m *Metrics) RecordDay(revenue, target float64) {
	if m == nil {
		return
	}
	m.dayRevenue.Observe(revenue)
	if target != 0 {
		m.dayTargetDeviation.Observe((revenue - target) / target)
	}
}

// RecordGeneration records a completed generation run.
func (m *Metrics) RecordGeneration(status string, seconds float64) {
	if m == nil {
		return
	}
	m.generationRuns.WithLabelValues(status).Inc()
	m.generationDuration.Observe(seconds)
}

// WriteTextfile writes everything gathered from g to path in the Prometheus
// text exposition format, suitable for the node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
