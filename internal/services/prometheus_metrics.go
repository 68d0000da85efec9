package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics
const (
	MetricTransactionOperation = "transaction_operation"
	MetricCategoryTotalsRows   = "category_totals_rows"
)

type PrometheusMetrics struct {
	operationsTotal    *prometheus.CounterVec
	operationDuration  *prometheus.HistogramVec
	categoryTotalsRows prometheus.Gauge
}

// NewPrometheusMetrics registers the transaction metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_operations_total",
				Help: "Total number of transaction service operations",
			},
			[]string{"operation", "status"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transaction_operation_duration_milliseconds",
				Help:    "Transaction service operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		categoryTotalsRows: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "transaction_category_totals_rows",
				Help: "Number of categories returned by the last category aggregation",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricTransactionOperation:
		operation := tags["operation"]
		status := tags["status"]
		if operation != "" && status != "" {
			m.operationsTotal.WithLabelValues(operation, status).Inc()
		}
	}
}

// RecordProcessingTime observes duration for the operation called name
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	m.operationDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCategoryTotalsRows:
		m.categoryTotalsRows.Set(value)
	}
}
