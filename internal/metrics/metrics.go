// Package metrics exposes pipeline counters in the Prometheus format
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cryptoetl"

const (
	StatusSuccess = "success"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
	StatusBusy    = "busy"
)

// Metrics holds every collector on a private registry
type Metrics struct {
	RunsTotal        *prometheus.CounterVec
	RunDuration      prometheus.Histogram
	AssetsExtracted  prometheus.Counter
	RowsStaged       prometheus.Counter
	DimensionRows    prometheus.Counter
	FactRowsInserted prometheus.Counter
	SummaryRows      prometheus.Gauge
	LastSuccess      prometheus.Gauge

	registry *prometheus.Registry
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	m.RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_runs_total",
			Help:      "Pipeline runs by final status",
		},
		[]string{"status"},
	)
	m.RunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_run_duration_seconds",
			Help:      "Wall time of a pipeline run",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		},
	)
	m.AssetsExtracted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assets_extracted_total",
			Help:      "Asset records returned by the upstream API",
		},
	)
	m.RowsStaged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "staging_rows_upserted_total",
			Help:      "Rows upserted into crypto_raw",
		},
	)
	m.DimensionRows = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dimension_rows_upserted_total",
			Help:      "Rows upserted into cryptocurrencies",
		},
	)
	m.FactRowsInserted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fact_rows_inserted_total",
			Help:      "New rows appended to crypto_market_data",
		},
	)
	m.SummaryRows = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "summary_rows",
			Help:      "Rows in crypto_powerbi_summary after the last rebuild",
		},
	)
	m.LastSuccess = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run",
		},
	)

	m.registry.MustRegister(
		m.RunsTotal,
		m.RunDuration,
		m.AssetsExtracted,
		m.RowsStaged,
		m.DimensionRows,
		m.FactRowsInserted,
		m.SummaryRows,
		m.LastSuccess,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveRun records the outcome of one run. finishedAt only matters on
// success.
func (m *Metrics) ObserveRun(status string, duration time.Duration, finishedAt time.Time) {
	m.RunsTotal.WithLabelValues(status).Inc()
	m.RunDuration.Observe(duration.Seconds())
	if status == StatusSuccess || status == StatusSkipped {
		m.LastSuccess.Set(float64(finishedAt.Unix()))
	}
}

func (m *Metrics) ObserveExtract(assets int) {
	m.AssetsExtracted.Add(float64(assets))
}

func (m *Metrics) ObserveStaging(rows int) {
	m.RowsStaged.Add(float64(rows))
}

func (m *Metrics) ObserveWarehouse(dimensions int, factsInserted int64, summaryRows int64) {
	m.DimensionRows.Add(float64(dimensions))
	m.FactRowsInserted.Add(float64(factsInserted))
	m.SummaryRows.Set(float64(summaryRows))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
