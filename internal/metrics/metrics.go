// Package metrics provides Prometheus metrics for batch runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lecture_topics"

// Metrics holds the batch counters on a private registry so repeated
// constructions never collide.
type Metrics struct {
	registry *prometheus.Registry

	TranscriptsTotal  prometheus.Counter
	FailuresTotal     prometheus.Counter
	TopicsTotal       *prometheus.CounterVec
	ReportsWritten    prometheus.Counter
	BatchDuration     prometheus.Histogram
	LastBatchUnixTime prometheus.Gauge
}

// New creates and registers all metrics
func New() *Metrics {
	m := &Metrics{
		TranscriptsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcripts_total",
			Help:      "Total number of transcript files processed",
		}),
		FailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcript_failures_total",
			Help:      "Total number of transcript files that could not be read or parsed",
		}),
		TopicsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "topics_total",
			Help:      "Transcripts labelled per winning category",
		}, []string{"category"}),
		ReportsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_written_total",
			Help:      "Total number of reports written",
		}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Duration of a batch run in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		}),
		LastBatchUnixTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_batch_timestamp_seconds",
			Help:      "Unix time of the last completed batch",
		}),
	}

	m.registry = prometheus.NewRegistry()
	m.registry.MustRegister(
		m.TranscriptsTotal,
		m.FailuresTotal,
		m.TopicsTotal,
		m.ReportsWritten,
		m.BatchDuration,
		m.LastBatchUnixTime,
	)
	return m
}

// RecordTranscript counts one processed file. An empty category means the file failed.
func (m *Metrics) RecordTranscript(category string, failed bool) {
	m.TranscriptsTotal.Inc()
	if failed {
		m.FailuresTotal.Inc()
		return
	}
	if category == "" {
		category = "none"
	}
	m.TopicsTotal.WithLabelValues(category).Inc()
}

// RecordBatch observes a completed batch
func (m *Metrics) RecordBatch(started time.Time) {
	m.ReportsWritten.Inc()
	m.BatchDuration.Observe(time.Since(started).Seconds())
	m.LastBatchUnixTime.SetToCurrentTime()
}

// WriteTextfile writes all metrics in the node_exporter textfile format
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
