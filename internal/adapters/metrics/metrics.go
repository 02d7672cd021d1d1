// Package metrics records cache activity in a Prometheus registry.
package metrics

import (
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/warm/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Metrics = (*Metrics)(nil)

const namespace = "warm"

// Metrics implements ports.Metrics.
type Metrics struct {
	registry      *prometheus.Registry
	hits          *prometheus.CounterVec
	misses        *prometheus.CounterVec
	regenerations *prometheus.CounterVec
	failures      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// New creates a new Metrics backed by its own registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Cache accesses served without regeneration.",
		}, []string{"key"}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Cache accesses that found the artifact missing or stale.",
		}, []string{"key"}),
		regenerations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "regenerations_total",
			Help:      "Artifacts regenerated and written successfully.",
		}, []string{"key"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_failures_total",
			Help:      "Regenerations that failed in the generator or while writing.",
		}, []string{"key"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Time spent generating and writing an artifact.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"key"}),
	}

	m.registry.MustRegister(m.hits, m.misses, m.regenerations, m.failures, m.duration)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hit records that key was served without regeneration.
func (m *Metrics) Hit(key domain.CacheKey) {
	m.hits.WithLabelValues(key.String()).Inc()
}

// Miss records that key had to be regenerated.
func (m *Metrics) Miss(key domain.CacheKey) {
	m.misses.WithLabelValues(key.String()).Inc()
}

// Regenerated records a successful regeneration and its duration.
func (m *Metrics) Regenerated(key domain.CacheKey, took time.Duration) {
	m.regenerations.WithLabelValues(key.String()).Inc()
	m.duration.WithLabelValues(key.String()).Observe(took.Seconds())
}

// GenerationFailed records a failed regeneration.
func (m *Metrics) GenerationFailed(key domain.CacheKey) {
	m.failures.WithLabelValues(key.String()).Inc()
}

// WriteTextfile writes the registry to path in the text exposition format,
// suitable for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(filepath.Clean(path), m.registry); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsWriteFailed.Error()), "path", path)
	}
	return nil
}
