package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Venue label values.
const (
	VenueHome    = "home"
	VenueNeutral = "neutral"
)

// millisecondsPerSecond converts durations for the latency histogram.
const millisecondsPerSecond = 1e3

// Manager owns the prediction metrics registered on one registry.
type Manager struct {
	namespace      string
	subsystem      string
	latencyBuckets []float64
	enabled        bool
	customLabels   map[string]string
	registry       prometheus.Registerer

	predictions        *prometheus.CounterVec
	rejected           *prometheus.CounterVec
	predictionLatency  prometheus.Histogram
	compositeScore     prometheus.Histogram
	homeWinProbability prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:      "cbb",
		subsystem:      "predictor",
		latencyBuckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		enabled:        true,
		customLabels:   make(map[string]string),
		registry:       prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.predictions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "predictions_total",
		Help:        "Total number of matchup predictions served",
		ConstLabels: labels,
	}, []string{"venue"})

	m.rejected = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "rejected_inputs_total",
		Help:        "Total number of predictions rejected at input validation, by field",
		ConstLabels: labels,
	}, []string{"field"})

	m.predictionLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "prediction_latency_milliseconds",
		Help:        "Histogram of prediction latency in milliseconds",
		Buckets:     m.latencyBuckets,
		ConstLabels: labels,
	})

	m.compositeScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "composite_score",
		Help:        "Distribution of pre-logistic composite scores",
		Buckets:     prometheus.LinearBuckets(-2, 0.25, 17),
		ConstLabels: labels,
	})

	m.homeWinProbability = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "home_win_probability",
		Help:        "Distribution of predicted home-win probabilities",
		Buckets:     prometheus.LinearBuckets(0.1, 0.1, 9),
		ConstLabels: labels,
	})
}

// RecordPrediction records one served prediction.
func (m *Manager) RecordPrediction(venue string, score, homeWinProb float64, latency time.Duration) {
	if !m.enabled {
		return
	}
	m.predictions.WithLabelValues(venue).Inc()
	m.compositeScore.Observe(score)
	m.homeWinProbability.Observe(homeWinProb)
	m.predictionLatency.Observe(float64(latency) / float64(time.Second) * millisecondsPerSecond)
}

// RecordRejected records a prediction refused because field was out of contract.
func (m *Manager) RecordRejected(field string) {
	if !m.enabled {
		return
	}
	m.rejected.WithLabelValues(field).Inc()
}

// Default returns the process-wide manager.
func Default() *Manager {
	return globalManager
}

// RecordPrediction records a prediction on the global manager.
func RecordPrediction(venue string, score, homeWinProb float64, latency time.Duration) {
	globalManager.RecordPrediction(venue, score, homeWinProb, latency)
}

// RecordRejected records a rejected prediction on the global manager.
func RecordRejected(field string) {
	globalManager.RecordRejected(field)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
