package utils

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes counters for the booking wizard, content cache and scene channel.
type Metrics struct {
	transitions   *prometheus.CounterVec
	submissions   *prometheus.CounterVec
	contentCache  *prometheus.CounterVec
	sceneSessions prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crownbeauty",
			Subsystem: "booking",
			Name:      "transitions_total",
			Help:      "Wizard events by type and whether they were applied",
		}, []string{"event", "outcome"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crownbeauty",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Finalized booking requests handed to a sink",
		}, []string{"sink", "status"}),
		contentCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crownbeauty",
			Subsystem: "content",
			Name:      "cache_total",
			Help:      "Content reads by query and cache result",
		}, []string{"query", "result"}),
		sceneSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "crownbeauty",
			Subsystem: "scene",
			Name:      "sessions_active",
			Help:      "Open hand-scene channels",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.transitions, m.submissions, m.contentCache, m.sceneSessions)
	return m
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// GetMetrics returns the process-wide collectors registered on the default registry.
func GetMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		defaultMetrics = NewMetrics(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

func (m *Metrics) ObserveTransition(event string, applied bool) {
	if m == nil {
		return
	}
	outcome := "rejected"
	if applied {
		outcome = "applied"
	}
	m.transitions.WithLabelValues(event, outcome).Inc()
}

func (m *Metrics) ObserveSubmission(sink, status string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(sink, status).Inc()
}

func (m *Metrics) ObserveContentCache(query string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.contentCache.WithLabelValues(query, result).Inc()
}

func (m *Metrics) SceneOpened() {
	if m == nil {
		return
	}
	m.sceneSessions.Inc()
}

func (m *Metrics) SceneClosed() {
	if m == nil {
		return
	}
	m.sceneSessions.Dec()
}
