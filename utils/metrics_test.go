package utils

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCountTransitions(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.ObserveTransition("selectCategory", true)
	m.ObserveTransition("selectCategory", true)
	m.ObserveTransition("advance", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transitions.WithLabelValues("selectCategory", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("advance", "rejected")))
}

func TestMetricsSceneGauge(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.SceneOpened()
	m.SceneOpened()
	m.SceneClosed()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sceneSessions))
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveTransition("advance", true)
	m.ObserveSubmission("log", "delivered")
	m.ObserveContentCache("categories", false)
	m.SceneOpened()
	m.SceneClosed()
}
