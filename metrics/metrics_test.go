package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.WithLabelValues(labels...).Write(m))
	return m.GetCounter().GetValue()
}

func TestPrometheusCollector_ObserveMountIncrementsByKind(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewPrometheusCollector(reg)

	c.ObserveMount("host")
	c.ObserveMount("host")
	c.ObserveMount("text")

	assert.Equal(t, float64(2), counterValue(t, c.mounts, "host"))
	assert.Equal(t, float64(1), counterValue(t, c.mounts, "text"))
}

func TestPrometheusCollector_ObserveDispatchCountsByEventName(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewPrometheusCollector(reg)

	c.ObserveDispatch("click")
	c.ObserveDispatch("click")

	assert.Equal(t, float64(2), counterValue(t, c.dispatch, "click"))
}

func TestNewPrometheusCollector_PanicsOnDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusCollector(reg)
	assert.Panics(t, func() { NewPrometheusCollector(reg) })
}

func TestNoop_SatisfiesHookWithoutPanicking(t *testing.T) {
	var n Noop
	assert.NotPanics(t, func() {
		n.ObserveMount("host")
		n.ObserveUpdate("host")
		n.ObserveUnmount("host")
	})
}
