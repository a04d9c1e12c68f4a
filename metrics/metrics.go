// Package metrics implements the reconciler.MetricsHook contract: a
// Prometheus-backed collector for mount/update/unmount counts per
// instance kind, a flush-duration histogram, and an event-dispatch
// counter, plus a no-op default so wiring metrics is never mandatory.
//
// Grounded on bubblyui/pkg/bubbly/monitoring/prometheus.go: one
// CounterVec per event family, one Registerer passed in rather than
// assumed global, panicking on duplicate registration because that is a
// startup-time programmer error, not a runtime condition to recover from.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements reconciler.MetricsHook on top of
// client_golang. All metrics are prefixed "corereact_".
type PrometheusCollector struct {
	mounts   *prometheus.CounterVec
	updates  *prometheus.CounterVec
	unmounts *prometheus.CounterVec
	flushes  prometheus.Histogram
	dispatch *prometheus.CounterVec
}

// NewPrometheusCollector registers every metric against reg and returns
// the collector. It panics on duplicate registration, matching
// NewPrometheusMetrics's fail-fast startup behavior.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		mounts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "corereact_mounts_total",
			Help: "Total instances mounted, partitioned by kind.",
		}, []string{"kind"}),
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "corereact_updates_total",
			Help: "Total instances updated in place, partitioned by kind.",
		}, []string{"kind"}),
		unmounts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "corereact_unmounts_total",
			Help: "Total instances unmounted, partitioned by kind.",
		}, []string{"kind"}),
		flushes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "corereact_flush_duration_seconds",
			Help:    "Duration of one update-queue drain pass.",
			Buckets: prometheus.DefBuckets,
		}),
		dispatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "corereact_event_dispatch_total",
			Help: "Total synthetic events dispatched, partitioned by event name.",
		}, []string{"event"}),
	}
	reg.MustRegister(c.mounts, c.updates, c.unmounts, c.flushes, c.dispatch)
	return c
}

func (c *PrometheusCollector) ObserveMount(kind string)   { c.mounts.WithLabelValues(kind).Inc() }
func (c *PrometheusCollector) ObserveUpdate(kind string)  { c.updates.WithLabelValues(kind).Inc() }
func (c *PrometheusCollector) ObserveUnmount(kind string) { c.unmounts.WithLabelValues(kind).Inc() }

// ObserveFlush records how long one update-queue drain pass took.
func (c *PrometheusCollector) ObserveFlush(d time.Duration) {
	c.flushes.Observe(d.Seconds())
}

// ObserveDispatch records one synthetic event dispatch.
func (c *PrometheusCollector) ObserveDispatch(eventName string) {
	c.dispatch.WithLabelValues(eventName).Inc()
}

// Noop satisfies reconciler.MetricsHook by discarding every observation;
// it is the default when a caller doesn't wire Config.Hooks.Metrics.
type Noop struct{}

func (Noop) ObserveMount(string)   {}
func (Noop) ObserveUpdate(string)  {}
func (Noop) ObserveUnmount(string) {}
