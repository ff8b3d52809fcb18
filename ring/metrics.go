// File: ring/metrics.go
//
// Optional Prometheus export of ring statistics. Statistics and metrics
// track operations independently: statistics stay available without a
// registry, metrics feed dashboards when one is supplied.

package ring

import "github.com/prometheus/client_golang/prometheus"

// ringMetrics holds Prometheus collectors for ring operations.
type ringMetrics struct {
	writes    prometheus.Counter
	reads     prometheus.Counter
	overflows prometheus.Counter
	drops     prometheus.Counter

	size        prometheus.Gauge
	utilization prometheus.Gauge
}

// newRingMetrics creates and registers ring collectors with the registerer.
func newRingMetrics(registerer prometheus.Registerer, name string) (*ringMetrics, error) {
	labels := prometheus.Labels{"buffer": name}
	m := &ringMetrics{
		writes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringbuf",
			Subsystem:   "deque",
			Name:        "writes_total",
			ConstLabels: labels,
			Help:        "Total number of push and emplace operations",
		}),
		reads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringbuf",
			Subsystem:   "deque",
			Name:        "reads_total",
			ConstLabels: labels,
			Help:        "Total number of pop operations",
		}),
		overflows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringbuf",
			Subsystem:   "deque",
			Name:        "overflows_total",
			ConstLabels: labels,
			Help:        "Total number of pushes that landed on a full buffer",
		}),
		drops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringbuf",
			Subsystem:   "deque",
			Name:        "drops_total",
			ConstLabels: labels,
			Help:        "Total number of elements evicted by overflow",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringbuf",
			Subsystem:   "deque",
			Name:        "size",
			ConstLabels: labels,
			Help:        "Current number of live elements",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringbuf",
			Subsystem:   "deque",
			Name:        "utilization",
			ConstLabels: labels,
			Help:        "Fill level relative to capacity (0.0 to 1.0)",
		}),
	}

	collectors := m.collectors()
	for i, c := range collectors {
		if err := registerer.Register(c); err != nil {
			// roll back the ones already registered so a failed
			// construction does not squat on the buffer name
			for _, prev := range collectors[:i] {
				registerer.Unregister(prev)
			}
			return nil, err
		}
	}
	return m, nil
}

// collectors lists every collector the ring registers.
func (m *ringMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.writes, m.reads, m.overflows, m.drops, m.size, m.utilization,
	}
}

// unregister removes the ring's collectors from the registerer.
func (m *ringMetrics) unregister(registerer prometheus.Registerer) {
	for _, c := range m.collectors() {
		registerer.Unregister(c)
	}
}

// recordWrite increments the write counter and updates size/utilization.
func (m *ringMetrics) recordWrite(size, capacity int) {
	m.writes.Inc()
	m.updateSize(size, capacity)
}

// recordRead increments the read counter and updates size/utilization.
func (m *ringMetrics) recordRead(size, capacity int) {
	m.reads.Inc()
	m.updateSize(size, capacity)
}

// recordOverflow increments the overflow counter.
func (m *ringMetrics) recordOverflow() {
	m.overflows.Inc()
}

// recordDrop increments the drop counter.
func (m *ringMetrics) recordDrop() {
	m.drops.Inc()
}

// updateSize sets the size and utilization gauges.
func (m *ringMetrics) updateSize(size, capacity int) {
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}
