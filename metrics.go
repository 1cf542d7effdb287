package supersede

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus collectors for one or more schedulers. A nil
// *Metrics records nothing.
type Metrics struct {
	invocations   *prometheus.CounterVec
	supersessions *prometheus.CounterVec
	failures      *prometheus.CounterVec
}

// Creates scheduler metrics under the given namespace. Register the result
// with a prometheus.Registerer to export it.
func NewMetrics(namespace string) *Metrics {
	labels := []string{"scheduler"}
	return &Metrics{
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "supersede",
			Name:      "invocations_total",
			Help:      "Number of scheduler invocations.",
		}, labels),
		supersessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "supersede",
			Name:      "supersessions_total",
			Help:      "Number of invocations aborted because a newer one started.",
		}, labels),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "supersede",
			Name:      "failures_total",
			Help:      "Number of invocations which returned an error.",
		}, labels),
	}
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.invocations.Describe(ch)
	m.supersessions.Describe(ch)
	m.failures.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.invocations.Collect(ch)
	m.supersessions.Collect(ch)
	m.failures.Collect(ch)
}

func (m *Metrics) invoked(name string) {
	if m != nil {
		m.invocations.WithLabelValues(name).Inc()
	}
}

func (m *Metrics) superseded(name string) {
	if m != nil {
		m.supersessions.WithLabelValues(name).Inc()
	}
}

func (m *Metrics) failed(name string) {
	if m != nil {
		m.failures.WithLabelValues(name).Inc()
	}
}

var _ prometheus.Collector = (*Metrics)(nil)
