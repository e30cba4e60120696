package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the gate. One instance is created at
// startup and shared by the resolver, checker, and gate through their Metrics
// interfaces.
type Metrics struct {
	verdicts       *prometheus.CounterVec
	resolutions    *prometheus.CounterVec
	storeFallbacks prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		verdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "authgate_verdicts_total",
			Help: "Authorization verdicts produced, by outcome",
		}, []string{"outcome"}),
		resolutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "authgate_identity_resolutions_total",
			Help: "Identity resolution attempts, by winning path (trusted_context, bearer_token, none)",
		}, []string{"path"}),
		storeFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "authgate_allowlist_store_fallbacks_total",
			Help: "Allow-list store query failures that degraded to the static set",
		}),
	}
}

// ObserveVerdict implements gate.Metrics.
func (m *Metrics) ObserveVerdict(outcome string) {
	m.verdicts.WithLabelValues(outcome).Inc()
}

// ObserveResolution implements identity.Metrics.
func (m *Metrics) ObserveResolution(path string) {
	m.resolutions.WithLabelValues(path).Inc()
}

// ObserveStoreFallback implements authz.Metrics.
func (m *Metrics) ObserveStoreFallback() {
	m.storeFallbacks.Inc()
}
