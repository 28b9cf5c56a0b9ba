package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aussiebroadwan/passport/internal/auth/domain"
)

// Flow labels for the results counter.
const (
	FlowRegister = "register"
	FlowLogin    = "login"
	FlowFetch    = "fetch"
)

// Metrics holds the service collectors. A nil *Metrics records nothing.
type Metrics struct {
	results *prometheus.CounterVec
	derive  prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. Panics if
// registration fails (following prometheus convention).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		results: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "passport_auth_results_total",
				Help: "Total number of auth flow results by flow and status",
			},
			[]string{"flow", "status"},
		),
		derive: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "passport_password_derive_seconds",
			Help:    "Password key derivation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
	}

	if reg != nil {
		reg.MustRegister(m.results, m.derive)
	}
	return m
}

func (m *Metrics) recordResult(flow string, status domain.Status) {
	if m == nil {
		return
	}
	m.results.WithLabelValues(flow, string(status)).Inc()
}

func (m *Metrics) recordDerive(d time.Duration) {
	if m == nil {
		return
	}
	m.derive.Observe(d.Seconds())
}
