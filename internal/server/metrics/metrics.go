// Package metrics exposes Prometheus counters for the auth flows and the
// HTTP endpoint that serves them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Operation results.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Code kinds.
const (
	KindRegistration = "registration"
	KindRecovery     = "recovery"
)

// Metrics holds the service counters. A nil *Metrics records nothing.
type Metrics struct {
	Operations  *prometheus.CounterVec
	CodesIssued *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stm_auth_operations_total",
				Help: "Auth operations by name and result",
			},
			[]string{"operation", "result"},
		),
		CodesIssued: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stm_codes_issued_total",
				Help: "One-time codes issued by kind",
			},
			[]string{"kind"},
		),
	}

	reg.MustRegister(m.Operations)
	reg.MustRegister(m.CodesIssued)

	return m
}

func (m *Metrics) RecordOperation(operation, result string) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) RecordCodeIssued(kind string) {
	if m == nil {
		return
	}
	m.CodesIssued.WithLabelValues(kind).Inc()
}
