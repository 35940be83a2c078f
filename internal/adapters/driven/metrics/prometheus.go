package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/agentmartinv1/rolekit/internal/core/ports"
)

// PrometheusMetricsRecorder records metrics using Prometheus.
type PrometheusMetricsRecorder struct {
	signInAttemptsTotal *prometheus.CounterVec
	signUpAttemptsTotal *prometheus.CounterVec
	roleLookupsTotal    *prometheus.CounterVec
	guardDecisionsTotal *prometheus.CounterVec
}

// NewPrometheusMetricsRecorder creates a new Prometheus metrics recorder
// using the default Prometheus registry.
func NewPrometheusMetricsRecorder() *PrometheusMetricsRecorder {
	return NewPrometheusMetricsRecorderWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsRecorderWithRegistry creates a new Prometheus metrics recorder
// with a custom registry. Use this for testing.
func NewPrometheusMetricsRecorderWithRegistry(reg prometheus.Registerer) *PrometheusMetricsRecorder {
	signInAttemptsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rolekit_sign_in_attempts_total",
		Help: "Total credential sign-in attempts",
	}, []string{"result"})

	signUpAttemptsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rolekit_sign_up_attempts_total",
		Help: "Total account creation attempts",
	}, []string{"result"})

	roleLookupsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rolekit_role_lookups_total",
		Help: "Total role store reads",
	}, []string{"outcome"})

	guardDecisionsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rolekit_guard_decisions_total",
		Help: "Total route activation verdicts",
	}, []string{"expected_role", "verdict"})

	reg.MustRegister(
		signInAttemptsTotal,
		signUpAttemptsTotal,
		roleLookupsTotal,
		guardDecisionsTotal,
	)

	return &PrometheusMetricsRecorder{
		signInAttemptsTotal: signInAttemptsTotal,
		signUpAttemptsTotal: signUpAttemptsTotal,
		roleLookupsTotal:    roleLookupsTotal,
		guardDecisionsTotal: guardDecisionsTotal,
	}
}

// RecordSignIn records a credential sign-in attempt.
func (p *PrometheusMetricsRecorder) RecordSignIn(success bool) {
	p.signInAttemptsTotal.WithLabelValues(result(success)).Inc()
}

// RecordSignUp records an account-creation attempt.
func (p *PrometheusMetricsRecorder) RecordSignUp(success bool) {
	p.signUpAttemptsTotal.WithLabelValues(result(success)).Inc()
}

// RecordRoleLookup records one role store read.
func (p *PrometheusMetricsRecorder) RecordRoleLookup(outcome string) {
	p.roleLookupsTotal.WithLabelValues(outcome).Inc()
}

// RecordGuardDecision records one route activation verdict.
func (p *PrometheusMetricsRecorder) RecordGuardDecision(expectedRole string, verdict string) {
	p.guardDecisionsTotal.WithLabelValues(expectedRole, verdict).Inc()
}

func result(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

// Ensure PrometheusMetricsRecorder implements ports.MetricsRecorder
var _ ports.MetricsRecorder = (*PrometheusMetricsRecorder)(nil)
