package ports

// MetricsRecorder is the port interface for recording metrics.
// Implementations are adapters (PrometheusMetricsRecorder for production,
// NoopMetricsRecorder for disabled/testing).
type MetricsRecorder interface {
	// RecordSignIn records a credential sign-in attempt.
	RecordSignIn(success bool)

	// RecordSignUp records an account-creation attempt.
	RecordSignUp(success bool)

	// RecordRoleLookup records one role store read.
	// Outcome is one of "found", "not_found", "error".
	RecordRoleLookup(outcome string)

	// RecordGuardDecision records one route activation verdict.
	RecordGuardDecision(expectedRole string, verdict string)
}
