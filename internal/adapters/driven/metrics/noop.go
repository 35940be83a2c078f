package metrics

import (
	"github.com/agentmartinv1/rolekit/internal/core/ports"
)

// NoopMetricsRecorder is a no-op implementation for when metrics are disabled.
// All methods are safe to call and do nothing.
type NoopMetricsRecorder struct{}

// NewNoopMetricsRecorder creates a new no-op metrics recorder.
func NewNoopMetricsRecorder() *NoopMetricsRecorder {
	return &NoopMetricsRecorder{}
}

// RecordSignIn is a no-op.
func (n *NoopMetricsRecorder) RecordSignIn(success bool) {}

// RecordSignUp is a no-op.
func (n *NoopMetricsRecorder) RecordSignUp(success bool) {}

// RecordRoleLookup is a no-op.
func (n *NoopMetricsRecorder) RecordRoleLookup(outcome string) {}

// RecordGuardDecision is a no-op.
func (n *NoopMetricsRecorder) RecordGuardDecision(expectedRole string, verdict string) {}

// Ensure NoopMetricsRecorder implements ports.MetricsRecorder
var _ ports.MetricsRecorder = (*NoopMetricsRecorder)(nil)
