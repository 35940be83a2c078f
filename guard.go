package rolekit

import (
	"context"

	"go.uber.org/zap"

	"github.com/agentmartinv1/rolekit/internal/core/domain"
	"github.com/agentmartinv1/rolekit/internal/core/ports"
)

// Guard is the decision point for one protected-route activation
// attempt. It snapshots the latest identity from the change stream,
// drives the Resolver with the route's expected role, and commits to
// exactly one verdict per attempt.
type Guard struct {
	provider ports.IdentityProvider
	resolver *Resolver
	metrics  ports.MetricsRecorder
	logger   *zap.Logger
}

// NewGuard creates a route authorization guard.
func NewGuard(provider ports.IdentityProvider, resolver *Resolver, metrics ports.MetricsRecorder, logger *zap.Logger) *Guard {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{provider: provider, resolver: resolver, metrics: metrics, logger: logger}
}

// Authorize evaluates one activation attempt against the route's
// expected role.
//
// The identity is captured once, at the attempt's start: the stream
// replays its latest element on subscribe, so the first received value
// is the current session state and the guard does not wait for a
// change. The subscription is scoped to this call. If the identity
// changes while the role read is in flight, this attempt's verdict
// still reflects the captured identity; the next attempt sees the
// newer one.
//
// A store read failure returns a non-granted zero Verdict and the
// error; the caller must treat it as a denial (fail closed).
func (g *Guard) Authorize(ctx context.Context, expected domain.Role) (domain.Verdict, error) {
	sub := g.provider.IdentityChanges()
	defer sub.Close()

	var identity *domain.Identity
	select {
	case identity = <-sub.Changes():
	case <-ctx.Done():
		return domain.Verdict{}, ctx.Err()
	}

	verdict, err := g.resolver.Resolve(ctx, identity, expected)
	if err != nil {
		g.metrics.RecordGuardDecision(expected.String(), "error")
		g.logger.Error("guard evaluation failed",
			zap.String("expected_role", expected.String()),
			zap.Error(err))
		return domain.Verdict{}, err
	}

	g.metrics.RecordGuardDecision(expected.String(), verdict.Code.String())
	if !verdict.Allowed() {
		g.logger.Info("route activation denied",
			zap.String("expected_role", expected.String()),
			zap.String("verdict", verdict.Code.String()),
			zap.String("redirect", string(verdict.Redirect)))
	}
	return verdict, nil
}
