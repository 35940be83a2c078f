package rolekit

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/agentmartinv1/rolekit/internal/core/domain"
	"github.com/agentmartinv1/rolekit/internal/core/ports"
)

// Resolver reduces (identity, role record, expected role) to a single
// authorization verdict. It performs exactly one store read per
// invocation and never retries; a failed read is an error outcome,
// never a verdict.
type Resolver struct {
	roles   *RoleStore
	metrics ports.MetricsRecorder
	logger  *zap.Logger
}

// NewResolver creates a resolver. A nil metrics recorder disables
// metrics; a nil logger disables logging.
func NewResolver(roles *RoleStore, metrics ports.MetricsRecorder, logger *zap.Logger) *Resolver {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{roles: roles, metrics: metrics, logger: logger}
}

// Resolve decides whether the identity may enter a route requiring
// expected. A nil identity denies with a login redirect; a missing
// record denies with an unauthorized redirect. A store read failure
// returns a non-granted zero Verdict alongside the error (fail closed).
func (r *Resolver) Resolve(ctx context.Context, identity *domain.Identity, expected domain.Role) (domain.Verdict, error) {
	if identity == nil {
		return domain.DeniedNoSession(), nil
	}

	record, err := r.lookup(ctx, identity.SubjectID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.DeniedNoRecord(), nil
		}
		return domain.Verdict{}, err
	}

	if record.Role == expected {
		return domain.Granted(), nil
	}

	r.logger.Debug("role mismatch",
		zap.String("subject_id", identity.SubjectID),
		zap.String("expected_role", expected.String()),
		zap.String("recorded_role", record.Role.String()))
	return domain.DeniedRoleMismatch(), nil
}

// Dispatch maps the identity's recorded role to its fixed post-login
// destination. Roles outside the table land on the unauthorized route.
// A store read failure returns an error and no destination; the caller
// stays where it is.
func (r *Resolver) Dispatch(ctx context.Context, identity *domain.Identity) (domain.Route, error) {
	if identity == nil {
		return domain.RouteLogin, nil
	}

	record, err := r.lookup(ctx, identity.SubjectID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			r.logger.Warn("authenticated principal has no role record",
				zap.String("subject_id", identity.SubjectID))
			return domain.RouteUnauthorized, nil
		}
		return "", err
	}

	return domain.DestinationFor(record.Role), nil
}

func (r *Resolver) lookup(ctx context.Context, subjectID string) (*domain.RoleRecord, error) {
	record, err := r.roles.Get(ctx, subjectID)
	switch {
	case err == nil:
		r.metrics.RecordRoleLookup("found")
	case errors.Is(err, domain.ErrRecordNotFound):
		r.metrics.RecordRoleLookup("not_found")
	default:
		r.metrics.RecordRoleLookup("error")
	}
	return record, err
}

// noopMetrics is the resolver-local fallback when no recorder is wired.
type noopMetrics struct{}

func (noopMetrics) RecordSignIn(bool)                 {}
func (noopMetrics) RecordSignUp(bool)                 {}
func (noopMetrics) RecordRoleLookup(string)           {}
func (noopMetrics) RecordGuardDecision(string, string) {}
