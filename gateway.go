package rolekit

import (
	"context"

	"go.uber.org/zap"

	"github.com/agentmartinv1/rolekit/internal/core/domain"
	"github.com/agentmartinv1/rolekit/internal/core/ports"
)

// Gateway is the credential gateway: a thin call-through to the
// identity provider's sign-in, sign-up, and sign-out operations.
// Provider errors surface verbatim; nothing is retried. SignUp also
// provisions the default role record, which is the one piece of
// orchestration the signup flow owns.
type Gateway struct {
	provider ports.IdentityProvider
	roles    *RoleStore
	metrics  ports.MetricsRecorder
	logger   *zap.Logger
}

// NewGateway creates a credential gateway.
func NewGateway(provider ports.IdentityProvider, roles *RoleStore, metrics ports.MetricsRecorder, logger *zap.Logger) *Gateway {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{provider: provider, roles: roles, metrics: metrics, logger: logger}
}

// SignIn authenticates the credentials. On success the provider begins
// emitting the new identity on the change stream.
func (g *Gateway) SignIn(ctx context.Context, email, password string) (*domain.Identity, error) {
	identity, err := g.provider.SignIn(ctx, email, password)
	g.metrics.RecordSignIn(err == nil)
	if err != nil {
		g.logger.Info("sign-in failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	g.logger.Info("sign-in succeeded", zap.String("subject_id", identity.SubjectID))
	return identity, nil
}

// SignUp creates the account and its default viewer role record.
// A failed record write surfaces as a store write error; the account
// exists but carries no role until provisioning is repaired.
func (g *Gateway) SignUp(ctx context.Context, email, password string) (*domain.Identity, error) {
	identity, err := g.provider.SignUp(ctx, email, password)
	if err != nil {
		g.metrics.RecordSignUp(false)
		g.logger.Info("sign-up failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	record := domain.RoleRecord{
		SubjectID: identity.SubjectID,
		Email:     email,
		Role:      domain.RoleViewer,
	}
	if err := g.roles.Create(ctx, record); err != nil {
		g.metrics.RecordSignUp(false)
		g.logger.Error("default role record write failed",
			zap.String("subject_id", identity.SubjectID),
			zap.Error(err))
		return nil, err
	}

	g.metrics.RecordSignUp(true)
	g.logger.Info("sign-up succeeded", zap.String("subject_id", identity.SubjectID))
	return identity, nil
}

// SignOut ends the current session. The provider emits a nil element
// on the change stream.
func (g *Gateway) SignOut(ctx context.Context) error {
	return g.provider.SignOut(ctx)
}
