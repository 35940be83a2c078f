package rolekit

import (
	"context"

	"go.uber.org/zap"

	"github.com/agentmartinv1/rolekit/internal/core/domain"
)

// Dispatcher is the one-shot post-login flow: authenticate, read the
// role record once, and route to the matching destination. Unlike the
// Guard it does not consume the identity change stream; it acts on the
// identity the gateway just returned.
type Dispatcher struct {
	gateway  *Gateway
	resolver *Resolver
	logger   *zap.Logger
}

// NewDispatcher creates a post-login dispatcher.
func NewDispatcher(gateway *Gateway, resolver *Resolver, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{gateway: gateway, resolver: resolver, logger: logger}
}

// Login signs the credentials in and returns the authenticated
// identity with the destination for its recorded role. On a credential
// error or a store read failure it returns the error and no
// destination; the caller stays on the login view with the error
// surfaced. It never navigates silently.
func (d *Dispatcher) Login(ctx context.Context, email, password string) (*domain.Identity, domain.Route, error) {
	identity, err := d.gateway.SignIn(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	dest, err := d.resolver.Dispatch(ctx, identity)
	if err != nil {
		d.logger.Error("post-login dispatch failed",
			zap.String("subject_id", identity.SubjectID),
			zap.Error(err))
		return nil, "", err
	}
	return identity, dest, nil
}

// Signup creates the account with the default viewer role and returns
// the new identity with the viewer destination.
func (d *Dispatcher) Signup(ctx context.Context, email, password string) (*domain.Identity, domain.Route, error) {
	identity, err := d.gateway.SignUp(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	return identity, domain.RouteViewer, nil
}
