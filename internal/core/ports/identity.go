package ports

import (
	"context"

	"github.com/agentmartinv1/rolekit/internal/core/domain"
)

// IdentityProvider is the port interface for the external identity
// provider. It authenticates credentials and publishes session-state
// changes; it makes no authorization decisions.
type IdentityProvider interface {
	// SignIn authenticates an email/password pair. On failure it
	// returns an error carrying ErrCodeInvalidCredentials.
	SignIn(ctx context.Context, email, password string) (*domain.Identity, error)

	// SignUp creates an account and signs it in. On failure it returns
	// an error carrying ErrCodeAccountExists or ErrCodeWeakCredential.
	SignUp(ctx context.Context, email, password string) (*domain.Identity, error)

	// SignOut ends the current session.
	SignOut(ctx context.Context) error

	// IdentityChanges subscribes to session-state changes. The stream
	// is multicast and replays the latest element on subscribe; the
	// caller must Close the subscription when done.
	IdentityChanges() Subscription
}

// Subscription is a scoped handle on the identity-change stream.
type Subscription interface {
	// Changes yields the current principal, or nil when signed out.
	// The first element arrives without waiting for a state change.
	Changes() <-chan *domain.Identity

	// Close tears down the subscription and closes the channel.
	// Safe to call more than once.
	Close()
}
