// Package identity provides an in-process identity provider adapter:
// bcrypt-verified credential accounts, a multicast identity-change
// stream with replay-latest-on-subscribe, and signed identity tokens.
package identity

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/agentmartinv1/rolekit/internal/core/domain"
	"github.com/agentmartinv1/rolekit/internal/core/ports"
)

// MinPasswordLength is the provider's credential policy floor.
const MinPasswordLength = 8

type account struct {
	subjectID    string
	email        string
	passwordHash []byte
}

// LocalProvider is an in-process IdentityProvider. Accounts live in
// memory; session state is a single current identity shared by all
// subscribers, matching the provider contract of one signed-in
// principal at a time.
type LocalProvider struct {
	logger *zap.Logger

	mu       sync.RWMutex
	accounts map[string]*account // keyed by lower-cased email

	stream *broadcaster
}

// NewLocalProvider creates an empty in-process provider.
// A nil logger disables logging.
func NewLocalProvider(logger *zap.Logger) *LocalProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalProvider{
		logger:   logger,
		accounts: make(map[string]*account),
		stream:   newBroadcaster(),
	}
}

// SignIn authenticates an email/password pair. The error does not
// reveal whether the email is registered.
func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*domain.Identity, error) {
	p.mu.RLock()
	acct, ok := p.accounts[normalizeEmail(email)]
	p.mu.RUnlock()
	if !ok {
		return nil, domain.InvalidCredentialsError()
	}
	if err := bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)); err != nil {
		return nil, domain.InvalidCredentialsError()
	}

	identity := &domain.Identity{SubjectID: acct.subjectID, Email: acct.email}
	p.stream.publish(identity)
	p.logger.Debug("principal signed in", zap.String("subject_id", identity.SubjectID))
	return identity, nil
}

// SignUp creates an account and signs it in.
func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (*domain.Identity, error) {
	if len(password) < MinPasswordLength {
		return nil, domain.WeakCredentialError("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	key := normalizeEmail(email)
	p.mu.Lock()
	if _, exists := p.accounts[key]; exists {
		p.mu.Unlock()
		return nil, domain.AccountExistsError(email)
	}
	acct := &account{
		subjectID:    uuid.NewString(),
		email:        email,
		passwordHash: hash,
	}
	p.accounts[key] = acct
	p.mu.Unlock()

	identity := &domain.Identity{SubjectID: acct.subjectID, Email: acct.email}
	p.stream.publish(identity)
	p.logger.Debug("principal signed up", zap.String("subject_id", identity.SubjectID))
	return identity, nil
}

// SignOut ends the current session and emits a nil element.
func (p *LocalProvider) SignOut(ctx context.Context) error {
	p.stream.publish(nil)
	p.logger.Debug("principal signed out")
	return nil
}

// IdentityChanges subscribes to session-state changes.
func (p *LocalProvider) IdentityChanges() ports.Subscription {
	return p.stream.subscribe()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ ports.IdentityProvider = (*LocalProvider)(nil)
