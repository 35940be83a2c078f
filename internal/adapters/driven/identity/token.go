package identity

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/agentmartinv1/rolekit/internal/core/domain"
)

// ErrTokenInvalid is returned when an identity token cannot be
// verified or has expired.
var ErrTokenInvalid = errors.New("identity token invalid")

// identityClaims defines the JWT claims structure for identity tokens.
type identityClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// TokenCodec mints and verifies HMAC-signed identity tokens so an
// external navigation layer can carry an identity across requests.
// Tokens are stateless; expiry is the only revocation.
type TokenCodec struct {
	secret   []byte
	duration time.Duration
}

// NewTokenCodec creates a token codec with the given signing secret
// and token lifetime.
func NewTokenCodec(secret []byte, duration time.Duration) *TokenCodec {
	return &TokenCodec{secret: secret, duration: duration}
}

// Mint generates a signed token for the identity.
func (c *TokenCodec) Mint(identity *domain.Identity) (string, error) {
	now := time.Now()
	claims := identityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.SubjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.duration)),
		},
		Email: identity.Email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify validates a token and returns the identity it carries.
func (c *TokenCodec) Verify(token string) (*domain.Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &identityClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*identityClaims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	return &domain.Identity{SubjectID: claims.Subject, Email: claims.Email}, nil
}
