// Package jwtx issues and validates the compact HMAC-signed tokens that
// carry identity and role across request boundaries. Tokens are
// stateless; everything needed to authorize a request is in the claims.
package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MinSecretBytes is the minimum HMAC secret length. HS256 security
// degrades below the hash output size, so anything shorter is refused
// at construction.
const MinSecretBytes = 32

// DefaultTTL is the token lifetime when the config leaves it unset.
const DefaultTTL = 24 * time.Hour

var (
	ErrSecretTooShort = errors.New("jwtx: signing secret must be at least 256 bits")
	ErrInvalidToken   = errors.New("jwtx: invalid token")
)

// Claims is the payload embedded in every issued token: subject is the
// user id, Role is the role name. Issuer, audience and a unique jti are
// always set for scope confinement and replay detection.
type Claims struct {
	jwt.RegisteredClaims

	Role string `json:"role,omitempty"`
}

// UserID returns the token subject.
func (c Claims) UserID() string { return c.Subject }

// Config carries the signing material and claim expectations. Supplied
// by the application config, never hardcoded.
type Config struct {
	Secret   []byte
	Issuer   string
	Audience string
	TTL      time.Duration
}

// TokenManager signs and verifies tokens with a single symmetric key.
// It is stateless and safe for concurrent use.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func New(cfg Config) (*TokenManager, error) {
	if len(cfg.Secret) < MinSecretBytes {
		return nil, ErrSecretTooShort
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TokenManager{
		secret:   cfg.Secret,
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      ttl,
	}, nil
}

// TTL returns the configured token lifetime.
func (m *TokenManager) TTL() time.Duration { return m.ttl }

// Issue signs a token for the user carrying its role name. The token
// expires after the configured TTL.
func (m *TokenManager) Issue(userID, role string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			ID:        uuid.NewString(),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Validate reports whether the token is well formed, carries a valid
// signature under the configured key, has not expired, and matches the
// configured issuer and audience. It never panics and never returns an
// error; any defect simply yields false.
func (m *TokenManager) Validate(token string) bool {
	_, err := m.Parse(token)
	return err == nil
}

// Parse verifies the token and returns its claims. Callers that need a
// non-failing check should use Validate first; Parse reports an error
// for anything Validate would reject.
func (m *TokenManager) Parse(token string) (Claims, error) {
	if token == "" {
		return Claims{}, ErrInvalidToken
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, m.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return claims, nil
}

func (m *TokenManager) keyFunc(*jwt.Token) (any, error) {
	return m.secret, nil
}
