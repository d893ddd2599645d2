package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crediya/auth/internal/auth/domain"
	"github.com/crediya/auth/internal/auth/store"
	"github.com/crediya/auth/pkg/cryptox"
	"github.com/crediya/auth/pkg/jwtx"
	"github.com/crediya/auth/pkg/slogx"
)

// ErrInvalidCredentials is the single, deliberately uninformative login
// failure. Unknown email, missing hash and wrong password all surface
// as this exact error so responses cannot be used for user enumeration.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService orchestrates the login flow: credential lookup, password
// verification, token issuance.
type AuthService struct {
	Store  store.Store
	Tokens *jwtx.TokenManager

	// SessionTTL is how long the returned session is advertised to
	// live. Kept equal to the token TTL by the application wiring.
	SessionTTL time.Duration
}

// Authenticate verifies the credentials and issues a signed token
// embedding the user's id and role name.
func (s *AuthService) Authenticate(ctx context.Context, credentials domain.LoginCredentials) (domain.AuthenticationResult, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AuthenticationResult{}, ErrInvalidCredentials
		}
		return domain.AuthenticationResult{}, err
	}

	if user.PasswordHash == "" {
		log.Warn("login attempt against user without credential", "user_id", user.ID)
		return domain.AuthenticationResult{}, ErrInvalidCredentials
	}

	if err := cryptox.VerifyPassword(credentials.Password, user.PasswordHash); err != nil {
		// A malformed stored digest also lands here: still the same
		// generic failure externally, but worth logging.
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Error("stored password digest unreadable", "user_id", user.ID, "err", err)
		}
		return domain.AuthenticationResult{}, ErrInvalidCredentials
	}

	roleType, err := domain.RoleTypeFromID(user.RoleID)
	if err != nil {
		// A user referencing an unknown role is corrupt reference data,
		// not a credential problem. Surface it.
		return domain.AuthenticationResult{}, fmt.Errorf("user %s: %w", user.ID, err)
	}

	token, err := s.Tokens.Issue(user.ID, roleType.Name())
	if err != nil {
		return domain.AuthenticationResult{}, err
	}

	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = s.Tokens.TTL()
	}

	log.Info("user authenticated", "user_id", user.ID, "role", roleType.Name())
	return domain.AuthenticationResult{
		Token:     token,
		UserID:    user.ID,
		Role:      roleType.Name(),
		ExpiresAt: time.Now().UTC().Add(ttl),
	}, nil
}
