package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/crediya/auth/internal/auth/domain"
	"github.com/crediya/auth/internal/auth/store"
	"github.com/crediya/auth/pkg/cryptox"
	"github.com/crediya/auth/pkg/idx"
	"github.com/crediya/auth/pkg/slogx"
)

var (
	// ErrNilUser is a validation failure: no user data at all.
	ErrNilUser = errors.New("user cannot be null")

	// ErrEmailRequired is a validation failure: the email value object
	// was never constructed.
	ErrEmailRequired = errors.New("email is required")

	// ErrInvalidRole is a business-rule failure: the referenced role
	// does not exist.
	ErrInvalidRole = errors.New("invalid role ID")

	// ErrEmailTaken is a business-rule failure: the email is already
	// registered. Wrapped with the offending address.
	ErrEmailTaken = errors.New("email already registered")
)

// UserService orchestrates user registration and listing.
type UserService struct {
	Store store.Store
}

// Register persists a new user. Checks run in a fixed order - role
// existence strictly before email uniqueness - so the surfaced error is
// stable when several conditions fail at once. A plaintext credential
// arriving in PasswordHash is hashed before persisting; plaintext never
// reaches the store. The uniqueness check and the insert share one
// transaction.
func (s *UserService) Register(ctx context.Context, user domain.User) (domain.User, error) {
	if user.IsZero() {
		return domain.User{}, ErrNilUser
	}
	if user.Email.IsZero() {
		return domain.User{}, ErrEmailRequired
	}

	roleExists, err := s.Store.Roles().ExistsByID(ctx, user.RoleID)
	if err != nil {
		return domain.User{}, err
	}
	if !roleExists {
		return domain.User{}, ErrInvalidRole
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		taken, err := tx.Users().ExistsByEmail(ctx, user.Email)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: %s", ErrEmailTaken, user.Email)
		}

		if plain := strings.TrimSpace(user.PasswordHash); plain != "" {
			hashed, err := cryptox.HashPassword(plain)
			if err != nil {
				return err
			}
			user.PasswordHash = hashed
		}

		user.ID = idx.New().String()
		return tx.Users().CreateUser(ctx, user)
	})
	if err != nil {
		// The uniqueness check races with registrations on other
		// connections; the unique index is the real arbiter.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, fmt.Errorf("%w: %s", ErrEmailTaken, user.Email)
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered",
		"user_id", user.ID, "role_id", user.RoleID)
	return user, nil
}

// GetByID fetches a user by id.
func (s *UserService) GetByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// ListAll returns every registered user.
func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListAll(ctx)
}
