package store

import (
	"context"
	"errors"

	"github.com/crediya/auth/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface the core's flows collaborate
// with. Concrete drivers (sqlite today) implement it. Sub-repositories
// keep concerns tidy and let service tests swap in fakes per concern.
type Store interface {
	Users() Users
	Roles() Roles

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error
	// the transaction is rolled back, otherwise committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store.
type Tx interface {
	Users() Users
	Roles() Roles
}

// Users is the user lookup/persistence collaborator. All methods honor
// context cancellation; a cancelled context must not leave partial
// writes visible.
type Users interface {
	// GetUserByID returns a user by its opaque id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email domain.Email) (domain.User, error)

	// ExistsByEmail backs the registration uniqueness check.
	ExistsByEmail(ctx context.Context, email domain.Email) (bool, error)

	// CreateUser inserts a new user (id is assigned by the caller).
	CreateUser(ctx context.Context, u domain.User) error

	// ListAll returns every user.
	ListAll(ctx context.Context) ([]domain.User, error)

	// CountUsers returns the total number of users.
	CountUsers(ctx context.Context) (int64, error)
}

// Roles reads the seeded role reference data. The core never writes roles.
type Roles interface {
	// GetRoleByID returns a role by its numeric id.
	GetRoleByID(ctx context.Context, id int) (domain.Role, error)

	// ExistsByID backs the registration role check.
	ExistsByID(ctx context.Context, id int) (bool, error)

	// ListAll returns all seeded roles.
	ListAll(ctx context.Context) ([]domain.Role, error)
}
