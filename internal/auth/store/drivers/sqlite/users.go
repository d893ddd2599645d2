package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/crediya/auth/internal/auth/domain"
	"github.com/crediya/auth/internal/auth/store"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, first_name, last_name, email, identity_document,
	phone, role_id, base_salary, birth_date, address, password_hash,
	created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email domain.Email) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email.String())
	return scanUser(row)
}

func (r *usersRepo) ExistsByEmail(ctx context.Context, email domain.Email) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`, email.String()).
		Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (
			id, first_name, last_name, email, identity_document,
			phone, role_id, base_salary, birth_date, address, password_hash
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.FirstName, u.LastName, u.Email.String(), u.IdentityDocument,
		u.Phone, u.RoleID, u.BaseSalary.String(), u.BirthDate, u.Address,
		u.PasswordHash,
	)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *usersRepo) ListAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser rebuilds the domain user from a row. Email and salary pass
// back through their validating factories so an invalid value can never
// leave the store silently.
func scanUser(row rowScanner) (domain.User, error) {
	var (
		u          domain.User
		email      string
		baseSalary string
		createdAt  time.Time
		updatedAt  time.Time
	)
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &email, &u.IdentityDocument,
		&u.Phone, &u.RoleID, &baseSalary, &u.BirthDate, &u.Address,
		&u.PasswordHash, &createdAt, &updatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.Email, err = domain.NewEmail(email)
	if err != nil {
		return domain.User{}, fmt.Errorf("sqlite: stored email for user %s: %w", u.ID, err)
	}
	u.BaseSalary, err = domain.NewSalary(baseSalary)
	if err != nil {
		return domain.User{}, fmt.Errorf("sqlite: stored salary for user %s: %w", u.ID, err)
	}
	u.CreatedAt = createdAt
	u.UpdatedAt = updatedAt
	return u, nil
}
