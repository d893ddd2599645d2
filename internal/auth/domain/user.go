package domain

import "time"

// User is the persisted account record. Instances are owned by the
// store; the core only ever works with copies. Email and BaseSalary are
// constructible exclusively through their validating factories.
type User struct {
	ID               string
	FirstName        string
	LastName         string
	Email            Email
	IdentityDocument string
	Phone            string
	RoleID           int // Foreign key to roles reference data
	BaseSalary       Salary
	BirthDate        string
	Address          string
	PasswordHash     string // bcrypt encoded
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsZero reports whether the user carries no identity or email at all,
// the closest Go analogue to a null user reference.
func (u User) IsZero() bool {
	return u.ID == "" && u.Email.IsZero() && u.FirstName == "" && u.LastName == ""
}
