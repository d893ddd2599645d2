package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// RoleType identifies one of the closed set of roles. The id and name
// form a fixed bijection that matches the seeded reference data.
type RoleType int

const (
	RoleCustomer RoleType = 1
	RoleAdvisor  RoleType = 2
	RoleAdmin    RoleType = 3
)

var (
	ErrRoleID   = errors.New("domain: invalid role id")
	ErrRoleName = errors.New("domain: invalid role name")
)

var roleNames = map[RoleType]string{
	RoleCustomer: "CUSTOMER",
	RoleAdvisor:  "ADVISOR",
	RoleAdmin:    "ADMIN",
}

var roleDescriptions = map[RoleType]string{
	RoleCustomer: "Customer with limited access to own resources",
	RoleAdvisor:  "Financial advisor with user management access",
	RoleAdmin:    "System administrator with full access",
}

// RoleTypes returns the closed enumeration in id order.
func RoleTypes() []RoleType {
	return []RoleType{RoleCustomer, RoleAdvisor, RoleAdmin}
}

// RoleTypeFromID resolves a role by its numeric id. Unknown ids are a
// hard error; the authorization boundary degrades it into a deny.
func RoleTypeFromID(id int) (RoleType, error) {
	rt := RoleType(id)
	if _, ok := roleNames[rt]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrRoleID, id)
	}
	return rt, nil
}

// RoleTypeFromName resolves a role by its name, case-insensitively and
// ignoring surrounding whitespace.
func RoleTypeFromName(name string) (RoleType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: name cannot be empty", ErrRoleName)
	}
	for rt, n := range roleNames {
		if strings.EqualFold(n, name) {
			return rt, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrRoleName, name)
}

// ID returns the numeric id of the role.
func (r RoleType) ID() int { return int(r) }

// Name returns the canonical role name, or "" for an unknown role.
func (r RoleType) Name() string { return roleNames[r] }

// Description returns the seeded human description.
func (r RoleType) Description() string { return roleDescriptions[r] }

// Valid reports whether the value is one of the known roles.
func (r RoleType) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// HasAdministrativeAccess reports whether the role bypasses ownership
// checks (ADMIN and ADVISOR do).
func (r RoleType) HasAdministrativeAccess() bool {
	return r == RoleAdmin || r == RoleAdvisor
}

// Role is the seeded reference record as stored. It is read-only to the
// core; authorization logic never creates roles.
type Role struct {
	ID          int
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
