package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Permission is a single named capability that can be granted to a role.
// The set of permissions is closed; codes are stable and never reused.
type Permission string

const (
	// User management
	PermissionCreateUser   Permission = "CREATE_USER"
	PermissionViewAllUsers Permission = "VIEW_ALL_USERS"
	PermissionUpdateUser   Permission = "UPDATE_USER"
	PermissionDeleteUser   Permission = "DELETE_USER"

	// Loan applications
	PermissionCreateLoanApplication   Permission = "CREATE_LOAN_APPLICATION"
	PermissionViewOwnLoanApplication  Permission = "VIEW_OWN_LOAN_APPLICATION"
	PermissionViewAllLoanApplications Permission = "VIEW_ALL_LOAN_APPLICATIONS"
	PermissionApproveLoanApplication  Permission = "APPROVE_LOAN_APPLICATION"

	// System
	PermissionViewSystemHealth   Permission = "VIEW_SYSTEM_HEALTH"
	PermissionManageSystemConfig Permission = "MANAGE_SYSTEM_CONFIG"
)

var ErrPermissionCode = errors.New("domain: invalid permission code")

var permissionDescriptions = map[Permission]string{
	PermissionCreateUser:              "Can create new users",
	PermissionViewAllUsers:            "Can view all users in the system",
	PermissionUpdateUser:              "Can update user information",
	PermissionDeleteUser:              "Can delete users",
	PermissionCreateLoanApplication:   "Can create loan applications",
	PermissionViewOwnLoanApplication:  "Can view own loan applications",
	PermissionViewAllLoanApplications: "Can view all loan applications",
	PermissionApproveLoanApplication:  "Can approve loan applications",
	PermissionViewSystemHealth:        "Can view system health information",
	PermissionManageSystemConfig:      "Can manage system configuration",
}

// Permissions returns every known permission. The returned slice is a copy.
func Permissions() []Permission {
	return []Permission{
		PermissionCreateUser,
		PermissionViewAllUsers,
		PermissionUpdateUser,
		PermissionDeleteUser,
		PermissionCreateLoanApplication,
		PermissionViewOwnLoanApplication,
		PermissionViewAllLoanApplications,
		PermissionApproveLoanApplication,
		PermissionViewSystemHealth,
		PermissionManageSystemConfig,
	}
}

// PermissionFromCode resolves a permission by its stable code string.
// Unknown codes are a hard error, not a deny.
func PermissionFromCode(code string) (Permission, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("%w: code cannot be empty", ErrPermissionCode)
	}
	p := Permission(code)
	if _, ok := permissionDescriptions[p]; !ok {
		return "", fmt.Errorf("%w: %s", ErrPermissionCode, code)
	}
	return p, nil
}

// Code returns the stable code string for the permission.
func (p Permission) Code() string { return string(p) }

// Description returns the human-readable description, or "" for an
// unknown permission.
func (p Permission) Description() string { return permissionDescriptions[p] }

// rolePermissions is the fixed role to permission-set table. It is
// initialized once and only ever read, so concurrent access needs no
// synchronization.
var rolePermissions = map[RoleType]map[Permission]struct{}{
	RoleAdmin: permissionSet(
		PermissionCreateUser,
		PermissionViewAllUsers,
		PermissionUpdateUser,
		PermissionDeleteUser,

		// Admins manage loan applications but never create them;
		// applications are created by customers.
		PermissionViewAllLoanApplications,
		PermissionApproveLoanApplication,

		PermissionViewSystemHealth,
		PermissionManageSystemConfig,
	),
	RoleAdvisor: permissionSet(
		PermissionCreateUser,
		PermissionViewAllUsers,
		PermissionUpdateUser,

		PermissionViewAllLoanApplications,
		PermissionApproveLoanApplication,

		PermissionViewSystemHealth,
	),
	RoleCustomer: permissionSet(
		PermissionCreateLoanApplication,
		PermissionViewOwnLoanApplication,
	),
}

func permissionSet(perms ...Permission) map[Permission]struct{} {
	set := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// PermissionsFor returns the permission set granted to a role. Unknown
// roles get an empty set. Order follows the canonical Permissions order.
func PermissionsFor(role RoleType) []Permission {
	set, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]Permission, 0, len(set))
	for _, p := range Permissions() {
		if _, granted := set[p]; granted {
			out = append(out, p)
		}
	}
	return out
}

// HasPermission reports whether the role's fixed permission set contains
// the permission. This is the coarse base grant; ownership refinement is
// applied on top by the authorization engine.
func HasPermission(role RoleType, permission Permission) bool {
	set, ok := rolePermissions[role]
	if !ok {
		return false
	}
	_, granted := set[permission]
	return granted
}
