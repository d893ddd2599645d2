package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// expectedGrants mirrors the seeded role/permission matrix. Keeping the
// literal table in the test guards against accidental edits to the
// production map.
var expectedGrants = map[RoleType][]Permission{
	RoleAdmin: {
		PermissionCreateUser,
		PermissionViewAllUsers,
		PermissionUpdateUser,
		PermissionDeleteUser,
		PermissionViewAllLoanApplications,
		PermissionApproveLoanApplication,
		PermissionViewSystemHealth,
		PermissionManageSystemConfig,
	},
	RoleAdvisor: {
		PermissionCreateUser,
		PermissionViewAllUsers,
		PermissionUpdateUser,
		PermissionViewAllLoanApplications,
		PermissionApproveLoanApplication,
		PermissionViewSystemHealth,
	},
	RoleCustomer: {
		PermissionCreateLoanApplication,
		PermissionViewOwnLoanApplication,
	},
}

func TestHasPermissionMatrix(t *testing.T) {
	t.Parallel()

	for _, role := range RoleTypes() {
		granted := make(map[Permission]bool, len(expectedGrants[role]))
		for _, p := range expectedGrants[role] {
			granted[p] = true
		}

		for _, p := range Permissions() {
			require.Equal(t, granted[p], HasPermission(role, p),
				"role %s permission %s", role.Name(), p.Code())
		}
	}
}

func TestPermissionsFor(t *testing.T) {
	t.Parallel()

	t.Run("matches matrix", func(t *testing.T) {
		for role, want := range expectedGrants {
			require.ElementsMatch(t, want, PermissionsFor(role), "role %s", role.Name())
		}
	})

	t.Run("unknown role gets empty set", func(t *testing.T) {
		require.Empty(t, PermissionsFor(RoleType(0)))
		require.Empty(t, PermissionsFor(RoleType(99)))
	})

	t.Run("unknown role never has a permission", func(t *testing.T) {
		for _, p := range Permissions() {
			require.False(t, HasPermission(RoleType(0), p))
		}
	})
}

func TestPermissionFromCode(t *testing.T) {
	t.Parallel()

	t.Run("resolves every known code", func(t *testing.T) {
		for _, p := range Permissions() {
			got, err := PermissionFromCode(p.Code())
			require.NoError(t, err)
			require.Equal(t, p, got)
		}
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		got, err := PermissionFromCode("  CREATE_USER  ")
		require.NoError(t, err)
		require.Equal(t, PermissionCreateUser, got)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := PermissionFromCode("")
		require.ErrorIs(t, err, ErrPermissionCode)

		_, err = PermissionFromCode("   ")
		require.ErrorIs(t, err, ErrPermissionCode)
	})

	t.Run("rejects unknown code", func(t *testing.T) {
		_, err := PermissionFromCode("LAUNCH_MISSILES")
		require.ErrorIs(t, err, ErrPermissionCode)
	})
}

func TestPermissionDescriptions(t *testing.T) {
	t.Parallel()

	for _, p := range Permissions() {
		require.NotEmpty(t, p.Description(), "permission %s", p.Code())
	}
	require.Empty(t, Permission("NOPE").Description())
}
