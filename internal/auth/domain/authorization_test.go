package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthorizationContextOwnership(t *testing.T) {
	t.Parallel()

	ctx := AuthorizationContext{UserID: "user-1", Role: RoleCustomer}

	require.True(t, ctx.IsOwnerOf("user-1"))
	require.False(t, ctx.IsOwnerOf("user-2"))
	require.False(t, ctx.IsOwnerOf(""))

	empty := AuthorizationContext{}
	require.False(t, empty.IsOwnerOf(""))
}

func TestAuthorizationContextRoles(t *testing.T) {
	t.Parallel()

	ctx := AuthorizationContext{UserID: "user-1", Role: RoleAdvisor}

	require.True(t, ctx.HasRole(RoleAdvisor))
	require.False(t, ctx.HasRole(RoleAdmin))
	require.True(t, ctx.HasAnyRole(RoleAdmin, RoleAdvisor))
	require.False(t, ctx.HasAnyRole())
	require.False(t, AuthorizationContext{}.HasAnyRole(RoleAdmin))
}

func TestAuthorizationContextAdministrative(t *testing.T) {
	t.Parallel()

	require.True(t, AuthorizationContext{Role: RoleAdmin}.IsAdministrative())
	require.True(t, AuthorizationContext{Role: RoleAdvisor}.IsAdministrative())
	require.False(t, AuthorizationContext{Role: RoleCustomer}.IsAdministrative())
	require.False(t, AuthorizationContext{}.IsAdministrative())
}

func TestCanAccessResource(t *testing.T) {
	t.Parallel()

	admin := AuthorizationContext{UserID: "admin-1", Role: RoleAdmin}
	customer := AuthorizationContext{UserID: "cust-1", Role: RoleCustomer}

	require.True(t, admin.CanAccessResource("anyone"))
	require.True(t, customer.CanAccessResource("cust-1"))
	require.False(t, customer.CanAccessResource("cust-2"))
}

func TestAuthorizationResultInvariants(t *testing.T) {
	t.Parallel()

	granted := Granted(PermissionCreateUser)
	require.True(t, granted.Authorized)
	require.False(t, granted.IsDenied())
	require.Equal(t, PermissionCreateUser, granted.Permission)
	require.Empty(t, granted.Reason, "granted results must carry no reason")

	denied := Denied(PermissionDeleteUser, "no")
	require.False(t, denied.Authorized)
	require.True(t, denied.IsDenied())
	require.Equal(t, "no", denied.Reason)
}
