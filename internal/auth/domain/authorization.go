package domain

// AuthorizationContext is the request-scoped bundle an authorization
// decision is made against. It is built from validated token claims and
// discarded when the request completes; never shared across requests.
type AuthorizationContext struct {
	UserID string
	Role   RoleType

	// TargetResourceID optionally names the entity being acted upon
	// (e.g. the user that owns a loan application) for ownership checks.
	TargetResourceID string

	// ClientIP is optional, carried for audit logging only.
	ClientIP string
}

// HasRole reports whether the context carries exactly the expected role.
func (c AuthorizationContext) HasRole(expected RoleType) bool {
	return c.Role.Valid() && c.Role == expected
}

// HasAnyRole reports whether the context carries one of the expected roles.
func (c AuthorizationContext) HasAnyRole(expected ...RoleType) bool {
	if !c.Role.Valid() {
		return false
	}
	for _, r := range expected {
		if c.Role == r {
			return true
		}
	}
	return false
}

// IsOwnerOf reports whether the acting user owns the given resource.
func (c AuthorizationContext) IsOwnerOf(resourceID string) bool {
	return c.UserID != "" && c.UserID == resourceID
}

// IsAdministrative reports whether the role bypasses ownership checks.
func (c AuthorizationContext) IsAdministrative() bool {
	return c.Role.Valid() && c.Role.HasAdministrativeAccess()
}

// CanAccessResource reports whether the user may touch the resource
// either by ownership or by administrative role.
func (c AuthorizationContext) CanAccessResource(resourceID string) bool {
	return c.IsAdministrative() || c.IsOwnerOf(resourceID)
}

// AuthorizationResult is the outcome of one authorization check. Denials
// are values, never errors; Reason is populated only on denial and is
// safe to log but not meant to leak internals to end users.
type AuthorizationResult struct {
	Authorized bool
	Permission Permission
	Reason     string
}

// Granted builds an allow result for the permission.
func Granted(permission Permission) AuthorizationResult {
	return AuthorizationResult{Authorized: true, Permission: permission}
}

// Denied builds a deny result carrying a diagnostic reason.
func Denied(permission Permission, reason string) AuthorizationResult {
	return AuthorizationResult{Permission: permission, Reason: reason}
}

// IsDenied reports the negative outcome.
func (r AuthorizationResult) IsDenied() bool { return !r.Authorized }
