package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/crediya/auth/internal/auth/domain"
	"github.com/crediya/auth/internal/auth/store"
	"github.com/crediya/auth/pkg/slogx"
)

// Denial reasons. Safe to log and to return in a 403 body; they name
// the rule that fired, never system internals.
const (
	reasonInvalidContext      = "Invalid authorization context"
	reasonRoleLacksPermission = "Role %s does not have permission %s"
	reasonLoanSelfOnly        = "Customers can only create loan applications for themselves"
	reasonViewOwnLoanOnly     = "Users can only view their own loan applications"
	reasonInsufficient        = "Insufficient permissions to perform this action"
	reasonInvalidRoleID       = "Invalid role ID: %d"
	reasonInvalidRoleName     = "Invalid role name: %s"
)

// AuthorizeService is the authorization decision engine. Decisions are
// result values; the error return is reserved for collaborator
// (store) failures and is never used to signal a deny.
type AuthorizeService struct {
	Store store.Store
}

// Authorize resolves the role id through the role collaborator and then
// evaluates the permission. Unresolvable role ids and unknown role
// names degrade into deny results rather than errors: authorization
// must fail closed, not crash the request.
func (s *AuthorizeService) Authorize(
	ctx context.Context,
	userID string,
	roleID int,
	permission domain.Permission,
	targetResourceID string,
) (domain.AuthorizationResult, error) {
	if userID == "" || roleID == 0 || permission == "" {
		return domain.Denied(permission, reasonInvalidContext), nil
	}

	role, err := s.Store.Roles().GetRoleByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Denied(permission, fmt.Sprintf(reasonInvalidRoleID, roleID)), nil
		}
		return domain.AuthorizationResult{}, err
	}

	roleType, err := domain.RoleTypeFromName(role.Name)
	if err != nil {
		// Reference data names a role the model does not know. A data
		// problem, but at this boundary it must become a deny.
		slogx.FromContext(ctx).Error("unknown role name in reference data",
			"role_id", roleID, "role_name", role.Name)
		return domain.Denied(permission, fmt.Sprintf(reasonInvalidRoleName, role.Name)), nil
	}

	authCtx := domain.AuthorizationContext{
		UserID:           userID,
		Role:             roleType,
		TargetResourceID: targetResourceID,
	}
	return Evaluate(authCtx, permission), nil
}

// Evaluate runs the two-phase check: the coarse role-permission grant,
// then the per-permission ownership refinement. Pure and synchronous;
// safe for concurrent use.
func Evaluate(authCtx domain.AuthorizationContext, permission domain.Permission) domain.AuthorizationResult {
	if authCtx.UserID == "" || !authCtx.Role.Valid() || permission == "" {
		return domain.Denied(permission, reasonInvalidContext)
	}

	if !domain.HasPermission(authCtx.Role, permission) {
		return domain.Denied(permission,
			fmt.Sprintf(reasonRoleLacksPermission, authCtx.Role.Name(), permission.Code()))
	}

	return applyBusinessRules(authCtx, permission)
}

// applyBusinessRules refines a base grant with ownership rules. New
// permissions default to role-only checks and opt in here selectively.
func applyBusinessRules(authCtx domain.AuthorizationContext, permission domain.Permission) domain.AuthorizationResult {
	switch permission {
	case domain.PermissionCreateLoanApplication:
		// Customers may only create loan applications for themselves.
		// An absent target means self-targeting.
		if authCtx.HasRole(domain.RoleCustomer) && authCtx.TargetResourceID != "" {
			if !authCtx.IsOwnerOf(authCtx.TargetResourceID) {
				return domain.Denied(permission, reasonLoanSelfOnly)
			}
		}

	case domain.PermissionViewOwnLoanApplication:
		// Administrative roles bypass the ownership check entirely.
		if !authCtx.IsAdministrative() && authCtx.TargetResourceID != "" {
			if !authCtx.IsOwnerOf(authCtx.TargetResourceID) {
				return domain.Denied(permission, reasonViewOwnLoanOnly)
			}
		}

	case domain.PermissionUpdateUser, domain.PermissionDeleteUser:
		// Customers may only touch their own profile. Unreachable under
		// the current grant table (customers hold neither permission)
		// but kept so a future self-service grant stays safe.
		if authCtx.HasRole(domain.RoleCustomer) && authCtx.TargetResourceID != "" {
			if !authCtx.IsOwnerOf(authCtx.TargetResourceID) {
				return domain.Denied(permission, reasonInsufficient)
			}
		}
	}

	return domain.Granted(permission)
}

// Convenience wrappers for the most common checks.

func (s *AuthorizeService) CanCreateUser(ctx context.Context, userID string, roleID int) (bool, error) {
	res, err := s.Authorize(ctx, userID, roleID, domain.PermissionCreateUser, "")
	return res.Authorized, err
}

func (s *AuthorizeService) CanViewAllUsers(ctx context.Context, userID string, roleID int) (bool, error) {
	res, err := s.Authorize(ctx, userID, roleID, domain.PermissionViewAllUsers, "")
	return res.Authorized, err
}

func (s *AuthorizeService) CanCreateLoanApplication(ctx context.Context, userID string, roleID int, targetUserID string) (bool, error) {
	res, err := s.Authorize(ctx, userID, roleID, domain.PermissionCreateLoanApplication, targetUserID)
	return res.Authorized, err
}

func (s *AuthorizeService) CanViewLoanApplication(ctx context.Context, userID string, roleID int, ownerUserID string) (bool, error) {
	res, err := s.Authorize(ctx, userID, roleID, domain.PermissionViewOwnLoanApplication, ownerUserID)
	return res.Authorized, err
}

func (s *AuthorizeService) CanUpdateUser(ctx context.Context, userID string, roleID int, targetUserID string) (bool, error) {
	res, err := s.Authorize(ctx, userID, roleID, domain.PermissionUpdateUser, targetUserID)
	return res.Authorized, err
}

func (s *AuthorizeService) CanDeleteUser(ctx context.Context, userID string, roleID int, targetUserID string) (bool, error) {
	res, err := s.Authorize(ctx, userID, roleID, domain.PermissionDeleteUser, targetUserID)
	return res.Authorized, err
}
