package http

import (
	"net/http"

	"github.com/crediya/auth/internal/auth/domain"
	"github.com/crediya/auth/pkg/httpx"
	"github.com/crediya/auth/pkg/slogx"
)

// RequirePermission gates a route behind the role-permission table.
// Must run after AuthnMiddleware so the role name is on the context.
func RequirePermission(permission domain.Permission) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			roleName := httpx.RoleFromContext(ctx)
			role, err := domain.RoleTypeFromName(roleName)
			if err != nil {
				log.Warn("rejecting token with unknown role", "role", roleName)
				httpx.WriteError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			if !domain.HasPermission(role, permission) {
				log.Warn("permission denied",
					"user_id", httpx.UserIDFromContext(ctx),
					"role", roleName,
					"permission", permission.Code(),
				)
				httpx.WriteError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
