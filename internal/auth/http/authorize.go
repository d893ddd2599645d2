package http

import (
	"encoding/json"
	"net/http"

	"github.com/crediya/auth/internal/auth/domain"
	"github.com/crediya/auth/internal/auth/service"
	"github.com/crediya/auth/pkg/httpx"
	"github.com/crediya/auth/pkg/slogx"
)

// AuthorizeHandler exposes the authorization engine as an explicit
// decision endpoint for sibling services. A deny is a 200 with
// authorized=false; HTTP errors are reserved for malformed requests
// and engine failures.
type AuthorizeHandler struct {
	AuthorizeService *service.AuthorizeService
}

type authorizeRequest struct {
	UserID           string `json:"user_id"`
	RoleID           int    `json:"role_id"`
	Permission       string `json:"permission"`
	TargetResourceID string `json:"target_resource_id,omitempty"`
}

type authorizeResponse struct {
	Authorized bool   `json:"authorized"`
	Permission string `json:"permission"`
	Reason     string `json:"reason,omitempty"`
}

func (h *AuthorizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	permission, err := domain.PermissionFromCode(req.Permission)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.AuthorizeService.Authorize(ctx, req.UserID, req.RoleID, permission, req.TargetResourceID)
	if err != nil {
		log.Error("authorization check failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "authorization unavailable")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authorizeResponse{
		Authorized: result.Authorized,
		Permission: result.Permission.Code(),
		Reason:     result.Reason,
	})
}
