package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/crediya/auth/internal/auth/domain"
	"github.com/crediya/auth/internal/auth/service"
	"github.com/crediya/auth/pkg/httpx"
	"github.com/crediya/auth/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP authenticates an email/password pair and mints a session
// token. Wrong email and wrong password produce the same 401 body.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email, err := domain.NewEmail(req.Email)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "password is required")
		return
	}

	result, err := h.AuthService.Authenticate(ctx, domain.LoginCredentials{
		Email:    email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
			return
		}
		log.Error("login failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "authentication unavailable")
		return
	}

	log.Info("user authenticated", "user_id", result.UserID, "role", result.Role)
	httpx.WriteJSON(w, http.StatusOK, result)
}
