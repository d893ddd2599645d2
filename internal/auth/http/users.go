package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/crediya/auth/internal/auth/domain"
	"github.com/crediya/auth/internal/auth/service"
	"github.com/crediya/auth/internal/auth/store"
	"github.com/crediya/auth/pkg/httpx"
	"github.com/crediya/auth/pkg/idx"
	"github.com/crediya/auth/pkg/slogx"
)

type UsersHandler struct {
	UserService      *service.UserService
	AuthorizeService *service.AuthorizeService
}

type createUserRequest struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	IdentityDocument string `json:"identity_document"`
	Phone            string `json:"phone"`
	RoleID           int    `json:"role_id"`
	BaseSalary       string `json:"base_salary"`
	BirthDate        string `json:"birth_date"`
	Address          string `json:"address"`
	Password         string `json:"password"`
}

// userResponse is the outward shape of a user. The password hash never
// leaves the service.
type userResponse struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	IdentityDocument string    `json:"identity_document,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	RoleID           int       `json:"role_id"`
	BaseSalary       string    `json:"base_salary,omitempty"`
	BirthDate        string    `json:"birth_date,omitempty"`
	Address          string    `json:"address,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:               u.ID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email.String(),
		IdentityDocument: u.IdentityDocument,
		Phone:            u.Phone,
		RoleID:           u.RoleID,
		BaseSalary:       u.BaseSalary.String(),
		BirthDate:        u.BirthDate,
		Address:          u.Address,
		CreatedAt:        u.CreatedAt,
	}
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationErrorBody struct {
	Timestamp time.Time    `json:"timestamp"`
	Status    int          `json:"status"`
	Error     string       `json:"error"`
	Message   string       `json:"message"`
	Errors    []fieldError `json:"errors"`
}

func writeValidationErrors(w http.ResponseWriter, errs []fieldError) {
	httpx.WriteJSON(w, http.StatusBadRequest, validationErrorBody{
		Timestamp: time.Now().UTC(),
		Status:    http.StatusBadRequest,
		Error:     http.StatusText(http.StatusBadRequest),
		Message:   "validation failed",
		Errors:    errs,
	})
}

// HandleCreate registers a new user.
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var errs []fieldError
	if req.FirstName == "" {
		errs = append(errs, fieldError{Field: "first_name", Message: "first name is required"})
	}
	if req.LastName == "" {
		errs = append(errs, fieldError{Field: "last_name", Message: "last name is required"})
	}
	if req.Password == "" {
		errs = append(errs, fieldError{Field: "password", Message: "password is required"})
	}

	email, err := domain.NewEmail(req.Email)
	if err != nil {
		errs = append(errs, fieldError{Field: "email", Message: err.Error()})
	}
	salary, err := domain.NewSalary(req.BaseSalary)
	if err != nil {
		errs = append(errs, fieldError{Field: "base_salary", Message: err.Error()})
	}
	if len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	user := domain.User{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            email,
		IdentityDocument: req.IdentityDocument,
		Phone:            req.Phone,
		RoleID:           req.RoleID,
		BaseSalary:       salary,
		BirthDate:        req.BirthDate,
		Address:          req.Address,
		PasswordHash:     req.Password, // plaintext here, hashed by the service
	}

	created, err := h.UserService.Register(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			writeValidationErrors(w, []fieldError{{Field: "role_id", Message: service.ErrInvalidRole.Error()}})
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteError(w, http.StatusConflict, service.ErrEmailTaken.Error())
		default:
			log.Error("user registration failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, "registration unavailable")
		}
		return
	}

	log.Info("user registered",
		"user_id", created.ID,
		"role_id", created.RoleID,
		"created_by", httpx.UserIDFromContext(ctx),
	)
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(created))
}

// HandleGet returns one user by id. Malformed ids and unknown ids are
// both a 404 so callers cannot distinguish them.
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "user not found")
		return
	}

	user, err := h.UserService.GetByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Error("failed to fetch user", "error", err, "user_id", id.String())
		httpx.WriteError(w, http.StatusInternalServerError, "failed to retrieve user")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleList returns every registered user.
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.ListAll(ctx)
	if err != nil {
		log.Error("failed to list users", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to retrieve users")
		return
	}

	response := struct {
		Users []userResponse `json:"users"`
	}{Users: make([]userResponse, len(users))}

	for i, u := range users {
		response.Users[i] = toUserResponse(u)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
