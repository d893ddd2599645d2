package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/crediya/auth/internal/auth/domain"
	"github.com/crediya/auth/internal/auth/service"
	"github.com/crediya/auth/internal/auth/store"
	"github.com/crediya/auth/pkg/httpx"
	"github.com/crediya/auth/pkg/jwtx"
	"github.com/crediya/auth/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	tokens       *jwtx.TokenManager
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	AuthService      *service.AuthService
	UserService      *service.UserService
	AuthorizeService *service.AuthorizeService
}

func NewRouter(
	tokens *jwtx.TokenManager,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		tokens:       tokens,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{AuthService: r.AuthService}

	// POST /login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /api/v1/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	authorizeHandler := &AuthorizeHandler{AuthorizeService: r.AuthorizeService}

	// POST /authorize - decision endpoint for sibling services, requires
	// a valid bearer token but no particular permission: the decision it
	// returns is about the identity named in the request body.
	r.Mux.Handle("POST /api/v1/authorize",
		httpx.Chain(authorizeHandler,
			httpx.AuthnMiddleware(r.tokens),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		UserService:      r.UserService,
		AuthorizeService: r.AuthorizeService,
	}

	r.Mux.Handle("POST /api/v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.tokens),
			RequirePermission(domain.PermissionCreateUser),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /api/v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.tokens),
			RequirePermission(domain.PermissionViewAllUsers),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /api/v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.tokens),
			RequirePermission(domain.PermissionViewAllUsers),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
