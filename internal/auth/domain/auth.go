package domain

import "time"

// LoginCredentials is the inbound email/password pair for login.
type LoginCredentials struct {
	Email    Email
	Password string
}

// AuthenticationResult is what a successful login returns: a signed
// bearer token plus the identity it was minted for.
type AuthenticationResult struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}
