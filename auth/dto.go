// Package auth, request/response payloads for the authentication endpoints.
// These are explicit schemas validated at the boundary before any business
// logic runs.
package auth

// SetupRequest is the payload for first-time administrator setup.
type SetupRequest struct {
	Username string `json:"username" example:"admin"`
	Email    string `json:"email" example:"admin@example.com"`
	Password string `json:"password" example:"strongpassword123"`
}

// LoginRequest is the payload for administrator login.
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"strongpassword123"`
}

// AdminResponse is the public view of an administrator account.
type AdminResponse struct {
	ID       string `json:"id"`
	Username string `json:"username" example:"admin"`
	Email    string `json:"email" example:"admin@example.com"`
}

// TokenResponse is returned on successful setup or login.
type TokenResponse struct {
	Message string        `json:"message" example:"login successful"`
	Token   string        `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Admin   AdminResponse `json:"admin"`
}

// CheckSetupResponse reports whether first-time setup is still pending.
type CheckSetupResponse struct {
	NeedsSetup bool `json:"needsSetup" example:"true"`
}
