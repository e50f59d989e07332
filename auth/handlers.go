// HTTP handlers for the authentication endpoints. Handlers decode and
// validate the request, delegate to the service, and translate every failure
// through apperror.
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/user/sitecms-go/apperror"
)

// Handlers wraps the AuthService to provide HTTP handlers.
type Handlers struct {
	service *AuthService
	debug   bool
}

// NewHandlers creates a new Handlers instance. debug controls whether error
// responses include underlying detail; production passes false.
func NewHandlers(service *AuthService, debug bool) *Handlers {
	return &Handlers{service: service, debug: debug}
}

// HandleCheckSetup godoc
// @Summary Check whether first-time setup is needed
// @Description Returns whether an administrator account already exists.
// @Tags Auth
// @Produce json
// @Success 200 {object} auth.CheckSetupResponse
// @Failure 500 {object} apperror.ErrorResponse
// @Router /auth/check-setup [get]
func (h *Handlers) HandleCheckSetup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		needsSetup, err := h.service.CheckSetup(r.Context())
		if err != nil {
			apperror.WriteError(w, err, h.debug)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, CheckSetupResponse{NeedsSetup: needsSetup})
	}
}

// HandleSetup godoc
// @Summary First-time administrator setup
// @Description Creates the administrator account. Rejected once an admin exists.
// @Tags Auth
// @Accept json
// @Produce json
// @Param setupBody body auth.SetupRequest true "Administrator account details"
// @Success 201 {object} auth.TokenResponse
// @Failure 400 {object} apperror.ErrorResponse "Missing fields or admin already exists"
// @Failure 500 {object} apperror.ErrorResponse
// @Router /auth/setup [post]
func (h *Handlers) HandleSetup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, apperror.NewBadRequestError("invalid request body", err), h.debug)
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Setup(r.Context(), req)
		if err != nil {
			apperror.WriteError(w, err, h.debug)
			return
		}
		apperror.WriteJSON(w, http.StatusCreated, resp)
	}
}

// HandleLogin godoc
// @Summary Administrator login
// @Description Authenticates an administrator and returns a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "Administrator credentials"
// @Success 200 {object} auth.TokenResponse
// @Failure 400 {object} apperror.ErrorResponse "Missing fields"
// @Failure 401 {object} apperror.ErrorResponse "Invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse
// @Router /auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, apperror.NewBadRequestError("invalid request body", err), h.debug)
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			apperror.WriteError(w, err, h.debug)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, resp)
	}
}
