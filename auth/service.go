// Authentication business logic: first-time setup gating and login. The
// service composes the credential store and the token service; both are
// injected at construction time rather than reached through package globals.
package auth

import (
	"context"

	"github.com/user/sitecms-go/apperror"
)

// AuthService provides setup and login on top of an AdminStore and a
// TokenService.
type AuthService struct {
	store  AdminStore
	tokens *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(store AdminStore, tokens *TokenService) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

// CheckSetup reports whether first-time setup is still needed, i.e. whether
// the admin collection is empty.
func (s *AuthService) CheckSetup(ctx context.Context) (bool, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// Setup creates the first (and only) administrator account and returns a
// token for it. It is permitted only while no admin exists; the store rejects
// any later attempt with a ValidationError no matter the payload.
func (s *AuthService) Setup(ctx context.Context, req SetupRequest) (*TokenResponse, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, apperror.NewValidationError("username, email and password are required", nil)
	}

	admin, err := s.store.CreateFirst(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(admin)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}

	return &TokenResponse{
		Message: "administrator account created",
		Token:   token,
		Admin:   AdminResponse{ID: admin.ID, Username: admin.Username, Email: admin.Email},
	}, nil
}

// Login authenticates an administrator and returns a token. Unknown username
// and wrong password produce the same generic message so the response does
// not reveal which one was wrong.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperror.NewValidationError("username and password are required", nil)
	}

	admin, err := s.store.FindByUsername(ctx, req.Username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewAuthError("invalid username or password", nil)
		}
		return nil, err
	}

	if !VerifyPassword(admin, req.Password) {
		return nil, apperror.NewAuthError("invalid username or password", nil)
	}

	token, err := s.tokens.Issue(admin)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}

	return &TokenResponse{
		Message: "login successful",
		Token:   token,
		Admin:   AdminResponse{ID: admin.ID, Username: admin.Username, Email: admin.Email},
	}, nil
}
