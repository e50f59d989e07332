// Access guard middleware. It is the sole authentication gate: every mutating
// route is registered behind it and no handler re-checks auth on its own.
package auth

import (
	"net/http"
	"strings"

	"github.com/user/sitecms-go/apperror"
)

// TokenVerifier verifies a bearer token string. *TokenService satisfies it;
// tests substitute fakes.
type TokenVerifier interface {
	Verify(tokenString string) (*Claims, error)
}

// Middleware returns the access guard. It extracts the bearer token from the
// Authorization header; when the header is absent the request is rejected
// before the verifier is ever invoked. On a valid token the resolved admin
// identity is attached to the request context for downstream handlers.
func Middleware(verifier TokenVerifier, debug bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apperror.WriteError(w, apperror.NewAuthError("authorization header is missing", nil), debug)
				return
			}

			// Expected format: "Bearer {token}".
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				apperror.WriteError(w, apperror.NewAuthError("authorization header format must be Bearer {token}", nil), debug)
				return
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				// Malformed, bad signature and expired all collapse to 401.
				apperror.WriteError(w, apperror.NewAuthError("invalid or expired token", err), debug)
				return
			}

			ctx := NewContextWithAdminID(r.Context(), claims.AdminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
