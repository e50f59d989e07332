// Token service: issues and verifies the signed bearer tokens that carry an
// administrator identity. Tokens are stateless; validity is purely a function
// of the signature and the expiry claim, never a store lookup.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/sitecms-go/config"
)

const tokenIssuer = "sitecms"

// Verification failure modes. The middleware maps any of these to a 401; the
// distinction exists for logging and for tests.
var (
	// ErrTokenMalformed means the token string could not be parsed at all.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenSignature means the signature does not match the secret key.
	ErrTokenSignature = errors.New("token signature is invalid")
	// ErrTokenExpired means the token is past its expiry claim.
	ErrTokenExpired = errors.New("token has expired")
)

// Claims is the JWT payload: the admin identifier plus the registered claims
// (issued-at, expiry and so on).
type Claims struct {
	AdminID string `json:"admin_id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HMAC-signed bearer tokens. The secret key
// and token lifetime come from configuration.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenService creates a TokenService from the auth configuration.
func NewTokenService(cfg config.AuthConfig) *TokenService {
	return &TokenService{
		secret:   []byte(cfg.JWTSecret),
		lifetime: cfg.TokenDuration,
	}
}

// Issue produces a signed token embedding the admin's identifier and issuance
// time, with the configured expiry.
func (t *TokenService) Issue(admin *Admin) (string, error) {
	now := time.Now()
	claims := &Claims{
		AdminID: admin.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   admin.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string. It is a pure function of the
// token and the secret key: no external lookup happens. Failures are reported
// as ErrTokenMalformed, ErrTokenSignature or ErrTokenExpired.
func (t *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Only HMAC is acceptable; anything else is an attempted algorithm
		// confusion (e.g. alg=none) and fails the signature check.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrTokenMalformed
		}
	}

	if !token.Valid || claims.AdminID == "" {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
