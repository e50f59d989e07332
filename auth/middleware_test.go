package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// countingVerifier records how often Verify is invoked.
type countingVerifier struct {
	calls  int
	claims *Claims
	err    error
}

func (v *countingVerifier) Verify(tokenString string) (*Claims, error) {
	v.calls++
	return v.claims, v.err
}

// guardedEcho wraps a probe handler in the access guard and returns both.
func guardedEcho(t *testing.T, verifier TokenVerifier) (http.Handler, *string) {
	t.Helper()
	var seenAdminID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenAdminID, _ = AdminIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return Middleware(verifier, false)(next), &seenAdminID
}

func TestMiddlewareMissingHeader(t *testing.T) {
	verifier := &countingVerifier{}
	handler, _ := guardedEcho(t, verifier)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	// Rejection happens before the verifier is consulted.
	if verifier.calls != 0 {
		t.Errorf("verifier invoked %d times for a missing header", verifier.calls)
	}
}

func TestMiddlewareBadScheme(t *testing.T) {
	verifier := &countingVerifier{}
	handler, _ := guardedEcho(t, verifier)

	for _, header := range []string{"Basic dXNlcjpwYXNz", "Bearer", "token abc"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
	if verifier.calls != 0 {
		t.Errorf("verifier invoked %d times for malformed headers", verifier.calls)
	}
}

func TestMiddlewareInvalidToken(t *testing.T) {
	verifier := &countingVerifier{err: ErrTokenExpired}
	handler, _ := guardedEcho(t, verifier)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if verifier.calls != 1 {
		t.Errorf("verifier invoked %d times, want 1", verifier.calls)
	}
}

func TestMiddlewareValidToken(t *testing.T) {
	verifier := &countingVerifier{claims: &Claims{AdminID: "admin-1"}}
	handler, seenAdminID := guardedEcho(t, verifier)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if *seenAdminID != "admin-1" {
		t.Errorf("context admin id = %q", *seenAdminID)
	}
}

func TestMiddlewareSchemeIsCaseInsensitive(t *testing.T) {
	verifier := &countingVerifier{claims: &Claims{AdminID: "admin-1"}}
	handler, _ := guardedEcho(t, verifier)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer valid-token")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for lowercase scheme", rec.Code)
	}
}

func TestMiddlewareWithRealTokenService(t *testing.T) {
	tokens := newTestTokenService(time.Hour)
	handler, seenAdminID := guardedEcho(t, tokens)

	token, err := tokens.Issue(&Admin{ID: "admin-42"})
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if *seenAdminID != "admin-42" {
		t.Errorf("context admin id = %q", *seenAdminID)
	}
}

func TestAdminIDFromContextAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id, ok := AdminIDFromContext(req.Context()); ok || id != "" {
		t.Errorf("AdminIDFromContext on a bare context = %q, %v", id, ok)
	}
}
