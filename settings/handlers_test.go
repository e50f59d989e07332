package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/user/sitecms-go/apperror"
	"github.com/user/sitecms-go/auth"
)

// fakeSettingsService is an in-memory SettingsService.
type fakeSettingsService struct {
	settings map[string]*Setting
}

func newFakeSettingsService() *fakeSettingsService {
	return &fakeSettingsService{settings: map[string]*Setting{}}
}

func (f *fakeSettingsService) All(ctx context.Context) (map[string]json.RawMessage, error) {
	out := map[string]json.RawMessage{}
	for key, s := range f.settings {
		out[key] = s.Value
	}
	return out, nil
}

func (f *fakeSettingsService) Get(ctx context.Context, key string) (*Setting, error) {
	s, ok := f.settings[key]
	if !ok {
		return nil, apperror.NewNotFoundError("setting not found", nil)
	}
	return s, nil
}

func (f *fakeSettingsService) Upsert(ctx context.Context, req UpsertRequest) (*Setting, bool, error) {
	if req.Key == "" || len(req.Value) == 0 {
		return nil, false, apperror.NewValidationError("key and value are required", nil)
	}
	s, exists := f.settings[req.Key]
	if !exists {
		s = &Setting{Key: req.Key}
		f.settings[req.Key] = s
	}
	s.Value = req.Value
	if req.Description != "" {
		s.Description = req.Description
	}
	s.UpdatedAt = time.Now()
	return s, !exists, nil
}

func (f *fakeSettingsService) Delete(ctx context.Context, key string) error {
	if _, ok := f.settings[key]; !ok {
		return apperror.NewNotFoundError("setting not found", nil)
	}
	delete(f.settings, key)
	return nil
}

type staticVerifier struct{ token string }

func (v *staticVerifier) Verify(tokenString string) (*auth.Claims, error) {
	if tokenString != v.token {
		return nil, auth.ErrTokenSignature
	}
	return &auth.Claims{AdminID: "admin-1"}, nil
}

func newTestRouter(svc SettingsService) http.Handler {
	h := NewHandler(svc, false)
	guard := auth.Middleware(&staticVerifier{token: "valid"}, false)

	r := chi.NewRouter()
	r.Route("/settings", func(r chi.Router) {
		h.RegisterPublicRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(guard)
			h.RegisterAdminRoutes(r)
		})
	})
	return r
}

func upsert(t *testing.T, router http.Handler, payload string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/settings", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer valid")
	router.ServeHTTP(rec, req)
	return rec
}

func TestUpsertCreateThenUpdate(t *testing.T) {
	router := newTestRouter(newFakeSettingsService())

	// First write creates.
	rec := upsert(t, router, `{"key":"site_title","value":"我的网站"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	var body MutationResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "setting created" {
		t.Errorf("message = %q", body.Message)
	}

	// Second write to the same key updates.
	rec = upsert(t, router, `{"key":"site_title","value":"新标题"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body.String())
	}
	body = MutationResponse{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "setting updated" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestUpsertValuesAreArbitraryJSON(t *testing.T) {
	router := newTestRouter(newFakeSettingsService())

	for _, payload := range []string{
		`{"key":"contact","value":{"email":"hi@example.com","phone":"123"}}`,
		`{"key":"max_items","value":25}`,
		`{"key":"features","value":["blog","events"]}`,
	} {
		if rec := upsert(t, router, payload); rec.Code != http.StatusCreated {
			t.Errorf("payload %s: status = %d", payload, rec.Code)
		}
	}
}

func TestUpsertValidation(t *testing.T) {
	router := newTestRouter(newFakeSettingsService())

	for _, payload := range []string{`{"value":"x"}`, `{"key":"k"}`, `{not json`} {
		if rec := upsert(t, router, payload); rec.Code != http.StatusBadRequest {
			t.Errorf("payload %s: status = %d, want 400", payload, rec.Code)
		}
	}
}

func TestUpsertRequiresAuth(t *testing.T) {
	router := newTestRouter(newFakeSettingsService())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/settings", strings.NewReader(`{"key":"k","value":"v"}`))
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAllReturnsFlatObject(t *testing.T) {
	svc := newFakeSettingsService()
	router := newTestRouter(svc)
	upsert(t, router, `{"key":"site_title","value":"我的网站"}`)
	upsert(t, router, `{"key":"max_items","value":25}`)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/settings", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d settings, want 2", len(got))
	}
	if !bytes.Equal(bytes.TrimSpace(got["max_items"]), []byte("25")) {
		t.Errorf("max_items = %s", got["max_items"])
	}
}

func TestGetSetting(t *testing.T) {
	router := newTestRouter(newFakeSettingsService())
	upsert(t, router, `{"key":"site_title","value":"我的网站"}`)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/settings/site_title", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body KeyValueResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Key != "site_title" {
		t.Errorf("key = %q", body.Key)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/settings/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing key status = %d, want 404", rec.Code)
	}
}

func TestDeleteSetting(t *testing.T) {
	router := newTestRouter(newFakeSettingsService())
	upsert(t, router, `{"key":"doomed","value":true}`)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/settings/doomed", nil)
	req.Header.Set("Authorization", "Bearer valid")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/settings/doomed", nil)
	req.Header.Set("Authorization", "Bearer valid")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}
