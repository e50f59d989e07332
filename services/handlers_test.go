package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/user/sitecms-go/apperror"
	"github.com/user/sitecms-go/auth"
)

// fakeCatalogService mirrors the production service's validation and defaults.
type fakeCatalogService struct {
	items map[string]*Service
}

func newFakeCatalogService() *fakeCatalogService {
	return &fakeCatalogService{items: map[string]*Service{}}
}

func (f *fakeCatalogService) List(ctx context.Context, filter ListFilter) ([]Service, error) {
	out := []Service{}
	for _, item := range f.items {
		if filter.ActiveOnly && !item.Active {
			continue
		}
		if !isAllCategories(filter.Category) && item.Category != filter.Category {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (f *fakeCatalogService) GetByID(ctx context.Context, id string) (*Service, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, apperror.NewNotFoundError("service not found", nil)
	}
	return item, nil
}

func (f *fakeCatalogService) Create(ctx context.Context, req CreateRequest) (*Service, error) {
	if req.Name == "" || req.Description == "" || req.URL == "" || req.Category == "" {
		return nil, apperror.NewValidationError("name, description, url and category are required", nil)
	}
	item := &Service{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
		Icon:        defaultIcon,
		Category:    req.Category,
		Order:       req.Order,
		Active:      true,
		CreatedAt:   time.Now(),
	}
	if req.Icon != "" {
		item.Icon = req.Icon
	}
	if req.Active != nil {
		item.Active = *req.Active
	}
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeCatalogService) Update(ctx context.Context, id string, req UpdateRequest) (*Service, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, apperror.NewNotFoundError("service not found", nil)
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Order != nil {
		item.Order = *req.Order
	}
	if req.Active != nil {
		item.Active = *req.Active
	}
	return item, nil
}

func (f *fakeCatalogService) Delete(ctx context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return apperror.NewNotFoundError("service not found", nil)
	}
	delete(f.items, id)
	return nil
}

type staticVerifier struct{ token string }

func (v *staticVerifier) Verify(tokenString string) (*auth.Claims, error) {
	if tokenString != v.token {
		return nil, auth.ErrTokenSignature
	}
	return &auth.Claims{AdminID: "admin-1"}, nil
}

func newTestRouter(svc CatalogService) http.Handler {
	h := NewHandler(svc, false)
	guard := auth.Middleware(&staticVerifier{token: "valid"}, false)

	r := chi.NewRouter()
	r.Route("/services", func(r chi.Router) {
		h.RegisterPublicRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(guard)
			h.RegisterAdminRoutes(r)
		})
	})
	return r
}

func seedService(t *testing.T, svc *fakeCatalogService, name string, active bool) *Service {
	t.Helper()
	item, err := svc.Create(context.Background(), CreateRequest{
		Name:        name,
		Description: "description",
		URL:         "https://example.com",
		Category:    "设计",
		Active:      &active,
	})
	if err != nil {
		t.Fatalf("seed service: %v", err)
	}
	return item
}

func TestListServicesDefaultsToActive(t *testing.T) {
	svc := newFakeCatalogService()
	seedService(t, svc, "live", true)
	seedService(t, svc, "retired", false)
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []Service
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Name != "live" {
		t.Errorf("listing = %+v, want only the active service", got)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services?active=all", nil))
	got = nil
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("unfiltered listing has %d services, want 2", len(got))
	}
}

func TestCreateService(t *testing.T) {
	router := newTestRouter(newFakeCatalogService())
	payload := `{"name":"Brand design","description":"d","url":"https://example.com","category":"设计"}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/services", strings.NewReader(payload)))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated create status = %d, want 401", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/services", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer valid")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var body MutationResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Service.Icon != defaultIcon {
		t.Errorf("icon = %q, want the default", body.Service.Icon)
	}
	if !body.Service.Active {
		t.Error("active should default to true")
	}
}

func TestUpdateServiceOrder(t *testing.T) {
	svc := newFakeCatalogService()
	item := seedService(t, svc, "svc", true)
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/services/"+item.ID, strings.NewReader(`{"order":5}`))
	req.Header.Set("Authorization", "Bearer valid")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var body MutationResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Service.Order != 5 {
		t.Errorf("order = %d", body.Service.Order)
	}
}

func TestDeleteService(t *testing.T) {
	svc := newFakeCatalogService()
	item := seedService(t, svc, "svc", true)
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/services/"+item.ID, nil)
	req.Header.Set("Authorization", "Bearer valid")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/services/"+item.ID, nil)
	req.Header.Set("Authorization", "Bearer valid")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}
