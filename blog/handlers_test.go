package blog

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

// fakeBlogService is an in-memory BlogService with the same defaulting and
// merge behavior as the production implementation.
type fakeBlogService struct {
	blogs map[string]*Blog
}

func newFakeBlogService() *fakeBlogService {
	return &fakeBlogService{blogs: map[string]*Blog{}}
}

func (f *fakeBlogService) List(ctx context.Context, filter ListFilter) ([]Blog, error) {
	out := []Blog{}
	for _, b := range f.blogs {
		if filter.PublishedOnly && !b.Published {
			continue
		}
		if !isAllCategories(filter.Category) && b.Category != filter.Category {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBlogService) GetByID(ctx context.Context, id string) (*Blog, error) {
	b, ok := f.blogs[id]
	if !ok {
		return nil, apperror.NewNotFoundError("blog post not found", nil)
	}
	return b, nil
}

func (f *fakeBlogService) Create(ctx context.Context, req CreateRequest) (*Blog, error) {
	if req.Title == "" || req.Excerpt == "" || req.Content == "" || req.Author == "" || req.Category == "" {
		return nil, apperror.NewValidationError("title, excerpt, content, author and category are required", nil)
	}
	b := &Blog{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Author:    req.Author,
		Date:      time.Now(),
		ReadTime:  defaultReadTime,
		Category:  req.Category,
		Tags:      req.Tags,
		Cover:     req.Cover,
		Published: true,
	}
	if req.Published != nil {
		b.Published = *req.Published
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	f.blogs[b.ID] = b
	return b, nil
}

func (f *fakeBlogService) Update(ctx context.Context, id string, req UpdateRequest) (*Blog, error) {
	b, ok := f.blogs[id]
	if !ok {
		return nil, apperror.NewNotFoundError("blog post not found", nil)
	}
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Published != nil {
		b.Published = *req.Published
	}
	b.UpdatedAt = time.Now()
	return b, nil
}

func (f *fakeBlogService) Delete(ctx context.Context, id string) error {
	if _, ok := f.blogs[id]; !ok {
		return apperror.NewNotFoundError("blog post not found", nil)
	}
	delete(f.blogs, id)
	return nil
}

// staticVerifier accepts exactly one token string.
type staticVerifier struct{ token string }

func (v *staticVerifier) Verify(tokenString string) (*auth.Claims, error) {
	if tokenString != v.token {
		return nil, auth.ErrTokenSignature
	}
	return &auth.Claims{AdminID: "admin-1"}, nil
}

// newTestRouter mounts the blog routes the way main does: public reads open,
// mutations behind the access guard.
func newTestRouter(svc BlogService) http.Handler {
	h := NewHandler(svc, false)
	guard := auth.Middleware(&staticVerifier{token: "valid"}, false)

	r := chi.NewRouter()
	r.Route("/blogs", func(r chi.Router) {
		h.RegisterPublicRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(guard)
			h.RegisterAdminRoutes(r)
		})
	})
	return r
}

func seedBlog(t *testing.T, svc *fakeBlogService, title string, published bool) *Blog {
	t.Helper()
	b, err := svc.Create(context.Background(), CreateRequest{
		Title:     title,
		Excerpt:   "excerpt",
		Content:   "content",
		Author:    "author",
		Category:  "新闻",
		Published: &published,
	})
	if err != nil {
		t.Fatalf("seed blog: %v", err)
	}
	return b
}

func TestListBlogsDefaultsToPublished(t *testing.T) {
	svc := newFakeBlogService()
	seedBlog(t, svc, "published post", true)
	seedBlog(t, svc, "draft post", false)
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []Blog
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Title != "published post" {
		t.Errorf("listing = %+v, want only the published post", got)
	}

	// published=all lifts the default filter.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs?published=all", nil))
	got = nil
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("unfiltered listing has %d posts, want 2", len(got))
	}
}

func TestGetBlogByID(t *testing.T) {
	svc := newFakeBlogService()
	b := seedBlog(t, svc, "a post", true)
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs/"+b.ID, nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs/no-such-id", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing id status = %d, want 404", rec.Code)
	}
}

func TestCreateBlogRequiresAuth(t *testing.T) {
	router := newTestRouter(newFakeBlogService())
	payload := `{"title":"t","excerpt":"e","content":"c","author":"a","category":"新闻"}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(payload)))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated create status = %d, want 401", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer wrong")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token create status = %d, want 401", rec.Code)
	}
}

func TestCreateBlog(t *testing.T) {
	router := newTestRouter(newFakeBlogService())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/blogs",
		strings.NewReader(`{"title":"t","excerpt":"e","content":"c","author":"a","category":"新闻"}`))
	req.Header.Set("Authorization", "Bearer valid")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var body MutationResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Blog == nil || body.Blog.ID == "" {
		t.Fatalf("response blog = %+v", body.Blog)
	}
	if !body.Blog.Published {
		t.Error("published should default to true")
	}
	if body.Blog.ReadTime != defaultReadTime {
		t.Errorf("readTime = %q", body.Blog.ReadTime)
	}
}

func TestCreateBlogValidation(t *testing.T) {
	router := newTestRouter(newFakeBlogService())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(`{"title":"only a title"}`))
	req.Header.Set("Authorization", "Bearer valid")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateBlog(t *testing.T) {
	svc := newFakeBlogService()
	b := seedBlog(t, svc, "old title", true)
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/blogs/"+b.ID, strings.NewReader(`{"title":"new title"}`))
	req.Header.Set("Authorization", "Bearer valid")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var body MutationResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Blog.Title != "new title" {
		t.Errorf("title = %q", body.Blog.Title)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/blogs/no-such-id", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Authorization", "Bearer valid")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing id status = %d, want 404", rec.Code)
	}
}

func TestDeleteBlog(t *testing.T) {
	svc := newFakeBlogService()
	b := seedBlog(t, svc, "doomed", true)
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/blogs/"+b.ID, nil)
	req.Header.Set("Authorization", "Bearer valid")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	// Deleting again reports not found.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/blogs/"+b.ID, nil)
	req.Header.Set("Authorization", "Bearer valid")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}
