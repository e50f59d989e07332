// HTTP handlers for the blog endpoints. Public reads are registered without
// the access guard; every mutation is registered behind it in main.
package blog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/sitecms-go/apperror"
)

// Handler handles HTTP requests for blog posts.
type Handler struct {
	service BlogService
	debug   bool
}

// NewHandler creates a new blog Handler.
func NewHandler(service BlogService, debug bool) *Handler {
	return &Handler{service: service, debug: debug}
}

// RegisterPublicRoutes registers the unauthenticated read endpoints.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.getByID)
}

// RegisterAdminRoutes registers the mutating endpoints. The caller mounts
// these behind the access guard; handlers never re-check auth themselves.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

// parseListFilter reads the recognized query parameters. `published` defaults
// to true so the public listing only shows published posts; admin tooling
// passes published=all (or any non-"true" value) explicitly to see drafts.
func parseListFilter(r *http.Request) ListFilter {
	q := r.URL.Query()
	published := q.Get("published")
	if published == "" {
		published = "true"
	}
	return ListFilter{
		Category:      q.Get("category"),
		Search:        q.Get("search"),
		PublishedOnly: published == "true",
	}
}

// list godoc
// @Summary List blog posts
// @Tags Blogs
// @Produce json
// @Param category query string false "Category filter; omit or pass the all-sentinel for every category"
// @Param search query string false "Case-insensitive substring matched against title, excerpt, content and tags"
// @Param published query string false "Defaults to true; any other value lists unpublished posts too"
// @Success 200 {array} blog.Blog
// @Failure 500 {object} apperror.ErrorResponse
// @Router /blogs [get]
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.service.List(r.Context(), parseListFilter(r))
	if err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, blogs)
}

// getByID godoc
// @Summary Get a single blog post
// @Tags Blogs
// @Produce json
// @Param id path string true "Blog post id"
// @Success 200 {object} blog.Blog
// @Failure 404 {object} apperror.ErrorResponse
// @Router /blogs/{id} [get]
func (h *Handler) getByID(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, b)
}

// create godoc
// @Summary Create a blog post
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blogBody body blog.CreateRequest true "Blog post"
// @Success 201 {object} blog.MutationResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Security BearerAuth
// @Router /blogs [post]
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.WriteError(w, apperror.NewBadRequestError("invalid request body", err), h.debug)
		return
	}
	defer r.Body.Close()

	b, err := h.service.Create(r.Context(), req)
	if err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	apperror.WriteJSON(w, http.StatusCreated, MutationResponse{Message: "blog post created", Blog: b})
}

// update godoc
// @Summary Update a blog post
// @Description Partial merge of the provided fields; updatedAt is reset.
// @Tags Blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog post id"
// @Param blogBody body blog.UpdateRequest true "Fields to update"
// @Success 200 {object} blog.MutationResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Security BearerAuth
// @Router /blogs/{id} [put]
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.WriteError(w, apperror.NewBadRequestError("invalid request body", err), h.debug)
		return
	}
	defer r.Body.Close()

	b, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, MutationResponse{Message: "blog post updated", Blog: b})
}

// delete godoc
// @Summary Delete a blog post
// @Tags Blogs
// @Produce json
// @Param id path string true "Blog post id"
// @Success 200 {object} blog.MessageResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Security BearerAuth
// @Router /blogs/{id} [delete]
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, MessageResponse{Message: "blog post deleted"})
}
