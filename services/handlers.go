package services

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/sitecms-go/apperror"
)

// Handler handles HTTP requests for the service catalog.
type Handler struct {
	service CatalogService
	debug   bool
}

// NewHandler creates a new services Handler.
func NewHandler(service CatalogService, debug bool) *Handler {
	return &Handler{service: service, debug: debug}
}

// RegisterPublicRoutes registers the unauthenticated read endpoint. The
// catalog exposes no public single-entry fetch; the SPA always renders the
// whole list.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.list)
}

// RegisterAdminRoutes registers the mutating endpoints; mounted behind the
// access guard in main.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func parseListFilter(r *http.Request) ListFilter {
	q := r.URL.Query()
	active := q.Get("active")
	if active == "" {
		active = "true"
	}
	return ListFilter{
		Category:   q.Get("category"),
		ActiveOnly: active == "true",
	}
}

// list godoc
// @Summary List services
// @Tags Services
// @Produce json
// @Param category query string false "Category filter; omit or pass the all-sentinel for every category"
// @Param active query string false "Defaults to true; any other value lists inactive services too"
// @Success 200 {array} services.Service
// @Failure 500 {object} apperror.ErrorResponse
// @Router /services [get]
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context(), parseListFilter(r))
	if err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, items)
}

// create godoc
// @Summary Create a service
// @Tags Services
// @Accept json
// @Produce json
// @Param serviceBody body services.CreateRequest true "Service"
// @Success 201 {object} services.MutationResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Security BearerAuth
// @Router /services [post]
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.WriteError(w, apperror.NewBadRequestError("invalid request body", err), h.debug)
		return
	}
	defer r.Body.Close()

	item, err := h.service.Create(r.Context(), req)
	if err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	apperror.WriteJSON(w, http.StatusCreated, MutationResponse{Message: "service created", Service: item})
}

// update godoc
// @Summary Update a service
// @Tags Services
// @Accept json
// @Produce json
// @Param id path string true "Service id"
// @Param serviceBody body services.UpdateRequest true "Fields to update"
// @Success 200 {object} services.MutationResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Security BearerAuth
// @Router /services/{id} [put]
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.WriteError(w, apperror.NewBadRequestError("invalid request body", err), h.debug)
		return
	}
	defer r.Body.Close()

	item, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, MutationResponse{Message: "service updated", Service: item})
}

// delete godoc
// @Summary Delete a service
// @Tags Services
// @Produce json
// @Param id path string true "Service id"
// @Success 200 {object} services.MessageResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Security BearerAuth
// @Router /services/{id} [delete]
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, MessageResponse{Message: "service deleted"})
}
