package events

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/sitecms-go/apperror"
)

// Handler handles HTTP requests for events.
type Handler struct {
	service EventService
	debug   bool
}

// NewHandler creates a new events Handler.
func NewHandler(service EventService, debug bool) *Handler {
	return &Handler{service: service, debug: debug}
}

// RegisterPublicRoutes registers the unauthenticated read endpoints.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.getByID)
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
	published := q.Get("published")
	if published == "" {
		published = "true"
	}
	return ListFilter{
		Category:      q.Get("category"),
		Status:        q.Get("status"),
		PublishedOnly: published == "true",
	}
}

// list godoc
// @Summary List events
// @Tags Events
// @Produce json
// @Param category query string false "Category filter; omit or pass the all-sentinel for every category"
// @Param status query string false "Exact status filter (upcoming|ongoing|completed|cancelled)"
// @Param published query string false "Defaults to true; any other value lists unpublished events too"
// @Success 200 {array} events.Event
// @Failure 500 {object} apperror.ErrorResponse
// @Router /events [get]
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context(), parseListFilter(r))
	if err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, items)
}

// getByID godoc
// @Summary Get a single event
// @Tags Events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} events.Event
// @Failure 404 {object} apperror.ErrorResponse
// @Router /events/{id} [get]
func (h *Handler) getByID(w http.ResponseWriter, r *http.Request) {
	e, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, e)
}

// create godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param eventBody body events.CreateRequest true "Event"
// @Success 201 {object} events.MutationResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Security BearerAuth
// @Router /events [post]
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.WriteError(w, apperror.NewBadRequestError("invalid request body", err), h.debug)
		return
	}
	defer r.Body.Close()

	e, err := h.service.Create(r.Context(), req)
	if err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	apperror.WriteJSON(w, http.StatusCreated, MutationResponse{Message: "event created", Event: e})
}

// update godoc
// @Summary Update an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event id"
// @Param eventBody body events.UpdateRequest true "Fields to update"
// @Success 200 {object} events.MutationResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [put]
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.WriteError(w, apperror.NewBadRequestError("invalid request body", err), h.debug)
		return
	}
	defer r.Body.Close()

	e, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, MutationResponse{Message: "event updated", Event: e})
}

// delete godoc
// @Summary Delete an event
// @Tags Events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} events.MessageResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, MessageResponse{Message: "event deleted"})
}
