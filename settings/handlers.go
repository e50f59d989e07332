package settings

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/sitecms-go/apperror"
)

// Handler handles HTTP requests for site settings.
type Handler struct {
	service SettingsService
	debug   bool
}

// NewHandler creates a new settings Handler.
func NewHandler(service SettingsService, debug bool) *Handler {
	return &Handler{service: service, debug: debug}
}

// RegisterPublicRoutes registers the unauthenticated read endpoints.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.all)
	r.Get("/{key}", h.get)
}

// RegisterAdminRoutes registers the mutating endpoints; mounted behind the
// access guard in main.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/", h.upsert)
	r.Delete("/{key}", h.delete)
}

// all godoc
// @Summary List all settings as one object
// @Tags Settings
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} apperror.ErrorResponse
// @Router /settings [get]
func (h *Handler) all(w http.ResponseWriter, r *http.Request) {
	values, err := h.service.All(r.Context())
	if err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, values)
}

// get godoc
// @Summary Get one setting by key
// @Tags Settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} settings.KeyValueResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /settings/{key} [get]
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	setting, err := h.service.Get(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, KeyValueResponse{Key: setting.Key, Value: setting.Value})
}

// upsert godoc
// @Summary Create or update a setting by key
// @Tags Settings
// @Accept json
// @Produce json
// @Param settingBody body settings.UpsertRequest true "Setting"
// @Success 200 {object} settings.MutationResponse "Updated"
// @Success 201 {object} settings.MutationResponse "Created"
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Security BearerAuth
// @Router /settings [post]
func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.WriteError(w, apperror.NewBadRequestError("invalid request body", err), h.debug)
		return
	}
	defer r.Body.Close()

	setting, created, err := h.service.Upsert(r.Context(), req)
	if err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	status := http.StatusOK
	message := "setting updated"
	if created {
		status = http.StatusCreated
		message = "setting created"
	}
	apperror.WriteJSON(w, status, MutationResponse{Message: message, Setting: setting})
}

// delete godoc
// @Summary Delete a setting by key
// @Tags Settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} settings.MessageResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Security BearerAuth
// @Router /settings/{key} [delete]
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "key")); err != nil {
		apperror.WriteError(w, err, h.debug)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, MessageResponse{Message: "setting deleted"})
}
