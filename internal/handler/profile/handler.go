package profile

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adesai/chatwave/backend/internal/model/profile"
	"github.com/adesai/chatwave/backend/pkg/utils"
)

// Handler serves the user profile and app settings.
type Handler struct {
	prefs *profile.Store
}

// New creates the profile handler.
func New(prefs *profile.Store) *Handler {
	return &Handler{prefs: prefs}
}

// RegisterRoutes mounts the profile and settings routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/profile", h.handleGetProfile)
	r.Put("/profile", h.handleUpdateProfile)
	r.Get("/settings", h.handleGetSettings)
	r.Put("/settings", h.handleUpdateSettings)
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.prefs.Profile())
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var payload profile.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.prefs.SetProfile(payload)
	utils.RespondJSON(w, http.StatusOK, payload)
}

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.prefs.Settings())
}

func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var payload profile.AppSettings
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.prefs.SetSettings(payload)
	utils.RespondJSON(w, http.StatusOK, payload)
}
