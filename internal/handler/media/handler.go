package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adesai/chatwave/backend/internal/store/media"
	"github.com/adesai/chatwave/backend/pkg/utils"
)

// Handler serves stored attachment blobs back to the client.
type Handler struct {
	store media.Store
}

// New creates the media handler.
func New(store media.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the media routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/media/{mediaID}", h.handleGetMedia)
}

func (h *Handler) handleGetMedia(w http.ResponseWriter, r *http.Request) {
	mediaID := chi.URLParam(r, "mediaID")
	data, ok := h.store.Get(mediaID)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "media not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"id": mediaID, "data": data})
}
