package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	chatHandler "github.com/adesai/chatwave/backend/internal/handler/chat"
	mediaHandler "github.com/adesai/chatwave/backend/internal/handler/media"
	profileHandler "github.com/adesai/chatwave/backend/internal/handler/profile"
	wsHandler "github.com/adesai/chatwave/backend/internal/handler/ws"
	profileModel "github.com/adesai/chatwave/backend/internal/model/profile"
	chatService "github.com/adesai/chatwave/backend/internal/service/chat"
	mediaStore "github.com/adesai/chatwave/backend/internal/store/media"
	"github.com/adesai/chatwave/backend/internal/ws"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(chatSvc *chatService.Service, prefs *profileModel.Store, media mediaStore.Store, hub *ws.Hub) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(api chi.Router) {
		chatHandler.New(chatSvc).RegisterRoutes(api)
		profileHandler.New(prefs).RegisterRoutes(api)
		mediaHandler.New(media).RegisterRoutes(api)
		if hub != nil {
			wsHandler.New(hub).RegisterRoutes(api)
		}
	})

	return r
}
