package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/adesai/chatwave/backend/internal/model/chat"
	chatService "github.com/adesai/chatwave/backend/internal/service/chat"
	"github.com/adesai/chatwave/backend/pkg/utils"
)

// Handler exposes the chat list and the message/persona/group
// operations over HTTP.
type Handler struct {
	svc *chatService.Service
}

// New creates the chat handler.
func New(svc *chatService.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chats", h.handleListChats)
	r.Post("/chats", h.handleCreatePersona)
	r.Post("/groups", h.handleCreateGroup)
	r.Delete("/chats/{chatID}", h.handleDeleteChat)
	r.Post("/chats/{chatID}/clear", h.handleClearChat)
	r.Post("/chats/{chatID}/read", h.handleMarkRead)
	r.Post("/chats/{chatID}/messages", h.handleSendMessage)
}

func (h *Handler) handleListChats(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.svc.Chats())
}

func (h *Handler) handleCreatePersona(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name              string `json:"name"`
		Avatar            string `json:"avatar"`
		About             string `json:"about"`
		Role              string `json:"role"`
		SpeechStyle       string `json:"speechStyle"`
		SystemInstruction string `json:"systemInstruction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		utils.RespondError(w, http.StatusBadRequest, "name is required")
		return
	}

	created := h.svc.CreatePersona(chat.Chat{
		Name:              payload.Name,
		Avatar:            payload.Avatar,
		About:             payload.About,
		Role:              payload.Role,
		SpeechStyle:       payload.SpeechStyle,
		SystemInstruction: payload.SystemInstruction,
	})
	utils.RespondJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name      string   `json:"name"`
		Avatar    string   `json:"avatar"`
		MemberIDs []string `json:"memberIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		utils.RespondError(w, http.StatusBadRequest, "name is required")
		return
	}

	created, err := h.svc.CreateGroup(payload.Name, payload.Avatar, payload.MemberIDs)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")

	var payload struct {
		Text       string           `json:"text"`
		Attachment *chat.Attachment `json:"attachment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Text == "" && payload.Attachment == nil {
		utils.RespondError(w, http.StatusBadRequest, "text or attachment is required")
		return
	}

	msg, err := h.svc.SendMessage(r.Context(), chatID, payload.Text, payload.Attachment)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	// Persona replies arrive asynchronously over the websocket feed.
	utils.RespondJSON(w, http.StatusAccepted, msg)
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.MarkRead(chi.URLParam(r, "chatID")); err != nil {
		h.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleClearChat(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearChat(chi.URLParam(r, "chatID")); err != nil {
		h.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteChat(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteChat(chi.URLParam(r, "chatID")); err != nil {
		h.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, chatService.ErrChatNotFound) {
		status = http.StatusNotFound
	}
	utils.RespondError(w, status, err.Error())
}
