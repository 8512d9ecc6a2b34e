package chat_test

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	chatHandler "github.com/adesai/chatwave/backend/internal/handler/chat"
	chatmodel "github.com/adesai/chatwave/backend/internal/model/chat"
	"github.com/adesai/chatwave/backend/internal/model/profile"
	"github.com/adesai/chatwave/backend/internal/service/ai"
	chatService "github.com/adesai/chatwave/backend/internal/service/chat"
)

type stubGenerator struct{}

func (stubGenerator) Generate(context.Context, ai.Request) (string, error) {
	return "sure thing", nil
}

type noSleep struct{}

func (noSleep) Sleep(ctx context.Context, _ time.Duration) error { return ctx.Err() }

func newTestRouter(chats ...chatmodel.Chat) http.Handler {
	svc := chatService.NewService(chatService.Deps{
		Chats:     chatmodel.NewMemoryStore(chats),
		Prefs:     profile.NewStore(),
		Generator: stubGenerator{},
		Sleeper:   noSleep{},
		Rand:      rand.New(rand.NewSource(1)),
	})
	r := chi.NewRouter()
	chatHandler.New(svc).RegisterRoutes(r)
	return r
}

func persona(id, name string) chatmodel.Chat {
	return chatmodel.Chat{ID: id, Name: name, Status: chatmodel.StatusOnline}
}

func TestListChats(t *testing.T) {
	router := newTestRouter(persona("1", "Tom"), persona("2", "Sara"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var chats []chatmodel.Chat
	if err := json.Unmarshal(rec.Body.Bytes(), &chats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(chats) != 2 {
		t.Fatalf("expected 2 chats, got %d", len(chats))
	}
}

func TestSendMessageAccepted(t *testing.T) {
	router := newTestRouter(persona("1", "Tom"))

	body := strings.NewReader(`{"text":"hello"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chats/1/messages", body))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	var msg chatmodel.Message
	if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Text != "hello" || msg.Sender != chatmodel.SenderMe {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestSendMessageValidation(t *testing.T) {
	router := newTestRouter(persona("1", "Tom"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chats/1/messages", strings.NewReader(`{}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty payload: expected 400, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chats/1/messages", strings.NewReader(`not json`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json: expected 400, got %d", rec.Code)
	}
}

func TestSendMessageUnknownChat(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chats/nope/messages", strings.NewReader(`{"text":"hi"}`)))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	var errBody map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errBody["error"] == "" {
		t.Fatal("error body missing")
	}
}

func TestCreatePersona(t *testing.T) {
	router := newTestRouter()

	body := strings.NewReader(`{"name":"Maya","role":"Neighbor","speechStyle":"Dry humor"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chats", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created chatmodel.Chat
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.Name != "Maya" || created.IsGroup {
		t.Fatalf("unexpected persona: %+v", created)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chats", strings.NewReader(`{"name":"  "}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank name: expected 400, got %d", rec.Code)
	}
}

func TestCreateGroup(t *testing.T) {
	router := newTestRouter(persona("1", "Tom"), persona("2", "Sara"))

	body := strings.NewReader(`{"name":"Weekend","memberIds":["1","2"]}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/groups", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created chatmodel.Chat
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !created.IsGroup || len(created.MemberIDs) != 2 {
		t.Fatalf("unexpected group: %+v", created)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/groups", strings.NewReader(`{"name":"Empty","memberIds":["ghost"]}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("no resolvable members: expected 400, got %d", rec.Code)
	}
}

func TestChatLifecycleRoutes(t *testing.T) {
	router := newTestRouter(persona("1", "Tom"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chats/1/read", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("read: expected 204, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chats/1/clear", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("clear: expected 204, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/chats/1", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/chats/1", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", rec.Code)
	}
}
